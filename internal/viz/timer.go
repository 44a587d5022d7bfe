package viz

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/brownsim/internal/dynamo"
)

type tickMsg struct {
	handle dynamo.Handle
	at     time.Time
}

type teaEntry struct {
	interval time.Duration
	fn       func()
}

// TeaTimer is a dynamo.Timer backed by tea.Tick. Callbacks run inside the
// program's Update, so they never overlap with each other or with View.
// It must only be used from the bubbletea event loop.
type TeaTimer struct {
	next    dynamo.Handle
	entries map[dynamo.Handle]teaEntry
	pending []dynamo.Handle
}

func NewTeaTimer() *TeaTimer {
	return &TeaTimer{entries: make(map[dynamo.Handle]teaEntry)}
}

func (t *TeaTimer) Schedule(interval time.Duration, fn func()) dynamo.Handle {
	t.next++
	t.entries[t.next] = teaEntry{interval: interval, fn: fn}
	t.pending = append(t.pending, t.next)
	return t.next
}

func (t *TeaTimer) Cancel(h dynamo.Handle) {
	delete(t.entries, h)
}

func (t *TeaTimer) Active() int { return len(t.entries) }

// Cmds starts ticking every handle scheduled since the last call.
func (t *TeaTimer) Cmds() tea.Cmd {
	if len(t.pending) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(t.pending))
	for _, h := range t.pending {
		if cmd := t.tick(h); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	t.pending = t.pending[:0]
	return tea.Batch(cmds...)
}

// Fire runs the callback for msg and re-arms its handle. Ticks of cancelled
// handles are dropped.
func (t *TeaTimer) Fire(msg tickMsg) tea.Cmd {
	e, ok := t.entries[msg.handle]
	if !ok {
		return nil
	}
	e.fn()
	return t.tick(msg.handle)
}

func (t *TeaTimer) tick(h dynamo.Handle) tea.Cmd {
	e, ok := t.entries[h]
	if !ok {
		return nil
	}
	return tea.Tick(e.interval, func(at time.Time) tea.Msg {
		return tickMsg{handle: h, at: at}
	})
}
