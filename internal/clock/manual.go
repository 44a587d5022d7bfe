package clock

import (
	"sort"
	"sync"
	"time"

	"github.com/san-kum/brownsim/internal/dynamo"
)

type entry struct {
	interval time.Duration
	elapsed  time.Duration
	fn       func()
}

// Manual is a deterministic timer driven by explicit Fire and Advance calls.
// It is used by tests and by headless runs that step as fast as possible.
type Manual struct {
	mu      sync.Mutex
	next    dynamo.Handle
	entries map[dynamo.Handle]*entry
	fired   int
}

func NewManual() *Manual {
	return &Manual{entries: make(map[dynamo.Handle]*entry)}
}

func (m *Manual) Schedule(interval time.Duration, fn func()) dynamo.Handle {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.next++
	m.entries[m.next] = &entry{interval: interval, fn: fn}
	return m.next
}

func (m *Manual) Cancel(h dynamo.Handle) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, h)
}

// Fire invokes every active callback once, oldest handle first.
func (m *Manual) Fire() {
	for _, fn := range m.due(nil) {
		fn()
	}
}

// Advance moves time forward by d and fires each callback once per full
// interval that elapsed.
func (m *Manual) Advance(d time.Duration) {
	for _, fn := range m.due(&d) {
		fn()
	}
}

func (m *Manual) due(d *time.Duration) []func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	handles := make([]dynamo.Handle, 0, len(m.entries))
	for h := range m.entries {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })

	var fns []func()
	for _, h := range handles {
		e := m.entries[h]
		if d == nil {
			fns = append(fns, e.fn)
			continue
		}
		if e.interval <= 0 {
			continue
		}
		e.elapsed += *d
		for e.elapsed >= e.interval {
			e.elapsed -= e.interval
			fns = append(fns, e.fn)
		}
	}
	m.fired += len(fns)
	return fns
}

func (m *Manual) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Fired reports how many callbacks have been invoked in total.
func (m *Manual) Fired() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fired
}
