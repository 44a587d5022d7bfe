// Package clock provides implementations of the dynamo.Timer service.
package clock

import (
	"sync"
	"time"

	"github.com/san-kum/brownsim/internal/dynamo"
)

// Ticker schedules callbacks on real time.Tickers. Every handle gets its own
// goroutine, so one handle's callbacks never overlap each other.
type Ticker struct {
	mu     sync.Mutex
	next   dynamo.Handle
	active map[dynamo.Handle]chan struct{}
	wg     sync.WaitGroup
}

func NewTicker() *Ticker {
	return &Ticker{active: make(map[dynamo.Handle]chan struct{})}
}

func (t *Ticker) Schedule(interval time.Duration, fn func()) dynamo.Handle {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.next++
	h := t.next
	stop := make(chan struct{})
	t.active[h] = stop

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		tk := time.NewTicker(interval)
		defer tk.Stop()

		for {
			select {
			case <-stop:
				return
			case <-tk.C:
				// stop may have been closed while the tick was pending
				select {
				case <-stop:
					return
				default:
				}
				fn()
			}
		}
	}()

	return h
}

// Cancel stops future firings of h. Unknown or already cancelled handles are ignored.
func (t *Ticker) Cancel(h dynamo.Handle) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if stop, ok := t.active[h]; ok {
		close(stop)
		delete(t.active, h)
	}
}

func (t *Ticker) Active() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.active)
}

// Close cancels every handle and waits for their goroutines to exit.
// It must not be called from inside a callback.
func (t *Ticker) Close() {
	t.mu.Lock()
	for h, stop := range t.active {
		close(stop)
		delete(t.active, h)
	}
	t.mu.Unlock()
	t.wg.Wait()
}
