package sim

import (
	"context"
	"math/rand"
	"sync"

	"github.com/san-kum/brownsim/internal/clock"
	"github.com/san-kum/brownsim/internal/dynamo"
)

// RunHeadless drives a fresh simulation for the given number of ticks on a
// manual clock, as fast as the CPU allows. A nil surface discards output.
func RunHeadless(ctx context.Context, cfg Config, seed int64, ticks int, surface dynamo.Surface, observers ...Observer) (Snapshot, error) {
	if surface == nil {
		surface = &Discard{}
	}

	timer := clock.NewManual()
	s := New(surface, timer, rand.New(rand.NewSource(seed)))
	for _, o := range observers {
		s.AddObserver(o)
	}

	if err := s.Init(cfg); err != nil {
		return Snapshot{}, err
	}
	if err := s.Run(); err != nil {
		return Snapshot{}, err
	}
	defer s.Reset()

	for i := 0; i < ticks; i++ {
		select {
		case <-ctx.Done():
			return s.Snapshot(), ctx.Err()
		default:
		}
		timer.Fire()
	}

	return s.Snapshot(), nil
}

// Ensemble runs independent headless simulations concurrently, one per seed.
type Ensemble struct {
	cfg       Config
	numRuns   int
	seedStart int64
	ticks     int
	// Observers, when set, supplies the observers for run idx.
	Observers func(idx int) []Observer
}

func NewEnsemble(cfg Config, numRuns int, seedStart int64, ticks int) *Ensemble {
	return &Ensemble{cfg: cfg, numRuns: numRuns, seedStart: seedStart, ticks: ticks}
}

func (e *Ensemble) Run(ctx context.Context) ([]Snapshot, error) {
	results := make([]Snapshot, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			var obs []Observer
			if e.Observers != nil {
				obs = e.Observers(idx)
			}
			results[idx], errs[idx] = RunHeadless(ctx, e.cfg, e.seedStart+int64(idx), e.ticks, nil, obs...)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
