package ev

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/lox/vppoker/internal/canon"
	"github.com/lox/vppoker/internal/paytable"
)

// Result pairs a canonical class's key with its computed Entry.
type Result struct {
	Key   string
	Entry Entry
}

// Progress is a point-in-time snapshot of a Calculate run, safe to read from
// a different goroutine than the one driving the computation.
type Progress struct {
	Done, Total int64
}

// Calculate evaluates every class in parallel across workers goroutines
// (runtime.NumCPU() if workers <= 0), using an errgroup
// worker-pool pattern: a single feeder goroutine publishes class indices on
// a channel, workers drain it, and cancellation is checked once per hand —
// never mid-hand — via the group's derived context. onProgress, if non-nil,
// is called after every completed hand from whichever worker finished it.
func Calculate(ctx context.Context, classes []canon.Class, pt paytable.Paytable, workers int, onProgress func(Progress)) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, len(classes))
	var done atomic.Int64
	total := int64(len(classes))

	indices := make(chan int)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(indices)
		for i := range classes {
			select {
			case indices <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := range indices {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				results[i] = Result{Key: classes[i].Key, Entry: EvaluateHand(classes[i].Hand, pt)}
				d := done.Add(1)
				if onProgress != nil {
					onProgress(Progress{Done: d, Total: total})
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
