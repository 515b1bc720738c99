// Package progress implements A4/A10: an atomic hand counter shared across
// the solve worker pool, plus two renderers (log lines and a live TUI) that
// read it without coordinating with the workers.
package progress

import "sync/atomic"

// Snapshot is a point-in-time read of a Tracker.
type Snapshot struct {
	PaytableID string
	HandsDone  int64
	HandsTotal int64
	BestSoFar  float64
}

// Tracker wraps an atomic.Int64 hand counter plus a CAS-guarded best-EV
// gauge: the counter advances once per completed hand, and any number of
// readers can snapshot it without locking.
type Tracker struct {
	paytableID string
	total      int64
	done       atomic.Int64
	bestSoFar  atomic.Uint64 // math.Float64bits of the best EV observed so far
}

// NewTracker returns a Tracker for a compile run of total hands.
func NewTracker(paytableID string, total int64) *Tracker {
	return &Tracker{paytableID: paytableID, total: total}
}

// Add records n newly completed hands and returns the new total.
func (t *Tracker) Add(n int64) int64 {
	return t.done.Add(n)
}

// NoteBest records bestEV if it's the highest seen so far, using a CAS loop
// since multiple workers may report concurrently.
func (t *Tracker) NoteBest(bestEV float64) {
	for {
		cur := t.bestSoFar.Load()
		if cur != 0 && float64FromBits(cur) >= bestEV {
			return
		}
		if t.bestSoFar.CompareAndSwap(cur, float64Bits(bestEV)) {
			return
		}
	}
}

// Snapshot returns the current progress state.
func (t *Tracker) Snapshot() Snapshot {
	return Snapshot{
		PaytableID: t.paytableID,
		HandsDone:  t.done.Load(),
		HandsTotal: t.total,
		BestSoFar:  float64FromBits(t.bestSoFar.Load()),
	}
}
