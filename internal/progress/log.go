package progress

import (
	"time"

	"github.com/coder/quartz"
	"github.com/rs/zerolog"
)

// LogReporter fires a zerolog progress line on a fixed interval until Stop
// is called. It takes a quartz.Clock rather than calling time.NewTicker
// directly so tests can drive it with quartz.NewMock() instead of sleeping.
type LogReporter struct {
	tracker  *Tracker
	logger   zerolog.Logger
	interval time.Duration
	clock    quartz.Clock
	stop     chan struct{}
}

// NewLogReporter returns a reporter that logs tracker's snapshot every
// interval on logger, ticked by clock.
func NewLogReporter(tracker *Tracker, logger zerolog.Logger, interval time.Duration, clock quartz.Clock) *LogReporter {
	return &LogReporter{tracker: tracker, logger: logger, interval: interval, clock: clock, stop: make(chan struct{})}
}

// Run blocks, logging on each tick, until Stop is called. Intended to run in
// its own goroutine alongside a Calculate call.
func (r *LogReporter) Run() {
	ticker := r.clock.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			r.logOnce()
		case <-r.stop:
			r.logOnce()
			return
		}
	}
}

func (r *LogReporter) logOnce() {
	s := r.tracker.Snapshot()
	r.logger.Info().
		Str("paytable", s.PaytableID).
		Int64("hands_done", s.HandsDone).
		Int64("hands_total", s.HandsTotal).
		Float64("best_ev_so_far", s.BestSoFar).
		Msg("compiling")
}

// Stop ends the reporter's Run loop after one final log line.
func (r *LogReporter) Stop() {
	close(r.stop)
}
