package ratelimit

import "time"

// Gate serializes successive calls so they start at least a fixed interval
// apart. The backfill importer waits on the gate between per-order fetches to
// stay inside the venue's per-key request-rate limit.
type Gate interface {
	Wait()
}

// IntervalGate is a fixed-interval Gate. The first Wait returns immediately;
// every later Wait blocks until the interval since the previous return has
// passed. Not safe for concurrent use; the pipeline is single-threaded.
type IntervalGate struct {
	interval time.Duration
	last     time.Time
	now      func() time.Time
	sleep    func(time.Duration)
}

func NewIntervalGate(interval time.Duration) *IntervalGate {
	return &IntervalGate{
		interval: interval,
		now:      time.Now,
		sleep:    time.Sleep,
	}
}

// NewIntervalGateWithClock injects the time source and sleeper, so tests can
// drive the gate with a fake clock.
func NewIntervalGateWithClock(interval time.Duration, now func() time.Time, sleep func(time.Duration)) *IntervalGate {
	return &IntervalGate{
		interval: interval,
		now:      now,
		sleep:    sleep,
	}
}

func (g *IntervalGate) Wait() {
	if g.interval <= 0 {
		return
	}

	if !g.last.IsZero() {
		elapsed := g.now().Sub(g.last)
		if wait := g.interval - elapsed; wait > 0 {
			g.sleep(wait)
		}
	}
	g.last = g.now()
}
