package countdown

import (
	"context"
	"time"
)

// DefaultInterval is the refresh period of a visible countdown.
const DefaultInterval = time.Second

// Ticker delivers ticks until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Clock abstracts time so the refresh loop can be driven by tests.
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) Ticker
}

// SystemClock is the Clock backed by the time package.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) NewTicker(d time.Duration) Ticker {
	return stdTicker{time.NewTicker(d)}
}

type stdTicker struct{ t *time.Ticker }

func (s stdTicker) C() <-chan time.Time { return s.t.C }
func (s stdTicker) Stop()               { s.t.Stop() }

// RunOptions configures Run.
type RunOptions struct {
	Clock    Clock
	Interval time.Duration
	// StopWhenPast ends the loop after the first past result is delivered.
	StopWhenPast bool
}

// Run recomputes the time left until target immediately and then on every
// tick, handing each result to fn. It returns when ctx is done, or after the
// event passes if StopWhenPast is set.
func Run(ctx context.Context, target time.Time, opts RunOptions, fn func(Remaining)) error {
	clock := opts.Clock
	if clock == nil {
		clock = SystemClock
	}
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	emit := func() bool {
		r := Compute(target, clock.Now())
		fn(r)
		return r.IsPast && opts.StopWhenPast
	}
	if emit() {
		return nil
	}

	ticker := clock.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C():
			if emit() {
				return nil
			}
		}
	}
}
