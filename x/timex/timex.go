package timex

import (
	"context"
	"time"
)

// Sleeper waits for d and reports whether to continue (false => cancelled).
// Every Sleep is a scheduling point for the calling goroutine.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) bool
}

// TimerSleeper sleeps on a single reused timer. It is owned by one goroutine.
type TimerSleeper struct {
	t *time.Timer
}

func NewSleeper() *TimerSleeper {
	t := time.NewTimer(time.Hour)
	t.Stop()
	return &TimerSleeper{t: t}
}

func (s *TimerSleeper) Sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	ResetTimer(s.t, d)
	select {
	case <-ctx.Done():
		if !s.t.Stop() {
			DrainTimer(s.t)
		}
		return false
	case <-s.t.C:
		return true
	}
}

// ResetTimer safely stops, drains, and resets a timer.
func ResetTimer(t *time.Timer, d time.Duration) {
	if d < 0 {
		d = 0
	}
	if !t.Stop() {
		DrainTimer(t)
	}
	t.Reset(d)
}

func DrainTimer(t *time.Timer) {
	select {
	case <-t.C:
	default:
	}
}
