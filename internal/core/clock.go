package core

import "time"

// Clock is the monotonic time source used for frame timing.
// Tests substitute a fake to control elapsed time and observe sleeps.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock is the default Clock backed by the runtime's monotonic clock.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}
