package timeutil

import "time"

// Clock supplies the current time. Production code uses RealClock; tests
// substitute a fixed instant so boundary computations stay deterministic.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock.
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}
