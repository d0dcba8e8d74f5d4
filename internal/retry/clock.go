package retry

import "time"

// Clock is the time source used by a Policy. Tests substitute a fake.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

// WallClock is the real clock.
type WallClock struct{}

// Now returns the current time.
func (WallClock) Now() time.Time { return time.Now() }

// After delegates to time.After.
func (WallClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}
