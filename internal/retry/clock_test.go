package retry

import "time"

type fakeClock struct {
	now time.Time
}

var _ Clock = (*fakeClock)(nil)

func (c *fakeClock) Now() time.Time {
	return c.now
}

// After fires immediately; elapsed time is driven by advance.
func (c *fakeClock) After(d time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- c.now
	return ch
}

func (c *fakeClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}
