package game

import (
	"time"
)

// FrameClock is a frame limiter: each WaitForNextTick returns one period
// after the previous tick was scheduled. If the caller falls behind the
// schedule is re-anchored to now instead of bursting to catch up.
type FrameClock struct {
	next  time.Time
	now   func() time.Time
	sleep func(time.Duration)
}

func NewFrameClock() *FrameClock {
	return &FrameClock{now: time.Now, sleep: time.Sleep}
}

func (c *FrameClock) WaitForNextTick(rateHz int) {
	if rateHz <= 0 {
		return
	}
	period := time.Second / time.Duration(rateHz)

	now := c.now()
	if c.next.IsZero() {
		c.next = now
	}
	c.next = c.next.Add(period)

	if d := c.next.Sub(now); d > 0 {
		c.sleep(d)
		return
	}
	c.next = now
}
