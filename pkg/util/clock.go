package util

import "time"

// Clock abstracts time for the session journal so transcript tests can pin
// timestamps.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// ManualClock returns a fixed instant until advanced.
type ManualClock struct {
	T time.Time
}

func (c *ManualClock) Now() time.Time          { return c.T }
func (c *ManualClock) Advance(d time.Duration) { c.T = c.T.Add(d) }
