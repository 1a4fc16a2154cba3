package tetris

import "time"

// tickClock is a board.Clock that advances a fixed step per simulation tick,
// so gravity depends on the tick count instead of wall time.
type tickClock struct {
	now  time.Time
	step time.Duration
}

func newTickClock(tickRate int) *tickClock {
	return &tickClock{
		now:  time.Unix(0, 0),
		step: time.Second / time.Duration(tickRate),
	}
}

// Now returns the simulated time.
func (c *tickClock) Now() time.Time {
	return c.now
}

func (c *tickClock) advance() {
	c.now = c.now.Add(c.step)
}
