package core

import "time"

type Clock struct {
	now       func() time.Time
	startTime time.Time
	lastTick  time.Time
	elapsed   time.Duration
	delta     time.Duration
}

func NewClock() *Clock {
	return NewClockWithSource(time.Now)
}

// NewClockWithSource returns a clock reading the time from now.
func NewClockWithSource(now func() time.Time) *Clock {
	return &Clock{now: now}
}

// Updates the provided clock. Should be called just before checking elapsed time.
// Has no effect on non-started clocks.
func (c *Clock) Update() {
	if c.startTime.IsZero() {
		return
	}
	t := c.now()
	c.elapsed = t.Sub(c.startTime)
	c.delta = t.Sub(c.lastTick)
	c.lastTick = t
}

// Starts the provided clock. Resets elapsed time.
func (c *Clock) Start() {
	c.startTime = c.now()
	c.lastTick = c.startTime
	c.elapsed = 0
	c.delta = 0
}

// Stops the provided clock. Does not reset elapsed time.
func (c *Clock) Stop() {
	c.startTime = time.Time{}
}

// Elapsed returns the seconds between Start and the last Update.
func (c *Clock) Elapsed() float64 {
	return c.elapsed.Seconds()
}

// Delta returns the seconds between the last two updates, the per-frame
// scale for camera movement.
func (c *Clock) Delta() float32 {
	return float32(c.delta.Seconds())
}
