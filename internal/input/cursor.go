package input

// CursorTracker turns absolute cursor positions into MotionDelta events.
// The first sample after creation or Reset only primes the tracker.
type CursorTracker struct {
	lastX, lastY float64
	primed       bool
	InvertY      bool
}

func (c *CursorTracker) Reset() {
	c.primed = false
}

// Move records a cursor position and returns the delta from the previous one.
// ok is false when the sample only primed the tracker.
func (c *CursorTracker) Move(x, y float64) (delta MotionDelta, ok bool) {
	if !c.primed {
		c.lastX, c.lastY = x, y
		c.primed = true
		return MotionDelta{}, false
	}

	delta = MotionDelta{DX: x - c.lastX, DY: y - c.lastY}
	if c.InvertY {
		delta.DY = -delta.DY
	}
	c.lastX, c.lastY = x, y
	return delta, true
}
