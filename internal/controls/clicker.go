package controls

import "GopherSnippets/internal/input"

// ClickCounter tallies presses: the primary button counts down and the
// secondary button counts up. It reacts to press notifications only; edge
// detection belongs to whoever produces the events.
type ClickCounter struct {
	counter int
}

func NewClickCounter(initial int) *ClickCounter {
	return &ClickCounter{counter: initial}
}

func (c *ClickCounter) OnPress(button input.MouseButton) {
	switch button {
	case input.ButtonPrimary:
		c.counter--
	case input.ButtonSecondary:
		c.counter++
	}
}

func (c *ClickCounter) Value() int {
	return c.counter
}
