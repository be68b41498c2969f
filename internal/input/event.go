package input

// Event is a window or device event already translated out of the host's
// representation. The set of variants is closed: MotionDelta and ButtonChange.
type Event interface {
	isEvent()
}

// MotionDelta is relative pointer movement since the previous sample.
type MotionDelta struct {
	DX float64
	DY float64
}

// ButtonChange reports a mouse button going down (Pressed) or up.
type ButtonChange struct {
	Button  MouseButton
	Pressed bool
}

func (MotionDelta) isEvent()  {}
func (ButtonChange) isEvent() {}

// MouseButton is the closed set of buttons scripts care about
type MouseButton int

const (
	ButtonOther MouseButton = iota
	ButtonPrimary
	ButtonSecondary
)

func (b MouseButton) String() string {
	switch b {
	case ButtonPrimary:
		return "Primary"
	case ButtonSecondary:
		return "Secondary"
	default:
		return "Other"
	}
}
