package engine

import (
	"GopherSnippets/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// TranslateMouseButton maps GLFW buttons onto the script-facing set.
// Left is primary and right is secondary; everything else is Other.
func TranslateMouseButton(button glfw.MouseButton) input.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return input.ButtonPrimary
	case glfw.MouseButtonRight:
		return input.ButtonSecondary
	default:
		return input.ButtonOther
	}
}

// TranslateAction reports whether a GLFW action is a press or a release.
// Repeat is not a state change and yields ok == false.
func TranslateAction(action glfw.Action) (pressed bool, ok bool) {
	switch action {
	case glfw.Press:
		return true, true
	case glfw.Release:
		return false, true
	default:
		return false, false
	}
}
