package engine

import (
	"fmt"
	"runtime"

	"GopherSnippets/internal/behaviour"
	"GopherSnippets/internal/input"
	"GopherSnippets/internal/logger"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// Number of plain frames between two fixed updates
const fixedUpdateFrames = 2

// Gopher owns the window and drives the frame loop: events are collected by
// GLFW callbacks into Events and dispatched to Components before Update.
type Gopher struct {
	Width      int32
	Height     int32
	Title      string
	Components *behaviour.ComponentManager
	Events     *input.Queue
	Cursor     input.CursorTracker

	// CaptureCursor hides the cursor and locks it to the window so motion is
	// unbounded. Raw motion is used when the platform supports it.
	CaptureCursor bool

	window           *glfw.Window
	frameTrackId     int
	onRenderCallback func(deltaTime float64) // Optional per-frame hook, runs after Update
}

func NewGopher(cm *behaviour.ComponentManager) *Gopher {
	if cm == nil {
		cm = behaviour.GlobalComponentManager
	}
	return &Gopher{
		Width:         1024,
		Height:        768,
		Title:         "Gopher3D",
		Components:    cm,
		Events:        input.NewQueue(),
		CaptureCursor: true,
	}
}

// Render opens the window and blocks until it is closed.
// Must be called from the main goroutine.
func (gopher *Gopher) Render(x, y int) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("engine: init glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Decorated, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(int(gopher.Width), int(gopher.Height), gopher.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("engine: create window: %w", err)
	}
	gopher.window = window
	defer window.Destroy()

	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		return fmt.Errorf("engine: init OpenGL: %w", err)
	}
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	logger.Log.Info("OpenGL initialized", zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))))

	if x >= 0 && y >= 0 {
		window.SetPos(x, y)
	}

	if gopher.CaptureCursor {
		window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		if glfw.RawMouseMotionSupported() {
			window.SetInputMode(glfw.RawMouseMotion, glfw.True)
		}
	}

	window.SetCursorPosCallback(gopher.cursorCallback)
	window.SetMouseButtonCallback(gopher.mouseButtonCallback)
	window.SetKeyCallback(gopher.keyCallback)
	window.SetFocusCallback(gopher.focusCallback)

	gopher.RenderLoop()
	return nil
}

func (gopher *Gopher) RenderLoop() {
	lastTime := glfw.GetTime()

	for !gopher.window.ShouldClose() {
		currentTime := glfw.GetTime()
		deltaTime := currentTime - lastTime
		lastTime = currentTime

		actualWidth, actualHeight := gopher.window.GetFramebufferSize()
		if int32(actualWidth) != gopher.Width || int32(actualHeight) != gopher.Height {
			gopher.Width = int32(actualWidth)
			gopher.Height = int32(actualHeight)
			gl.Viewport(0, 0, gopher.Width, gopher.Height)
		}

		gopher.Step()

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		if gopher.onRenderCallback != nil {
			gopher.onRenderCallback(deltaTime)
		}

		gopher.window.SwapBuffers()
		glfw.PollEvents()
	}
}

// Step runs one frame of the behaviour system: queued events first, then
// the fixed update on its cadence, then Update.
func (gopher *Gopher) Step() {
	gopher.Events.Drain(gopher.Components.DispatchEvent)

	// Fixed updates are paced by frame count, not wall time: one after every
	// fixedUpdateFrames plain frames
	if gopher.frameTrackId >= fixedUpdateFrames {
		gopher.Components.FixedUpdateAll()
		gopher.frameTrackId = 0
	}
	gopher.Components.UpdateAll()
	gopher.frameTrackId++
}

// SetOnRenderCallback sets a callback that will be called each frame after the scene is updated
func (gopher *Gopher) SetOnRenderCallback(callback func(deltaTime float64)) {
	gopher.onRenderCallback = callback
}

// Close asks the loop to exit after the current frame
func (gopher *Gopher) Close() {
	if gopher.window != nil {
		gopher.window.SetShouldClose(true)
	}
}

// GetWindow returns the GLFW window (nil before Render)
func (gopher *Gopher) GetWindow() *glfw.Window {
	return gopher.window
}

func (gopher *Gopher) cursorCallback(w *glfw.Window, xpos, ypos float64) {
	if delta, ok := gopher.Cursor.Move(xpos, ypos); ok {
		gopher.Events.Push(delta)
	}
}

func (gopher *Gopher) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	pressed, ok := TranslateAction(action)
	if !ok {
		return
	}
	gopher.Events.Push(input.ButtonChange{Button: TranslateMouseButton(button), Pressed: pressed})
}

func (gopher *Gopher) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
	}
}

// Losing focus breaks the cursor position chain; the next sample only primes
func (gopher *Gopher) focusCallback(w *glfw.Window, focused bool) {
	if !focused {
		gopher.Cursor.Reset()
	}
}
