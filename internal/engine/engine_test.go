package engine

import (
	"testing"

	"GopherSnippets/internal/behaviour"
	"GopherSnippets/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestTranslateMouseButton(t *testing.T) {
	cases := map[glfw.MouseButton]input.MouseButton{
		glfw.MouseButtonLeft:   input.ButtonPrimary,
		glfw.MouseButtonRight:  input.ButtonSecondary,
		glfw.MouseButtonMiddle: input.ButtonOther,
		glfw.MouseButton5:      input.ButtonOther,
	}
	for in, want := range cases {
		if got := TranslateMouseButton(in); got != want {
			t.Errorf("TranslateMouseButton(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestTranslateAction(t *testing.T) {
	if pressed, ok := TranslateAction(glfw.Press); !pressed || !ok {
		t.Error("Press should translate to pressed")
	}
	if pressed, ok := TranslateAction(glfw.Release); pressed || !ok {
		t.Error("Release should translate to released")
	}
	if _, ok := TranslateAction(glfw.Repeat); ok {
		t.Error("Repeat should be ignored")
	}
}

type recorder struct {
	behaviour.BaseComponent
	events  []input.Event
	updates int
	fixed   int
}

func (r *recorder) OnEvent(ev input.Event) {
	r.events = append(r.events, ev)
}

func (r *recorder) Update() {
	r.updates++
}

func (r *recorder) FixedUpdate() {
	r.fixed++
}

func TestStepDispatchesQueuedEventsBeforeUpdate(t *testing.T) {
	cm := behaviour.NewComponentManager()
	g := NewGopher(cm)
	obj := behaviour.NewGameObject("Test")
	rec := &recorder{}
	obj.AddComponent(rec)
	cm.RegisterGameObject(obj)

	g.cursorCallback(nil, 10, 10) // primes
	g.cursorCallback(nil, 13, 6)
	g.mouseButtonCallback(nil, glfw.MouseButtonRight, glfw.Press, 0)
	g.mouseButtonCallback(nil, glfw.MouseButtonRight, glfw.Repeat, 0)

	g.Step()

	if len(rec.events) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(rec.events))
	}
	if rec.events[0] != (input.MotionDelta{DX: 3, DY: -4}) {
		t.Errorf("Unexpected motion event %v", rec.events[0])
	}
	if rec.events[1] != (input.ButtonChange{Button: input.ButtonSecondary, Pressed: true}) {
		t.Errorf("Unexpected button event %v", rec.events[1])
	}
	if rec.updates != 1 {
		t.Errorf("Expected 1 update, got %d", rec.updates)
	}
	if g.Events.Len() != 0 {
		t.Error("Queue should be drained after Step")
	}
}

func TestStepFixedUpdateCadence(t *testing.T) {
	cm := behaviour.NewComponentManager()
	g := NewGopher(cm)
	obj := behaviour.NewGameObject("Test")
	rec := &recorder{}
	obj.AddComponent(rec)
	cm.RegisterGameObject(obj)

	for i := 0; i < 6; i++ {
		g.Step()
	}

	if rec.updates != 6 {
		t.Errorf("Expected 6 updates, got %d", rec.updates)
	}
	if rec.fixed != 2 {
		t.Errorf("Expected 2 fixed updates, got %d", rec.fixed)
	}
}

func TestFocusLossResetsCursor(t *testing.T) {
	g := NewGopher(behaviour.NewComponentManager())

	g.cursorCallback(nil, 0, 0)
	g.focusCallback(nil, false)
	g.cursorCallback(nil, 500, 500)

	if g.Events.Len() != 0 {
		t.Errorf("Jump after focus loss should not produce a delta, got %d events", g.Events.Len())
	}
}

func TestCloseBeforeRenderIsNoop(t *testing.T) {
	g := NewGopher(nil)

	g.Close()

	if g.GetWindow() != nil {
		t.Error("No window should exist before Render")
	}
}
