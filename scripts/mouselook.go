package scripts

import (
	"GopherSnippets/internal/behaviour"
	"GopherSnippets/internal/controls"
	"GopherSnippets/internal/input"
	"GopherSnippets/internal/logger"

	"go.uber.org/zap"
)

const MouseLookScriptID = "abbad54c-e267-4d7e-a3cd-e125a7e87ff0"

// MouseLookScript turns raw pointer motion into the owning object's rotation.
// Deltas are multiplied by Sensitivity (radians per unit of motion) before
// they reach the accumulator.
type MouseLookScript struct {
	behaviour.BaseComponent
	Sensitivity float32

	look      controls.OrientationAccumulator
	warnedNaN bool
}

func init() {
	behaviour.MustRegisterScript(behaviour.ScriptType{
		ID:   MouseLookScriptID,
		Name: "MouseLookScript",
		New: func() behaviour.Component {
			return NewMouseLookScript(0, 0)
		},
		Save: saveMouseLook,
		Load: loadMouseLook,
	})
}

func NewMouseLookScript(yaw, pitch float32) *MouseLookScript {
	return &MouseLookScript{
		Sensitivity: 1.0,
		look:        *controls.NewOrientationAccumulator(yaw, pitch),
	}
}

func (m *MouseLookScript) Yaw() float32   { return m.look.Yaw() }
func (m *MouseLookScript) Pitch() float32 { return m.look.Pitch() }

// SetOrientation replaces the accumulated angles. Pitch is clamped.
func (m *MouseLookScript) SetOrientation(yaw, pitch float32) {
	m.look = *controls.NewOrientationAccumulator(yaw, pitch)
}

func (m *MouseLookScript) OnEvent(ev input.Event) {
	delta, ok := ev.(input.MotionDelta)
	if !ok {
		return
	}
	// Check after scaling: a finite float64 can still overflow float32
	dx := float32(delta.DX) * m.Sensitivity
	dy := float32(delta.DY) * m.Sensitivity
	if !finite32(dx) || !finite32(dy) {
		if !m.warnedNaN {
			m.warnedNaN = true
			logger.Log.Warn("Dropping non-finite mouse delta",
				zap.Float64("dx", delta.DX),
				zap.Float64("dy", delta.DY),
				zap.Float32("sensitivity", m.Sensitivity))
		}
		return
	}
	m.look.ApplyDelta(dx, dy)
}

func (m *MouseLookScript) Update() {
	if obj := m.GetGameObject(); obj != nil {
		obj.Transform.SetRotation(m.look.Rotation())
	}
}

func saveMouseLook(c behaviour.Component) map[string]any {
	m, ok := c.(*MouseLookScript)
	if !ok {
		return nil
	}
	return map[string]any{
		"yaw":         m.Yaw(),
		"pitch":       m.Pitch(),
		"sensitivity": m.Sensitivity,
	}
}

func loadMouseLook(c behaviour.Component, fields map[string]any) error {
	m, ok := c.(*MouseLookScript)
	if !ok {
		return errWrongScript("MouseLookScript", c)
	}
	yaw, err := fieldFloat32(fields, "yaw", m.Yaw())
	if err != nil {
		return err
	}
	pitch, err := fieldFloat32(fields, "pitch", m.Pitch())
	if err != nil {
		return err
	}
	sensitivity, err := fieldFloat32(fields, "sensitivity", m.Sensitivity)
	if err != nil {
		return err
	}
	m.SetOrientation(yaw, pitch)
	m.Sensitivity = sensitivity
	return nil
}
