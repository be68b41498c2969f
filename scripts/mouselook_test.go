package scripts

import (
	"math"
	"testing"

	"GopherSnippets/internal/behaviour"
	"GopherSnippets/internal/controls"
	"GopherSnippets/internal/input"
	"GopherSnippets/internal/logger"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.WarnLevel)
	prev := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = prev })
	return logs
}

func TestMouseLookRegistered(t *testing.T) {
	st, ok := behaviour.LookupScriptByID(MouseLookScriptID)
	if !ok {
		t.Fatal("MouseLookScript should be registered by id")
	}
	if st.Name != "MouseLookScript" {
		t.Errorf("Expected 'MouseLookScript', got '%s'", st.Name)
	}
	if MouseLookScriptID == ClickerScriptID {
		t.Error("Scripts must have distinct ids")
	}
}

func TestMouseLookAppliesRotationOnUpdate(t *testing.T) {
	obj := behaviour.NewGameObject("Camera")
	sc, err := behaviour.AttachScript(obj, "MouseLookScript")
	if err != nil {
		t.Fatalf("AttachScript failed: %v", err)
	}
	look := sc.Script.(*MouseLookScript)

	sc.OnEvent(input.MotionDelta{DX: 0.1, DY: 0.1})
	sc.OnEvent(input.MotionDelta{DX: -0.05, DY: 0.2})
	sc.Update()

	want := mgl32.QuatRotate(0.05, mgl32.Vec3{0, 1, 0}).Mul(mgl32.QuatRotate(0.3, mgl32.Vec3{1, 0, 0}))
	if !obj.Transform.Rotation.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("Expected rotation %v, got %v", want, obj.Transform.Rotation)
	}
	if !mgl32.FloatEqualThreshold(look.Yaw(), 0.05, 1e-6) {
		t.Errorf("Expected yaw 0.05, got %v", look.Yaw())
	}
}

func TestMouseLookScalesBySensitivity(t *testing.T) {
	m := NewMouseLookScript(0, 0)
	m.Sensitivity = 0.5

	m.OnEvent(input.MotionDelta{DX: 2, DY: -1})

	if m.Yaw() != 1 || m.Pitch() != -0.5 {
		t.Errorf("Expected (1,-0.5), got (%v,%v)", m.Yaw(), m.Pitch())
	}
}

func TestMouseLookIgnoresNonFinite(t *testing.T) {
	m := NewMouseLookScript(0.2, 0.1)

	m.OnEvent(input.MotionDelta{DX: math.NaN(), DY: 0})
	m.OnEvent(input.MotionDelta{DX: 0, DY: math.Inf(1)})

	if m.Yaw() != 0.2 || m.Pitch() != 0.1 {
		t.Errorf("Non-finite deltas should be dropped, got (%v,%v)", m.Yaw(), m.Pitch())
	}
}

func TestMouseLookIgnoresButtons(t *testing.T) {
	m := NewMouseLookScript(0, 0)

	m.OnEvent(input.ButtonChange{Button: input.ButtonPrimary, Pressed: true})

	if m.Yaw() != 0 || m.Pitch() != 0 {
		t.Error("Button events should not move the view")
	}
}

func TestMouseLookPitchClamp(t *testing.T) {
	m := NewMouseLookScript(0, controls.MaxPitch-0.01)

	m.OnEvent(input.MotionDelta{DY: 1.0})

	if m.Pitch() != controls.MaxPitch {
		t.Errorf("Expected pitch %v, got %v", controls.MaxPitch, m.Pitch())
	}
}

func TestMouseLookSaveLoad(t *testing.T) {
	st, _ := behaviour.LookupScriptByID(MouseLookScriptID)
	src := NewMouseLookScript(3.5, -0.25)
	src.Sensitivity = 0.002

	fields := st.Save(src)

	dst := st.New()
	if err := st.Load(dst, fields); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	restored := dst.(*MouseLookScript)
	if restored.Yaw() != 3.5 || restored.Pitch() != -0.25 || restored.Sensitivity != 0.002 {
		t.Errorf("Restored (%v,%v,%v), want (3.5,-0.25,0.002)", restored.Yaw(), restored.Pitch(), restored.Sensitivity)
	}
}

func TestMouseLookLoadFromJSONNumbers(t *testing.T) {
	m := NewMouseLookScript(0, 0)

	err := loadMouseLook(m, map[string]any{"yaw": float64(1), "pitch": float64(5)})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if m.Yaw() != 1 || m.Pitch() != controls.MaxPitch {
		t.Errorf("Expected (1,%v), got (%v,%v)", controls.MaxPitch, m.Yaw(), m.Pitch())
	}
	if m.Sensitivity != 1 {
		t.Errorf("Missing field should keep sensitivity, got %v", m.Sensitivity)
	}
}

func TestMouseLookLoadRejectsBadFields(t *testing.T) {
	m := NewMouseLookScript(0, 0)

	if err := loadMouseLook(m, map[string]any{"yaw": "left"}); err == nil {
		t.Error("Expected error for string yaw")
	}
	if err := loadMouseLook(m, map[string]any{"pitch": math.NaN()}); err == nil {
		t.Error("Expected error for NaN pitch")
	}
	if err := loadMouseLook(&ClickerScript{}, nil); err == nil {
		t.Error("Expected error for wrong component type")
	}
}

func TestMouseLookDropsDeltaThatOverflowsFloat32(t *testing.T) {
	m := NewMouseLookScript(0.2, 0.1)

	m.OnEvent(input.MotionDelta{DX: 1e39})
	m.OnEvent(input.MotionDelta{DX: -1e39})
	m.OnEvent(input.MotionDelta{DY: -1e39})

	if m.Yaw() != 0.2 || m.Pitch() != 0.1 {
		t.Errorf("Overflowing deltas should be dropped, got (%v,%v)", m.Yaw(), m.Pitch())
	}
	rot := m.look.Rotation()
	if math.IsNaN(float64(rot.W)) {
		t.Errorf("Rotation should stay finite, got %v", rot)
	}
}

func TestMouseLookDropsDeltaThatOverflowsAfterScaling(t *testing.T) {
	m := NewMouseLookScript(0, 0)
	m.Sensitivity = 1e30

	m.OnEvent(input.MotionDelta{DX: 1e10, DY: 0})

	if m.Yaw() != 0 {
		t.Errorf("Scaled overflow should be dropped, got yaw %v", m.Yaw())
	}

	m.OnEvent(input.MotionDelta{DX: 1e-30, DY: 0})
	if !mgl32.FloatEqualThreshold(m.Yaw(), 1, 1e-5) {
		t.Errorf("Finite scaled delta should apply, got yaw %v", m.Yaw())
	}
}

func TestMouseLookWarnsOncePerInstance(t *testing.T) {
	logs := observeLogs(t)

	first := NewMouseLookScript(0, 0)
	first.OnEvent(input.MotionDelta{DX: math.NaN()})
	first.OnEvent(input.MotionDelta{DY: math.Inf(1)})

	if logs.Len() != 1 {
		t.Fatalf("Expected 1 warning from the first script, got %d", logs.Len())
	}
	if entry := logs.All()[0]; entry.Level != zapcore.WarnLevel {
		t.Errorf("Expected warn level, got %v", entry.Level)
	}

	second := NewMouseLookScript(0, 0)
	second.OnEvent(input.MotionDelta{DX: 1e39})
	second.OnEvent(input.MotionDelta{DX: 1e39})

	if logs.Len() != 2 {
		t.Errorf("Expected the second script to log its own warning, got %d total", logs.Len())
	}
}

func TestMouseLookFiniteDeltasDoNotWarn(t *testing.T) {
	logs := observeLogs(t)
	m := NewMouseLookScript(0, 0)

	m.OnEvent(input.MotionDelta{DX: 0.5, DY: -0.5})

	if logs.Len() != 0 {
		t.Errorf("Expected no warnings, got %d", logs.Len())
	}
}

func TestMouseLookLoadRejectsFloat32Overflow(t *testing.T) {
	m := NewMouseLookScript(0.5, 0)

	if err := loadMouseLook(m, map[string]any{"yaw": 1e300}); err == nil {
		t.Error("Expected error for yaw beyond float32 range")
	}
	if m.Yaw() != 0.5 {
		t.Errorf("Failed load should leave yaw unchanged, got %v", m.Yaw())
	}
}
