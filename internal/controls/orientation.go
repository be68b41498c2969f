package controls

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxPitch is the pitch limit in radians. Pitch stays within [-MaxPitch, MaxPitch].
const MaxPitch = float32(math.Pi / 2)

var (
	axisX = mgl32.Vec3{1, 0, 0}
	axisY = mgl32.Vec3{0, 1, 0}
)

// OrientationAccumulator integrates pointer motion deltas into yaw and pitch
// angles (radians). Yaw is unbounded; pitch is clamped after every update.
// The zero value is a valid accumulator at yaw = pitch = 0.
type OrientationAccumulator struct {
	yaw   float32
	pitch float32
}

// NewOrientationAccumulator starts at the given orientation. pitch is clamped.
func NewOrientationAccumulator(yaw, pitch float32) *OrientationAccumulator {
	return &OrientationAccumulator{
		yaw:   yaw,
		pitch: mgl32.Clamp(pitch, -MaxPitch, MaxPitch),
	}
}

// ApplyDelta adds dx to yaw and dy to pitch. Callers must filter out
// non-finite values; the accumulator does not validate them.
func (o *OrientationAccumulator) ApplyDelta(dx, dy float32) {
	o.pitch = mgl32.Clamp(o.pitch+dy, -MaxPitch, MaxPitch)
	o.yaw += dx
}

func (o *OrientationAccumulator) Yaw() float32 {
	return o.yaw
}

func (o *OrientationAccumulator) Pitch() float32 {
	return o.pitch
}

// Rotation composes R(Y, yaw) * R(X, pitch): pitch is applied first, in the
// object's local frame, then yaw about the vertical axis. Swapping the order
// would roll the view once both angles are non-zero.
func (o *OrientationAccumulator) Rotation() mgl32.Quat {
	return mgl32.QuatRotate(o.yaw, axisY).Mul(mgl32.QuatRotate(o.pitch, axisX))
}
