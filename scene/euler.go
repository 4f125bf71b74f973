package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	unitX = mgl64.Vec3{1, 0, 0}
	unitY = mgl64.Vec3{0, 1, 0}
	unitZ = mgl64.Vec3{0, 0, 1}
)

// Euler returns the rotation of z degrees about the Z axis, then x degrees
// about the X axis, then y degrees about the Y axis.
func Euler(x, y, z float64) mgl64.Quat {
	qx := mgl64.QuatRotate(mgl64.DegToRad(x), unitX)
	qy := mgl64.QuatRotate(mgl64.DegToRad(y), unitY)
	qz := mgl64.QuatRotate(mgl64.DegToRad(z), unitZ)

	return qy.Mul(qx).Mul(qz).Normalize()
}

// EulerVec is Euler applied to the components of v.
func EulerVec(v mgl64.Vec3) mgl64.Quat { return Euler(v[0], v[1], v[2]) }

// gimbalLimit is the |sin x| above which the Y and Z axes are considered
// aligned.
const gimbalLimit = 1 - 1e-9

// EulerAngles decomposes q into the angles accepted by [Euler], in degrees,
// each normalized to [0, 360). At gimbal lock the Z angle is reported as 0.
func EulerAngles(q mgl64.Quat) mgl64.Vec3 {
	// R = Ry·Rx·Rz
	m := q.Normalize().Mat4()

	sx := clamp(-m.At(1, 2), -1, 1)

	var x, y, z float64

	x = math.Asin(sx)

	if math.Abs(sx) < gimbalLimit {
		y = math.Atan2(m.At(0, 2), m.At(2, 2))
		z = math.Atan2(m.At(1, 0), m.At(1, 1))
	} else {
		y = math.Atan2(-m.At(2, 0), m.At(0, 0))
	}

	return mgl64.Vec3{
		NormalizeDegrees(mgl64.RadToDeg(x)),
		NormalizeDegrees(mgl64.RadToDeg(y)),
		NormalizeDegrees(mgl64.RadToDeg(z)),
	}
}

// NormalizeDegrees maps d into [0, 360).
func NormalizeDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}

	if d >= 360 {
		d = 0
	}

	return d
}

// SameOrientation reports whether a and b rotate vectors identically within
// tolerance eps; q and -q describe the same orientation.
func SameOrientation(a, b mgl64.Quat, eps float64) bool {
	return math.Abs(math.Abs(a.Normalize().Dot(b.Normalize()))-1) <= eps
}

func clamp(v, lo, hi float64) float64 { return math.Max(lo, math.Min(hi, v)) }
