package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

func rotate(q mgl64.Quat, v mgl64.Vec3) mgl64.Vec3 { return q.Rotate(v) }

func TestEuler_Order(t *testing.T) {
	t.Parallel()

	// Z first, then X, then Y.
	q := Euler(90, 90, 0)
	got := rotate(q, mgl64.Vec3{0, 0, 1})

	// X by 90 sends +Z to -Y; Y then leaves -Y fixed.
	require.InDeltaSlice(t, []float64{0, -1, 0}, got[:], 1e-12)

	q = Euler(0, 90, 90)
	got = rotate(q, mgl64.Vec3{1, 0, 0})

	// Z by 90 sends +X to +Y; Y then leaves +Y fixed.
	require.InDeltaSlice(t, []float64{0, 1, 0}, got[:], 1e-12)
}

func TestEuler_NotSequentialComposition(t *testing.T) {
	t.Parallel()

	direct := Euler(10, 20, 30)

	// Applying X, then Y, then Z as successive rotations is a different
	// orientation.
	sequential := mgl64.QuatRotate(mgl64.DegToRad(30), unitZ).
		Mul(mgl64.QuatRotate(mgl64.DegToRad(20), unitY)).
		Mul(mgl64.QuatRotate(mgl64.DegToRad(10), unitX))

	require.False(t, SameOrientation(direct, sequential, 1e-9))
}

func TestEulerAngles_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []mgl64.Vec3{
		{0, 0, 0},
		{10, 20, 30},
		{45, 0, 0},
		{0, 135, 0},
		{0, 0, 270},
		{300, 200, 100},
		{-30, -60, -90},
		{90, 30, 0},
		{270, 10, 0},
	}

	for _, in := range tests {
		q := EulerVec(in)
		out := EulerAngles(q)

		for _, c := range out {
			require.GreaterOrEqual(t, c, 0.0)
			require.Less(t, c, 360.0)
		}

		require.Truef(t, SameOrientation(q, EulerVec(out), 1e-9),
			"Euler%v decomposed to %v", in, out)
	}
}

func TestEulerAngles_Canonical(t *testing.T) {
	t.Parallel()

	out := EulerAngles(Euler(10, 20, 30))
	require.InDeltaSlice(t, []float64{10, 20, 30}, out[:], 1e-9)

	out = EulerAngles(Euler(-10, 0, 0))
	require.InDeltaSlice(t, []float64{350, 0, 0}, out[:], 1e-9)
}

func TestNormalizeDegrees(t *testing.T) {
	t.Parallel()

	tests := []struct{ in, want float64 }{
		{0, 0},
		{360, 0},
		{-90, 270},
		{725, 5},
		{-720, 0},
	}

	for _, tt := range tests {
		require.InDelta(t, tt.want, NormalizeDegrees(tt.in), 1e-12, "NormalizeDegrees(%v)", tt.in)
	}
}
