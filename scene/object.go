// Package scene models the objects a transform batch operates on and reads
// and writes them as YAML.
package scene

//go:generate go tool stringer --linecomment --type Axis --output object_string.go

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Axis selects one component of a vector.
type Axis int

const (
	AxisX Axis = iota // x
	AxisY             // y
	AxisZ             // z
)

// Axes lists the axes in component order.
var Axes = [...]Axis{AxisX, AxisY, AxisZ}

// Label returns the upper-case axis name used in diagnostics.
func (a Axis) Label() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return "?"
	}
}

// Of returns the component of v on axis a.
func (a Axis) Of(v mgl64.Vec3) float64 { return v[a] }

// Bounds is an axis-aligned bounding box in the object's local space.
type Bounds struct {
	Center mgl64.Vec3
	Size   mgl64.Vec3
}

// Object is a named transform with optional render bounds.
type Object struct {
	Name     string
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    mgl64.Vec3
	Bounds   *Bounds // nil when the object has no renderer
}

// NewObject returns an object at the origin with identity rotation and unit
// scale.
func NewObject(name string) Object {
	return Object{
		Name:     name,
		Rotation: mgl64.QuatIdent(),
		Scale:    mgl64.Vec3{1, 1, 1},
	}
}

// EulerAngles returns the rotation of o as Euler angles in degrees, each
// normalized to [0, 360).
func (o Object) EulerAngles() mgl64.Vec3 { return EulerAngles(o.Rotation) }

// Clone returns a deep copy of o.
func (o Object) Clone() Object {
	if o.Bounds != nil {
		b := *o.Bounds
		o.Bounds = &b
	}

	return o
}

// Scene is an ordered collection of objects.
type Scene struct {
	Objects []Object
}

// Clone returns a deep copy of s.
func (s *Scene) Clone() *Scene {
	c := &Scene{Objects: make([]Object, len(s.Objects))}
	for i, o := range s.Objects {
		c.Objects[i] = o.Clone()
	}

	return c
}
