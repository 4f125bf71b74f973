package transform

//go:generate go tool stringer --linecomment --type Attribute --output field_string.go

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/ardnew/xform/scene"
)

// Attribute is the transform property an expression computes.
type Attribute int

const (
	Position Attribute = iota
	Rotation
	Scale
)

// Attributes lists the attributes in validation order.
var Attributes = [...]Attribute{Position, Scale, Rotation}

// Of returns the pre-transform vector of o for a. Rotation is reported as
// Euler degrees in [0, 360).
func (a Attribute) Of(o scene.Object) mgl64.Vec3 {
	switch a {
	case Rotation:
		return o.EulerAngles()
	case Scale:
		return o.Scale
	default:
		return o.Position
	}
}

// Field is one axis of one attribute.
type Field struct {
	Attribute Attribute
	Axis      scene.Axis
}

// String returns the label of f, e.g. "Rotation.Z".
func (f Field) String() string { return f.Attribute.String() + "." + f.Axis.Label() }

// Fields lists all nine fields in validation order: Position, Scale, then
// Rotation, each X, Y, Z.
func Fields() []Field {
	fields := make([]Field, 0, len(Attributes)*len(scene.Axes))

	for _, a := range Attributes {
		for _, x := range scene.Axes {
			fields = append(fields, Field{Attribute: a, Axis: x})
		}
	}

	return fields
}

// ErrField reports an unrecognized field label.
var ErrField = newError("unknown field")

// ParseField parses a label such as "Position.X" or "scale.z",
// ignoring case.
func ParseField(label string) (Field, error) {
	attr, axis, ok := strings.Cut(strings.TrimSpace(label), ".")
	if ok {
		for _, f := range Fields() {
			if strings.EqualFold(attr, f.Attribute.String()) &&
				strings.EqualFold(axis, f.Axis.Label()) {
				return f, nil
			}
		}
	}

	return Field{}, ErrField.Wrap(errors.New(strconv.Quote(label))).
		With(slog.String("field", label))
}

// DefaultExpression leaves a value unchanged.
const DefaultExpression = "this"

// Expressions holds the source text of all nine axis expressions.
type Expressions struct {
	Position [3]string
	Rotation [3]string
	Scale    [3]string
}

// DefaultExpressions returns expressions that leave every value unchanged.
func DefaultExpressions() Expressions {
	d := [3]string{DefaultExpression, DefaultExpression, DefaultExpression}

	return Expressions{Position: d, Rotation: d, Scale: d}
}

// Get returns the expression for f. An empty expression is returned as is
// and fails validation; use [DefaultExpressions] to leave values unchanged.
func (e Expressions) Get(f Field) string {
	switch f.Attribute {
	case Position:
		return e.Position[f.Axis]
	case Rotation:
		return e.Rotation[f.Axis]
	case Scale:
		return e.Scale[f.Axis]
	default:
		return ""
	}
}

// Set replaces the expression for f.
func (e *Expressions) Set(f Field, source string) {
	switch f.Attribute {
	case Position:
		e.Position[f.Axis] = source
	case Rotation:
		e.Rotation[f.Axis] = source
	case Scale:
		e.Scale[f.Axis] = source
	}
}

// Result holds the nine values computed for one object.
type Result struct {
	Position mgl64.Vec3
	Rotation mgl64.Vec3 // Euler degrees
	Scale    mgl64.Vec3
}

func (r *Result) set(f Field, v float64) {
	switch f.Attribute {
	case Position:
		r.Position[f.Axis] = v
	case Rotation:
		r.Rotation[f.Axis] = v
	case Scale:
		r.Scale[f.Axis] = v
	}
}

// Get returns the value computed for f.
func (r Result) Get(f Field) float64 {
	switch f.Attribute {
	case Rotation:
		return r.Rotation[f.Axis]
	case Scale:
		return r.Scale[f.Axis]
	default:
		return r.Position[f.Axis]
	}
}
