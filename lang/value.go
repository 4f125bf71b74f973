package lang

//go:generate go tool stringer --linecomment --type ValueKind --output value_string.go

// ValueKind identifies the payload of a [Value].
type ValueKind int

const (
	ValueScalar    ValueKind = iota // scalar
	ValueSequence                   // sequence
	ValueAttribute                  // attribute
)

// Value is a variable binding payload. The zero Value is the scalar 0.
//
// Only scalars are visible to expressions. Sequences and attributes carry
// data for function implementations.
type Value struct {
	kind   ValueKind
	scalar float64
	items  []any
	attr   string
}

// Scalar returns a numeric value.
func Scalar(f float64) Value { return Value{kind: ValueScalar, scalar: f} }

// Sequence returns a value holding opaque handles.
func Sequence(items ...any) Value { return Value{kind: ValueSequence, items: items} }

// Attribute returns a value holding a label such as an axis name.
func Attribute(name string) Value { return Value{kind: ValueAttribute, attr: name} }

// Kind returns the payload kind of v.
func (v Value) Kind() ValueKind { return v.kind }

// Float returns the scalar payload of v, and false if v is not a scalar.
func (v Value) Float() (float64, bool) { return v.scalar, v.kind == ValueScalar }

// Items returns the handles of a sequence, or nil.
func (v Value) Items() []any {
	if v.kind != ValueSequence {
		return nil
	}

	return v.items
}

// Label returns the name held by an attribute, or "".
func (v Value) Label() string {
	if v.kind != ValueAttribute {
		return ""
	}

	return v.attr
}

// Variables maps case-sensitive names to values.
type Variables map[string]Value

// Scalar returns the scalar bound to name, and false if name is unbound or
// not a scalar.
func (vs Variables) Scalar(name string) (float64, bool) {
	v, ok := vs[name]
	if !ok {
		return 0, false
	}

	return v.Float()
}

// Clone returns a shallow copy of vs.
func (vs Variables) Clone() Variables {
	c := make(Variables, len(vs))
	for k, v := range vs {
		c[k] = v
	}

	return c
}
