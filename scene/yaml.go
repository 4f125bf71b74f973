package scene

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/goccy/go-yaml"
	"github.com/klauspost/readahead"
)

// document is the YAML layout of a scene file:
//
//	objects:
//	  - name: crate
//	    position: [0, 1, 0]
//	    rotation: [0, 90, 0]   # Euler degrees
//	    scale: [1, 1, 1]
//	    bounds:
//	      center: [0, 0.5, 0]
//	      size: [1, 1, 1]
type document struct {
	Objects []objectDoc `yaml:"objects"`
}

type objectDoc struct {
	Name     string     `yaml:"name"`
	Position []float64  `yaml:"position,flow,omitempty"`
	Rotation []float64  `yaml:"rotation,flow,omitempty"`
	Scale    []float64  `yaml:"scale,flow,omitempty"`
	Bounds   *boundsDoc `yaml:"bounds,omitempty"`
}

type boundsDoc struct {
	Center []float64 `yaml:"center,flow"`
	Size   []float64 `yaml:"size,flow"`
}

// Load decodes a YAML scene from r. Omitted position and rotation default to
// zero, an omitted scale to one.
func Load(r io.Reader) (*Scene, error) {
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, ErrDecode.Wrap(err)
	}

	var doc document

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, ErrDecode.Wrap(err)
	}

	s := &Scene{Objects: make([]Object, 0, len(doc.Objects))}

	for i, od := range doc.Objects {
		o, err := od.object()
		if err != nil {
			return nil, err.With(slog.Int("object", i), slog.String("name", od.Name))
		}

		s.Objects = append(s.Objects, o)
	}

	return s, nil
}

// Open loads the scene stored at path.
func Open(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ErrDecode.Wrap(err).With(slog.String("path", path))
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, err
	}

	return s, nil
}

// Write encodes s as YAML to w.
func (s *Scene) Write(ctx context.Context, w io.Writer, opts ...yaml.EncodeOption) error {
	doc := document{Objects: make([]objectDoc, len(s.Objects))}

	for i, o := range s.Objects {
		doc.Objects[i] = makeObjectDoc(o)
	}

	data, err := yaml.MarshalContext(ctx, doc, opts...)
	if err != nil {
		return ErrEncode.Wrap(err)
	}

	if _, err := w.Write(data); err != nil {
		return ErrEncode.Wrap(err)
	}

	return nil
}

func (od objectDoc) object() (Object, *Error) {
	o := NewObject(od.Name)

	var (
		euler mgl64.Vec3
		err   *Error
	)

	if o.Position, err = vec3("position", od.Position, mgl64.Vec3{}); err != nil {
		return o, err
	}

	if euler, err = vec3("rotation", od.Rotation, mgl64.Vec3{}); err != nil {
		return o, err
	}

	if o.Scale, err = vec3("scale", od.Scale, mgl64.Vec3{1, 1, 1}); err != nil {
		return o, err
	}

	o.Rotation = EulerVec(euler)

	if od.Bounds != nil {
		var b Bounds

		if b.Center, err = vec3("bounds.center", od.Bounds.Center, mgl64.Vec3{}); err != nil {
			return o, err
		}

		if b.Size, err = vec3("bounds.size", od.Bounds.Size, mgl64.Vec3{}); err != nil {
			return o, err
		}

		o.Bounds = &b
	}

	return o, nil
}

func makeObjectDoc(o Object) objectDoc {
	od := objectDoc{
		Name:     o.Name,
		Position: o.Position[:],
		Rotation: roundVec(o.EulerAngles()),
		Scale:    o.Scale[:],
	}

	if o.Bounds != nil {
		od.Bounds = &boundsDoc{
			Center: o.Bounds.Center[:],
			Size:   o.Bounds.Size[:],
		}
	}

	return od
}

func vec3(field string, v []float64, def mgl64.Vec3) (mgl64.Vec3, *Error) {
	switch len(v) {
	case 0:
		return def, nil
	case 3:
		return mgl64.Vec3{v[0], v[1], v[2]}, nil
	default:
		return def, ErrDecode.
			Wrap(fmt.Errorf("%s: want 3 components, got %d", field, len(v))).
			With(slog.String("field", field))
	}
}

// roundVec trims decomposition noise so that written angles read as typed.
func roundVec(v mgl64.Vec3) []float64 {
	out := make([]float64, 3)

	for i, f := range v {
		r, _ := strconv.ParseFloat(strconv.FormatFloat(f, 'f', 9, 64), 64)
		if r >= 360 || r == 0 {
			r = 0 // also clears negative zero
		}

		out[i] = r
	}

	return out
}
