package scene

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

const sampleScene = `
objects:
  - name: crate
    position: [1, 2, 3]
    rotation: [0, 90, 0]
    scale: [2, 1, 1]
    bounds:
      center: [0, 0.5, 0]
      size: [1, 1, 1]
  - name: marker
`

func TestLoad(t *testing.T) {
	t.Parallel()

	s, err := Load(strings.NewReader(sampleScene))
	require.NoError(t, err)
	require.Len(t, s.Objects, 2)

	crate := s.Objects[0]
	require.Equal(t, "crate", crate.Name)
	require.Equal(t, mgl64.Vec3{1, 2, 3}, crate.Position)
	require.Equal(t, mgl64.Vec3{2, 1, 1}, crate.Scale)
	require.NotNil(t, crate.Bounds)
	require.Equal(t, mgl64.Vec3{0, 0.5, 0}, crate.Bounds.Center)
	require.True(t, SameOrientation(Euler(0, 90, 0), crate.Rotation, 1e-12))

	marker := s.Objects[1]
	require.Equal(t, mgl64.Vec3{1, 1, 1}, marker.Scale)
	require.Nil(t, marker.Bounds)
	require.True(t, SameOrientation(mgl64.QuatIdent(), marker.Rotation, 1e-12))
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	for _, doc := range []string{
		"objects: [",
		"objects:\n  - name: a\n    position: [1, 2]\n",
		"objects:\n  - name: a\n    bounds: {center: [0, 0, 0], size: [1]}\n",
	} {
		_, err := Load(strings.NewReader(doc))
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrDecode), "error %v is not ErrDecode", err)
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	t.Parallel()

	s, err := Load(strings.NewReader(sampleScene))
	require.NoError(t, err)

	var buf bytes.Buffer

	require.NoError(t, s.Write(context.Background(), &buf))
	require.Contains(t, buf.String(), "name: crate")
	require.NotContains(t, buf.String(), "marker\n    bounds")

	again, err := Load(&buf)
	require.NoError(t, err)
	require.Len(t, again.Objects, len(s.Objects))

	for i := range s.Objects {
		a, b := s.Objects[i], again.Objects[i]
		require.Equal(t, a.Name, b.Name)
		require.Equal(t, a.Position, b.Position)
		require.Equal(t, a.Scale, b.Scale)
		require.Equal(t, a.Bounds, b.Bounds)
		require.True(t, SameOrientation(a.Rotation, b.Rotation, 1e-9))
	}
}

func TestOpen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleScene), 0o600))

	s, err := Open(path)
	require.NoError(t, err)
	require.Len(t, s.Objects, 2)

	_, err = Open(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, ErrDecode)
}

func TestClone(t *testing.T) {
	t.Parallel()

	s, err := Load(strings.NewReader(sampleScene))
	require.NoError(t, err)

	c := s.Clone()
	c.Objects[0].Bounds.Size[0] = 9
	c.Objects[0].Position[0] = 9

	require.Equal(t, 1.0, s.Objects[0].Bounds.Size[0])
	require.Equal(t, 1.0, s.Objects[0].Position[0])
}
