package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/xform/cli/cmd"
	"github.com/ardnew/xform/log"
	"github.com/ardnew/xform/scene"
	"github.com/ardnew/xform/transform"
)

// testRun runs the CLI against a temporary configuration directory and
// returns what the command wrote.
func testRun(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()

	t.Cleanup(func() { log.Config(log.WithDefaults(nil)) })

	var out bytes.Buffer

	err := run(
		cmd.WithOutput(t.Context(), &out),
		func(int) {},
		paths{config: filepath.Join(dir, baseConfig+yamlExt), cache: dir},
		append([]string{"--log-level=error", "--no-log-pretty"}, args...)...,
	)

	return out.String(), err
}

func TestRun_Eval(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"eval", "1 + 2 * 3"}, "7\n"},
		{[]string{"eval", "-v", "w=0.5", "w * 4"}, "2\n"},
		{[]string{"eval", "--var", "a=2", "--var", "b=3", "max(a, b) ^ 2"}, "9\n"},
		{[]string{"eval", "this + index"}, "0\n"},
	}

	for _, tt := range tests {
		got, err := testRun(t, t.TempDir(), tt.args...)
		if err != nil {
			t.Errorf("%q: %v", tt.args, err)

			continue
		}

		if got != tt.want {
			t.Errorf("%q = %q, want %q", tt.args, got, tt.want)
		}
	}
}

func TestRun_EvalError(t *testing.T) {
	_, err := testRun(t, t.TempDir(), "eval", "--no-math", "sqrt(4)")
	if !errors.Is(err, cmd.ErrEvaluate) {
		t.Errorf("error = %v, want %v", err, cmd.ErrEvaluate)
	}
}

func TestRun_Check(t *testing.T) {
	got, err := testRun(t, t.TempDir(), "check", "--position-x", "space_between(0.5, index)")
	if err != nil {
		t.Fatal(err)
	}

	if got != "ok\n" {
		t.Errorf("check = %q, want %q", got, "ok\n")
	}

	got, err = testRun(t, t.TempDir(), "check",
		"--position-x", "1 +", "--rotation-z", "nope")
	if !errors.Is(err, transform.ErrInvalidExpressions) {
		t.Fatalf("error = %v, want %v", err, transform.ErrInvalidExpressions)
	}

	if !strings.HasSuffix(err.Error(), "Failed to compile expression in Position.X, Rotation.Z") {
		t.Errorf("error message = %q", err.Error())
	}

	if !strings.Contains(got, "Position.X") || !strings.Contains(got, "Rotation.Z") {
		t.Errorf("check output does not name the failing fields:\n%s", got)
	}
}

func TestRun_CheckEmptyExpression(t *testing.T) {
	got, err := testRun(t, t.TempDir(), "check", "--position-x", "")
	if !errors.Is(err, transform.ErrInvalidExpressions) {
		t.Fatalf("error = %v, want %v", err, transform.ErrInvalidExpressions)
	}

	if !strings.HasPrefix(got, `Position.X: "": `) {
		t.Errorf("check output = %q", got)
	}
}

func TestRun_ConfigFile(t *testing.T) {
	dir := t.TempDir()

	conf := "check:\n  scale_y: nope\n"
	if err := os.WriteFile(filepath.Join(dir, baseConfig+yamlExt), []byte(conf), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := testRun(t, dir, "check")

	var ve *transform.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error = %v, want a validation error", err)
	}

	if labels := ve.Labels(); len(labels) != 1 || labels[0] != "Scale.Y" {
		t.Errorf("failing fields = %v, want [Scale.Y]", labels)
	}

	// The command line overrides the file.
	if _, err := testRun(t, dir, "check", "--scale-y", "this"); err != nil {
		t.Errorf("flag should override config: %v", err)
	}
}

func TestRun_Preview(t *testing.T) {
	got, err := testRun(t, t.TempDir(), "preview", "--rotation-y", "this + 90", "--scale-x", "2")
	if err != nil {
		t.Fatal(err)
	}

	for _, line := range []string{"Position.X = 0", "Rotation.Y = 90", "Scale.X    = 2"} {
		if !strings.Contains(got, line+"\n") {
			t.Errorf("preview output missing %q:\n%s", line, got)
		}
	}

	got, err = testRun(t, t.TempDir(), "preview", "-f", "yaml", "--position-z", "index - 1")
	if err != nil {
		t.Fatal(err)
	}

	var doc map[string]float64
	if err := yaml.Unmarshal([]byte(got), &doc); err != nil {
		t.Fatalf("preview yaml: %v\n%s", err, got)
	}

	if len(doc) != 9 || doc["Position.Z"] != -1 {
		t.Errorf("preview yaml = %v", doc)
	}
}

const testScene = `objects:
  - name: a
    position: [0, 0, 0]
  - name: b
    position: [1, 2, 3]
  - name: c
    position: [5, 0, 0]
`

func TestRun_Apply(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "scene.yaml")
	out := filepath.Join(dir, "out.yaml")

	if err := os.WriteFile(in, []byte(testScene), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := testRun(t, dir, "apply", "-s", in, "-o", out,
		"--where", `name != "a"`,
		"--position-x", "this + 10 * index",
		"--scale-z", "3",
	)
	if err != nil {
		t.Fatal(err)
	}

	s, err := scene.Open(out)
	if err != nil {
		t.Fatal(err)
	}

	wantX := []float64{0, 1, 15}
	wantScaleZ := []float64{1, 3, 3}

	for i, o := range s.Objects {
		if o.Position.X() != wantX[i] || o.Scale.Z() != wantScaleZ[i] {
			t.Errorf("%s: position.x %v, scale.z %v; want %v, %v",
				o.Name, o.Position.X(), o.Scale.Z(), wantX[i], wantScaleZ[i])
		}
	}
}

func TestRun_ApplyInvalidLeavesOutputUnwritten(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "scene.yaml")
	out := filepath.Join(dir, "out.yaml")

	if err := os.WriteFile(in, []byte(testScene), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := testRun(t, dir, "apply", "-s", in, "-o", out, "--position-x", "bogus(1)")
	if !errors.Is(err, transform.ErrInvalidExpressions) {
		t.Fatalf("error = %v, want %v", err, transform.ErrInvalidExpressions)
	}

	if _, err := os.Stat(out); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("output written despite invalid expressions: %v", err)
	}
}

func TestRun_Init(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, baseConfig+yamlExt)

	if _, err := testRun(t, dir, "init"); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	for _, line := range []string{"log-level: error", "log-format: json", "log-pretty: false"} {
		if !strings.Contains(string(data), line+"\n") {
			t.Errorf("config missing %q:\n%s", line, data)
		}
	}

	if _, err := testRun(t, dir, "init"); !errors.Is(err, cmd.ErrFileExists) {
		t.Errorf("second init error = %v, want %v", err, cmd.ErrFileExists)
	}

	if _, err := testRun(t, dir, "init", "--force"); err != nil {
		t.Errorf("init --force: %v", err)
	}

	// The generated file must be accepted as configuration.
	if _, err := testRun(t, dir, "eval", "1"); err != nil {
		t.Errorf("eval with generated config: %v", err)
	}
}
