package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// TestInitRun tests the Init.Run command.
func TestInitRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		force   bool
		exists  bool
		wantErr error
	}{
		{name: "create_new_config"},
		{name: "overwrite_existing_with_force", force: true, exists: true},
		{name: "fail_without_force", exists: true, wantErr: ErrFileExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			confPath := filepath.Join(t.TempDir(), "config.yaml")

			if tt.exists {
				if err := os.WriteFile(confPath, []byte("existing: true\n"), 0o600); err != nil {
					t.Fatal(err)
				}
			}

			var cli struct {
				Verbose bool   `help:"Enable verbose output"`
				Output  string `help:"Output file"`
				Ratio   float64
			}

			parser, err := kong.New(&cli, kong.Vars{ConfigIdentifier: confPath})
			if err != nil {
				t.Fatal(err)
			}

			ktx, err := parser.Parse([]string{"--verbose", "--ratio=0.5"})
			if err != nil {
				t.Fatal(err)
			}

			err = (&Init{Force: tt.force}).Run(WithContext(context.Background(), ktx))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Init.Run() error = %v, want %v", err, tt.wantErr)
			}

			content, err := os.ReadFile(confPath)
			if err != nil {
				t.Fatal(err)
			}

			if tt.wantErr != nil {
				if string(content) != "existing: true\n" {
					t.Errorf("Init.Run() modified the existing file: %q", content)
				}

				return
			}

			if !strings.HasPrefix(string(content), "# ") {
				t.Errorf("generated config has no header: %q", content)
			}

			var doc map[string]any
			if err := yaml.Unmarshal(content, &doc); err != nil {
				t.Fatalf("generated config is not valid YAML: %v", err)
			}

			if doc["verbose"] != true || doc["ratio"] != 0.5 {
				t.Errorf("generated config = %v", doc)
			}

			if _, ok := doc["output"]; ok {
				t.Error("generated config includes an unset string flag")
			}

			if _, ok := doc["help"]; ok {
				t.Error("generated config includes the help flag")
			}
		})
	}
}

// TestInitFlagValue tests the flagValue function with different types.
func TestInitFlagValue(t *testing.T) {
	t.Parallel()

	var cli struct {
		Flag   bool
		Count  int
		Name   string
		Empty  string
		Tags   []string
		NoTags []string
	}

	parser, err := kong.New(&cli)
	if err != nil {
		t.Fatal(err)
	}

	ktx, err := parser.Parse([]string{"--count=3", "--name=x", "--tags=a,b"})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		flag   string
		want   any
		wantOK bool
	}{
		{"flag", false, true},
		{"count", 3, true},
		{"name", "x", true},
		{"empty", nil, false},
		{"no-tags", nil, false},
	}

	flags := map[string]*kong.Flag{}
	for _, f := range ktx.Model.Flags {
		flags[f.Name] = f
	}

	for _, tt := range tests {
		got, ok := flagValue(ktx, flags[tt.flag])
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Errorf("flagValue(%s) = %v, %v; want %v, %v", tt.flag, got, ok, tt.want, tt.wantOK)
		}
	}

	if got, ok := flagValue(ktx, flags["tags"]); !ok || len(got.([]string)) != 2 {
		t.Errorf("flagValue(tags) = %v, %v", got, ok)
	}
}
