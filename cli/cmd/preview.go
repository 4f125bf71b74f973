package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/xform/scene"
	"github.com/ardnew/xform/transform"
)

// Preview evaluates the axis expressions once as a dry run and prints the
// nine results.
type Preview struct {
	Expressions `embed:""`

	Scene  string `help:"Bind the objects of a scene file."            short:"s" type:"existingfile"`
	Format string `default:"text" enum:"text,yaml" help:"Output format." short:"f"`
}

// Run executes the preview command.
func (p *Preview) Run(ctx context.Context) error {
	var objects []scene.Object

	if p.Scene != "" {
		s, err := scene.Open(p.Scene)
		if err != nil {
			return err
		}

		objects = s.Objects
	}

	r, err := transform.Preview(p.Get(), objects, p.options()...)
	if err != nil {
		return err
	}

	w := outputFrom(ctx)

	if p.Format == "yaml" {
		doc := make(yaml.MapSlice, 0, len(transform.Fields()))
		for _, f := range transform.Fields() {
			doc = append(doc, yaml.MapItem{Key: f.String(), Value: r.Get(f)})
		}

		data, err := yaml.MarshalContext(ctx, doc)
		if err != nil {
			return ErrYAMLMarshal.Wrap(err)
		}

		if _, err := w.Write(data); err != nil {
			return ErrWriteOutput.Wrap(err)
		}

		return nil
	}

	for _, f := range transform.Fields() {
		fmt.Fprintf(w, "%-10s = %s\n", f, formatFloat(r.Get(f)))
	}

	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
