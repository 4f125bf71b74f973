package lang

import (
	"log/slog"
	"maps"
	"slices"
)

// Program is a compiled expression. It is immutable and safe for concurrent
// use.
type Program struct {
	source string
	root   Node
}

// Compile tokenizes and parses source.
func Compile(source string, opts ...Option) (*Program, error) {
	o := makeOptions(opts...)

	toks, err := Tokenize(source)
	if err != nil {
		o.logger.Trace("tokenize failed",
			slog.String("source", source), slog.Any("error", err))

		return nil, err
	}

	root, err := Parse(toks, opts...)
	if err != nil {
		o.logger.Trace("parse failed",
			slog.String("source", source), slog.Any("error", err))

		return nil, err
	}

	o.logger.Trace("compiled",
		slog.String("source", source),
		slog.Int("tokens", len(toks)),
		slog.String("tree", root.String()))

	return &Program{source: source, root: root}, nil
}

// MustCompile is like [Compile] but panics on failure.
func MustCompile(source string, opts ...Option) *Program {
	p, err := Compile(source, opts...)
	if err != nil {
		panic(err)
	}

	return p
}

// Source returns the text p was compiled from.
func (p *Program) Source() string { return p.source }

// Root returns the expression tree of p.
func (p *Program) Root() Node { return p.root }

// String renders p fully parenthesized.
func (p *Program) String() string { return p.root.String() }

// Identifiers returns the sorted, unique names of the variables and
// functions referenced by p.
func (p *Program) Identifiers() []string {
	seen := map[string]struct{}{}

	Walk(p.root, func(n Node) bool {
		switch n := n.(type) {
		case *VariableRef:
			seen[n.Name] = struct{}{}
		case *Call:
			seen[n.Name] = struct{}{}
		}

		return true
	})

	return slices.Sorted(maps.Keys(seen))
}
