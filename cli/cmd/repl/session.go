package repl

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/ardnew/xform/lang"
	"github.com/ardnew/xform/log"
	"github.com/ardnew/xform/transform"
)

// session evaluates input lines against an environment that grows with
// each assignment.
type session struct {
	env    transform.Env
	logger log.Logger
}

func newSession(env transform.Env, logger log.Logger) *session {
	env.Vars = env.Vars.Clone()

	return &session{env: env, logger: logger}
}

// exec evaluates line. A line of the form "name = expr" binds the value of
// expr to name.
func (s *session) exec(line string) (string, error) {
	name, source, assign, err := splitAssignment(line)
	if err != nil {
		return "", err
	}

	v, err := s.env.Evaluate(source)
	if err != nil {
		return "", err
	}

	if !assign {
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	}

	s.env.Vars[name] = lang.Scalar(v)

	s.logger.Trace("repl bind",
		slog.String("name", name),
		slog.Float64("value", v),
	)

	return name + " = " + strconv.FormatFloat(v, 'g', -1, 64), nil
}

// splitAssignment separates "name = expr" into its parts. The expression
// grammar has no '=' operator, so any '=' marks an assignment.
func splitAssignment(line string) (name, source string, assign bool, err error) {
	lhs, rhs, ok := strings.Cut(line, "=")
	if !ok {
		return "", line, false, nil
	}

	toks, err := lang.Tokenize(lhs)
	if err != nil || len(toks) != 2 || toks[0].Kind != lang.TokenIdentifier {
		return "", "", false, fmt.Errorf("%w: %q", ErrAssignment, strings.TrimSpace(lhs))
	}

	return toks[0].Name, rhs, true, nil
}

// variables returns the bound names in sorted order.
func (s *session) variables() []string {
	names := make([]string, 0, len(s.env.Vars))
	for name := range s.env.Vars {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// candidates returns every name completion may offer.
func (s *session) candidates() []string {
	return append(s.variables(), s.env.Funcs.Names()...)
}

func (s *session) function(name string) (transform.Function, bool) {
	fn, ok := s.env.Funcs[name]

	return fn, ok
}

func (s *session) listVariables() string {
	var b strings.Builder

	for _, name := range s.variables() {
		fmt.Fprintf(&b, "  %s %s\n", name, hintStyle.Render(describe(s.env.Vars[name])))
	}

	return b.String()
}

// describe renders a binding for the variable listing.
func describe(v lang.Value) string {
	switch v.Kind() {
	case lang.ValueSequence:
		return "sequence of " + strconv.Itoa(len(v.Items()))
	case lang.ValueAttribute:
		return strconv.Quote(v.Label())
	default:
		f, _ := v.Float()

		return strconv.FormatFloat(f, 'g', -1, 64)
	}
}

func (s *session) listFunctions() string {
	var b strings.Builder

	for _, name := range s.env.Funcs.Names() {
		fmt.Fprintf(&b, "  %s\n", s.env.Funcs[name].Signature())
	}

	return b.String()
}
