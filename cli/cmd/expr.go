package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/xform/lang"
	"github.com/ardnew/xform/log"
	"github.com/ardnew/xform/scene"
	"github.com/ardnew/xform/transform"
)

// ExprGroup is the kong group key holding the axis expression flags.
const ExprGroup = "expr"

// Expressions are the nine axis expression flags shared by the commands that
// validate or apply a transform.
type Expressions struct {
	PositionX string `default:"this" group:"expr" help:"Position X expression." name:"position-x"`
	PositionY string `default:"this" group:"expr" help:"Position Y expression." name:"position-y"`
	PositionZ string `default:"this" group:"expr" help:"Position Z expression." name:"position-z"`
	ScaleX    string `default:"this" group:"expr" help:"Scale X expression."    name:"scale-x"`
	ScaleY    string `default:"this" group:"expr" help:"Scale Y expression."    name:"scale-y"`
	ScaleZ    string `default:"this" group:"expr" help:"Scale Z expression."    name:"scale-z"`
	RotationX string `default:"this" group:"expr" help:"Rotation X expression (degrees)." name:"rotation-x"`
	RotationY string `default:"this" group:"expr" help:"Rotation Y expression (degrees)." name:"rotation-y"`
	RotationZ string `default:"this" group:"expr" help:"Rotation Z expression (degrees)." name:"rotation-z"`

	Math bool `default:"true" group:"expr" help:"Enable the standard math functions." negatable:""`
}

// Get returns the flag values as transform expressions.
func (e Expressions) Get() transform.Expressions {
	return transform.Expressions{
		Position: [3]string{e.PositionX, e.PositionY, e.PositionZ},
		Rotation: [3]string{e.RotationX, e.RotationY, e.RotationZ},
		Scale:    [3]string{e.ScaleX, e.ScaleY, e.ScaleZ},
	}
}

func (e Expressions) options() []transform.Option {
	return transformOptions(e.Math)
}

func transformOptions(math bool) []transform.Option {
	opts := []transform.Option{transform.WithLogger(log.Default())}

	if math {
		opts = append(opts,
			transform.WithFunctions(lang.StandardFunctions[transform.Context]()))
	}

	return opts
}

// Binding selects the object, field and variables an interactive
// expression is evaluated against.
type Binding struct {
	Scene string             `help:"Bind the objects of a scene file ('-' for stdin)." short:"s" type:"path"`
	Where string             `help:"Bind only the objects matching an expr-lang predicate."`
	Field string             `default:"Position.X" help:"Field whose value binds this."`
	Index int                `default:"0"          help:"Batch index bound to index."  short:"i"`
	Vars  map[string]float64 `help:"Bind variable NAME to VALUE." name:"var" placeholder:"NAME=VALUE" short:"v"`
	Math  bool               `default:"true" help:"Enable the standard math functions." negatable:""`
}

// env builds the evaluation environment described by b.
func (b Binding) env(ctx context.Context) (transform.Env, error) {
	field, err := transform.ParseField(b.Field)
	if err != nil {
		return transform.Env{}, err
	}

	var batch []scene.Object

	if b.Scene != "" {
		s, err := loadScene(b.Scene)
		if err != nil {
			return transform.Env{}, err
		}

		batch, err = selectBatch(s, b.Where)
		if err != nil {
			return transform.Env{}, err
		}
	}

	env := transform.NewEnv(batch, field, b.Index, transformOptions(b.Math)...)

	if len(b.Vars) > 0 {
		env.Vars = env.Vars.Clone()
		for name, v := range b.Vars {
			env.Vars[name] = lang.Scalar(v)
		}
	}

	log.DebugContext(ctx, "environment bound",
		slog.String("field", field.String()),
		slog.Int("index", b.Index),
		slog.Int("objects", len(batch)),
		slog.Int("vars", len(b.Vars)),
	)

	return env, nil
}

// loadScene reads the scene at path, or standard input for "-".
func loadScene(path string) (*scene.Scene, error) {
	if path == stdioPath {
		return scene.Load(os.Stdin)
	}

	return scene.Open(path)
}

// selectBatch returns copies of the objects matching predicate, in scene
// order.
func selectBatch(s *scene.Scene, predicate string) ([]scene.Object, error) {
	indices, err := s.Select(predicate)
	if err != nil {
		return nil, ErrSelect.Wrap(err).With(slog.String("where", predicate))
	}

	batch := make([]scene.Object, len(indices))
	for i, idx := range indices {
		batch[i] = s.Objects[idx].Clone()
	}

	return batch, nil
}
