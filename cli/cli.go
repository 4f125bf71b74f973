package cli

import (
	"context"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/xform/cli/cmd"
	"github.com/ardnew/xform/pkg"
)

const (
	// baseConfig is the base name of the configuration files.
	baseConfig = "config"

	yamlExt = ".yaml"
	jsonExt = ".json"
)

// CLI is the top-level command-line interface for xform.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version kong.VersionFlag `help:"Print version and exit." short:"V"`

	Check   cmd.Check   `cmd:"" help:"Validate axis expressions"`
	Preview cmd.Preview `cmd:"" help:"Evaluate axis expressions once as a dry run"`
	Apply   cmd.Apply   `cmd:"" help:"Transform the objects of a scene"`
	Eval    cmd.Eval    `cmd:"" help:"Evaluate one expression"`
	Repl    cmd.Repl    `cmd:"" help:"Start an interactive expression shell"`
	Init    cmd.Init    `cmd:"" help:"Initialize configuration file"`
}

func (c *CLI) groups() []kong.Group {
	return []kong.Group{
		c.Log.group(),
		c.Pprof.group(),
		{Key: cmd.ExprGroup, Title: "Axis expressions"},
	}
}

// paths locates the configuration file and cache directory.
type paths struct {
	config string // YAML configuration file; a JSON sibling is also read
	cache  string
}

// Run executes the xform CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	err := pkg.MkdirAll()
	if err != nil {
		return err
	}

	return run(ctx, exit, paths{
		config: pkg.ConfigPath(baseConfig + yamlExt),
		cache:  pkg.CacheDir(),
	}, args...)
}

func run(
	ctx context.Context,
	exit func(code int),
	p paths,
	args ...string,
) error {
	var cli CLI

	vars := kong.Vars{
		cmd.ConfigIdentifier: p.config,
		cmd.CacheIdentifier:  p.cache,
		"version":            pkg.Name + " " + pkg.Version,
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags to ensure early configuration regardless of
	// flag position.
	cli.Log.scan(args)

	// Parse command line
	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(cli.groups()),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				FlagsLast:           false,
				NoAppSummary:        false,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, strings.TrimSuffix(p.config, yamlExt)+jsonExt),
		kong.Configuration(resolve(ctx), p.config),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Stuff additional context values for use by commands
	ctx = cmd.WithContext(ctx, ktx)

	// Finalize logger configuration with all parsed values including
	// TimeLayout and Caller which don't use TextUnmarshaler.
	cli.Log.start(ctx)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	// Execute the selected command
	return ktx.Run(ctx)
}
