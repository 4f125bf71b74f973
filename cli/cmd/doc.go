// Package cmd implements the xform subcommands.
//
// Commands receive a [context.Context] carrying the parsed [kong.Context]
// (see [WithContext]) and write their results to the writer installed with
// [WithOutput], or standard output.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the YAML configuration file.
	ConfigIdentifier = "config"
)
