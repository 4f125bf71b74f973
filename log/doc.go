// Package log wraps [log/slog] with a small, value-typed configuration
// layer and an optional colorized handler for terminals.
//
// A [Logger] is built once from functional options and never changes
// afterward; [Logger.Wrap] and [Logger.With] derive new loggers.
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText),
//		log.WithTimeLayout("kitchen"))
//	logger.Info("scene loaded", slog.Int("objects", 12))
//
// Attributes are always typed [slog.Attr] values, never alternating
// key/value arguments.
//
// # Package-level logger
//
// The functions [Trace], [Debug], [Info], [Warn], and [Error] write to a
// process-wide logger. Command-line flags reconfigure it with [Config]:
//
//	log.Config(log.WithLevel(log.ParseLevel("trace")))
//
// # Levels
//
// In addition to the four [log/slog] levels the package defines
// [LevelTrace], used for per-expression evaluation detail.
//
// # Time
//
// [WithTimeLayout] accepts the name of any layout in the [time] package
// (case and punctuation are ignored, so "RFC3339Nano" and "rfc-3339-nano"
// are the same) or a literal layout string. "none" omits timestamps.
package log
