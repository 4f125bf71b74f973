// Package cli contains the command line interface for xform.
//
// # Usage
//
//	xform check   --position-x 'space_between(0.5, index)'
//	xform preview --rotation-y 'this + 90' --format yaml
//	xform apply   -s scene.yaml --where 'bounded' --position-x 'center(0, index)' -o out.yaml
//	xform eval    'clamp(w * 2, 0, 1)' -v w=0.3
//	xform repl    -s scene.yaml --field Scale.Y
//	xform init
//
// # Configuration
//
// Flags may be set in $XDG_CONFIG_HOME/xform/config.yaml (see [resolve] for
// the layout) or in config.json beside it. Command-line flags take
// precedence. "xform init" writes the current global flags to the file.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, ms, none, ...)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize log output
//
// Logging flags take effect as soon as they are parsed, wherever they
// appear on the command line.
//
// # Profiling Options
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     $XDG_CACHE_HOME/xform/pprof)
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
package cli
