//go:build !pprof

package profile

// Available reports whether profiling support was compiled in.
const Available = false

// Modes returns nil when built without the pprof tag.
func Modes() []string { return nil }

func supported(string) bool { return false }

func start(Profiler) Stopper { return ignore{} }
