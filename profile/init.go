package profile

// Config functions return all supported pprof configuration parameters.
type Config func() (mode, path string, quiet bool)

// Start initializes the runtime profiler and returns an interface for
// stopping it. These whole-program profiles complement the line-level
// report and are independent of it.
//
// Mode selects the profile to collect, and path selects the directory
// where its data is written.
//
// If build tag pprof or the mode are unset, Start returns a no-op
// implementation. Both Start and Stop are always safely callable.
func (c Config) Start() interface{ Stop() } {
	mode, path, quiet := c()

	if mode == "" {
		return ignore{}
	}

	return start(mode, path, quiet)
}

// amend builds a Config option that re-closes over the current parameter
// triple after fn rewrites it.
func amend(
	fn func(mode, path string, quiet bool) (string, string, bool),
) func(Config) Config {
	return func(c Config) Config {
		mode, path, quiet := fn(c())

		return func() (string, string, bool) {
			return mode, path, quiet
		}
	}
}

// WithMode returns a functional option for setting a profiler's mode.
func WithMode(mode string) func(Config) Config {
	return amend(func(_, path string, quiet bool) (string, string, bool) {
		return mode, path, quiet
	})
}

// WithPath returns a functional option for setting a profiler's output path.
func WithPath(path string) func(Config) Config {
	return amend(func(mode, _ string, quiet bool) (string, string, bool) {
		return mode, path, quiet
	})
}

// WithQuiet returns a functional option for setting a profiler's quiet flag.
func WithQuiet(quiet bool) func(Config) Config {
	return amend(func(mode, path string, _ bool) (string, string, bool) {
		return mode, path, quiet
	})
}

type ignore struct{}

func (ignore) Stop() {}
