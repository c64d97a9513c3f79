package tracer

import "time"

// Option applies a configuration option to config.
type Option func(config) config

// config holds the construction-time parameters of a [Tracer].
type config struct {
	clock func() int64
	unit  float64
}

// apply applies multiple options to a config.
func apply(cfg config, opts ...Option) config {
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return cfg
}

// defaultConfig returns the default configuration: a monotonic nanosecond
// clock and a unit of one nanosecond per tick.
func defaultConfig() config {
	base := time.Now()

	return config{
		clock: func() int64 { return int64(time.Since(base)) },
		unit:  1e-9,
	}
}

// WithClock sets the tick source used to measure elapsed time between
// probes. The returned values must be monotonically non-decreasing.
//
// The default clock reads the monotonic system clock in nanoseconds.
// Tests substitute a deterministic counter.
func WithClock(clock func() int64) Option {
	return func(cfg config) config {
		if clock != nil {
			cfg.clock = clock
		}

		return cfg
	}
}

// WithUnit sets the duration of one tick in seconds.
// The unit is fixed for the lifetime of the session.
func WithUnit(unit float64) Option {
	return func(cfg config) config {
		if unit > 0 {
			cfg.unit = unit
		}

		return cfg
	}
}
