package report

// Option applies a configuration option to control.
type Option func(control) control

// control holds the rendering parameters of one report.
type control struct {
	outputUnit float64 // display unit in seconds, 0 selects the native unit
	filter     string
	match      string
	stripZeros bool
	color      bool
}

// apply applies multiple options to a control.
func apply(c control, opts ...Option) control {
	for _, opt := range opts {
		c = opt(c)
	}

	return c
}

// newControl creates a new control with the provided options.
func newControl(opts ...Option) control {
	var c control

	return apply(c, opts...)
}

// WithOutputUnit sets the display unit in seconds. Every rendered time
// is rescaled by native_unit/output_unit; hit counts and percentages are
// unaffected. Zero or negative keeps the native unit.
func WithOutputUnit(unit float64) Option {
	return func(c control) control {
		if unit > 0 {
			c.outputUnit = unit
		}

		return c
	}
}

// WithStripZeros omits every block whose target accumulated zero total
// elapsed time, and no others.
func WithStripZeros(strip bool) Option {
	return func(c control) control {
		c.stripZeros = strip

		return c
	}
}

// WithFilter sets a boolean expression evaluated per recorded line over
// the scope {line, hits, time, percent}, with time in display units.
// Lines failing the filter render with blank statistic columns, as if
// never recorded. An invalid expression fails [Write] before anything
// is rendered.
func WithFilter(src string) Option {
	return func(c control) control {
		c.filter = src

		return c
	}
}

// WithMatch restricts the report to targets whose qualified names
// fuzzy-match the given query. An empty query matches every target.
func WithMatch(query string) Option {
	return func(c control) control {
		c.match = query

		return c
	}
}

// WithColor styles block headers and diagnostics for terminal output.
// The default plain output is the deterministic text contract.
func WithColor(on bool) Option {
	return func(c control) control {
		c.color = on

		return c
	}
}
