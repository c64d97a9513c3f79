//go:build pprof

package profile

// Option accumulates pkg/profile settings onto a control.
type Option func(control) control

func apply(c control, opts ...Option) control {
	for _, opt := range opts {
		c = opt(c)
	}

	return c
}

func newControl(opts ...Option) control {
	return apply(control{}, opts...)
}
