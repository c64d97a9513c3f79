package wrap

import (
	"io"
	"reflect"

	"github.com/ardnew/lprof/report"
	"github.com/ardnew/lprof/tracer"
)

// Dispatcher wraps callables for one profiling session.
//
// All wrappers produced by the same Dispatcher hold the same shared
// [tracer.Tracer] reference, never a copy, so every invocation
// accumulates into one statistics table.
type Dispatcher struct {
	tracer *tracer.Tracer
}

// New creates a Dispatcher accumulating into the given tracer.
func New(t *tracer.Tracer) *Dispatcher {
	return &Dispatcher{tracer: t}
}

// Tracer returns the session tracer shared by all wrappers.
func (d *Dispatcher) Tracer() *tracer.Tracer { return d.tracer }

// Wrap registers the given function with the session tracer and returns
// a replacement of the identical concrete type whose invocations are
// bracketed by tracer activation according to the function's [Shape].
//
// Registration is idempotent: wrapping the same function twice arms it
// once. A non-function argument fails with [tracer.ErrNotCallable].
func (d *Dispatcher) Wrap(fn any) (any, error) {
	target, err := tracer.TargetOf(fn)
	if err != nil {
		return nil, err
	}

	d.tracer.Register(target)

	v := reflect.ValueOf(fn)

	switch ShapeOf(fn) {
	case ShapeSeq:
		return d.wrapSeq(v, target).Interface(), nil
	case ShapeContext:
		return d.wrapContext(v, target).Interface(), nil
	case ShapeMethod:
		return d.wrapMethod(v, target).Interface(), nil
	default:
		return d.wrapFunc(v, target).Interface(), nil
	}
}

// Wrap is the typed convenience over [Dispatcher.Wrap]: the returned
// wrapper has the same static type as fn.
func Wrap[F any](d *Dispatcher, fn F) (F, error) {
	w, err := d.Wrap(fn)
	if err != nil {
		var zero F

		return zero, err
	}

	return w.(F), nil
}

// WriteStats renders the accumulated statistics of the session to w.
// It is shorthand for [report.Write] over the tracer's current snapshot.
func (d *Dispatcher) WriteStats(w io.Writer, opts ...report.Option) error {
	return report.Write(w, d.tracer.Stats(), d.tracer.Unit(), opts...)
}

// wrapFunc brackets a single plain invocation with tracer activation.
func (d *Dispatcher) wrapFunc(
	fn reflect.Value,
	target tracer.Target,
) reflect.Value {
	return d.bracketed(fn, target)
}

// wrapMethod brackets a single invocation of an interface method
// expression. The interface argument carries the receiver, so dynamic
// dispatch selects the implementation of the concrete type supplied at
// call time rather than any type fixed at wrap time.
func (d *Dispatcher) wrapMethod(
	fn reflect.Value,
	target tracer.Target,
) reflect.Value {
	return d.bracketed(fn, target)
}

// wrapContext brackets the entire context-accepting call, including any
// time it spends blocked. Unlike the seq strategy there is no externally
// visible resumption granularity to bracket, so idle time inside the
// call is attributed to the pending line.
func (d *Dispatcher) wrapContext(
	fn reflect.Value,
	target tracer.Target,
) reflect.Value {
	return d.bracketed(fn, target)
}

// bracketed returns a wrapper of fn's exact type whose invocation is
// surrounded by one activation window. The deferred release guarantees
// deactivation on every exit path, including panics, before they
// propagate to the caller.
func (d *Dispatcher) bracketed(
	fn reflect.Value,
	target tracer.Target,
) reflect.Value {
	return reflect.MakeFunc(
		fn.Type(),
		func(args []reflect.Value) []reflect.Value {
			d.tracer.Activate(target)
			defer d.tracer.Deactivate()

			return call(fn, args)
		},
	)
}

// call invokes fn with the argument list as received from
// [reflect.MakeFunc], spreading the trailing slice of variadic types.
func call(fn reflect.Value, args []reflect.Value) []reflect.Value {
	if fn.Type().IsVariadic() {
		return fn.CallSlice(args)
	}

	return fn.Call(args)
}
