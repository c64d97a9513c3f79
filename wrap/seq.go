package wrap

import (
	"reflect"

	"github.com/ardnew/lprof/tracer"
)

// wrapSeq wraps a function returning an iterator so that each discrete
// resumption of the inner iterator runs inside its own activation window.
//
// The window opens before the inner iterator resumes and closes the
// moment it yields a value, so the consumer's processing between values
// is attributed to no line. The bridged yield reopens the window when the
// consumer requests the next value, and the deferred release closes the
// final window on exhaustion, early termination, or panic. The number of
// windows therefore equals the number of resumptions, not one.
//
// Values, exhaustion, and panics of the inner iterator reach the
// consumer unchanged.
func (d *Dispatcher) wrapSeq(
	fn reflect.Value,
	target tracer.Target,
) reflect.Value {
	seqType := fn.Type().Out(0)
	yieldType := seqType.In(0)

	return reflect.MakeFunc(
		fn.Type(),
		func(args []reflect.Value) []reflect.Value {
			inner := call(fn, args)[0]

			outer := reflect.MakeFunc(
				seqType,
				func(seqArgs []reflect.Value) []reflect.Value {
					d.resume(inner, seqArgs[0], yieldType, target)

					return nil
				},
			)

			return []reflect.Value{outer}
		},
	)
}

// resume drives one full consumption of the inner iterator, bracketing
// each resumption. The open flag keeps the deferred release balanced
// when the consumer panics inside its loop body, which unwinds through
// the bridged yield while no window is held.
func (d *Dispatcher) resume(
	inner, yield reflect.Value,
	yieldType reflect.Type,
	target tracer.Target,
) {
	open := false

	bridge := reflect.MakeFunc(
		yieldType,
		func(vals []reflect.Value) []reflect.Value {
			d.tracer.Deactivate()

			open = false

			out := yield.Call(vals)

			d.tracer.Activate(target)

			open = true

			return out
		},
	)

	d.tracer.Activate(target)

	open = true

	defer func() {
		if open {
			d.tracer.Deactivate()
		}
	}()

	inner.Call([]reflect.Value{bridge})
}
