// Package wrap produces profiled replacements for callables of every
// supported shape.
//
// A [Dispatcher] classifies a function value into exactly one [Shape],
// registers its identity with the session's shared [tracer.Tracer], and
// returns a wrapper of the identical concrete function type. The wrapper
// preserves the original call contract — arguments, results, and panics
// pass through unchanged — and differs only in its timing side effects.
//
// Classification happens once at wrap time, never per call:
//
//   - [ShapeContext]: the first parameter is a [context.Context]. One
//     activation window spans the entire call, including any time the
//     call spends blocked. Idle time inside the window is therefore
//     attributed to the pending line; this is a deliberate property of
//     the shape, not an accident of implementation.
//   - [ShapeSeq]: the single result is an iterator function in the
//     [iter.Seq] or [iter.Seq2] form. The wrapper brackets each discrete
//     resumption of the inner iterator, not its whole lifetime, so time
//     the consumer spends between values is attributed to no line.
//   - [ShapeMethod]: the first parameter is a non-context interface, the
//     form of a method expression on an interface type. Dynamic dispatch
//     selects the implementation of the value supplied at call time, so
//     wrapping an interface method profiles whichever concrete type the
//     caller passes.
//   - [ShapePlain]: any other function. One activation window spans the
//     single invocation.
//
// Wrapping a value that is not a function fails with
// [tracer.ErrNotCallable] at wrap time.
package wrap
