// Package tracer records per-line hit counts and elapsed time for
// instrumented functions.
//
// A [Tracer] owns the accumulated statistics of one profiling session.
// Functions are armed with [Tracer.Register], which is idempotent, and
// execution windows are delimited with the scoped [Tracer.Activate] and
// [Tracer.Deactivate] pair. While a window is open, the [Tracer.Line] and
// [Tracer.Mark] probes attribute elapsed ticks to the previously probed
// line and count one hit on the probed line.
//
// Activation windows nest: a probed call into another armed function opens
// an inner window, and probes are attributed to the innermost target. The
// window is always closed on every exit path, including panics, when the
// caller pairs Activate with a deferred Deactivate.
//
// A Tracer targets single-threaded profiling sessions. Concurrent
// activation windows from multiple goroutines are unsupported: the
// internal lock only makes snapshots taken with [Tracer.Stats] safe to
// read while probes fire.
package tracer
