// Package report renders accumulated line statistics as deterministic
// text.
//
// [Write] produces one report: a header naming the effective display
// unit, then one block per profiled target in ascending identity order.
// Each block states the target's total time and location, followed by a
// fixed-width table of per-line hits, elapsed time, per-hit time, and
// percentage of the target's own total, alongside the literal source
// text. Lines never reached render with blank statistic columns, which
// keeps them visually distinct from lines that executed instantaneously.
//
// Rendering reads a snapshot and never mutates it; repeated renders of
// the same snapshot are identical. Conditions like a missing source file
// or a zero divisor degrade to an in-report diagnostic or a blank cell,
// never an error. The only error [Write] returns is a sink write
// failure.
package report
