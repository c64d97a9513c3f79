package cmd

import (
	"context"
	"iter"
	"maps"

	"github.com/zeebo/xxh3"

	"github.com/ardnew/lprof/tracer"
	"github.com/ardnew/lprof/wrap"
)

// workload executes one named demo under the given dispatcher.
type workload func(
	ctx context.Context,
	b *workbench,
	d *wrap.Dispatcher,
	iterations int,
) error

// workloads maps each demo name to its driver. Every callable shape the
// dispatcher recognizes is represented: collatz is a plain function, simmer
// is context-aware, primes returns an iterator, and digest dispatches
// through an interface parameter.
var workloads = map[string]workload{
	"collatz": runCollatz,
	"digest":  runDigest,
	"primes":  runPrimes,
	"simmer":  runSimmer,
}

func workloadNames() iter.Seq[string] { return maps.Keys(workloads) }

func workloadByName(name string) (workload, bool) {
	w, ok := workloads[name]

	return w, ok
}

// workbench carries the tracer whose probes the demo functions call.
//
// Each workload is built by a constructor returning a function literal
// instead of a method: a bound method value resolves to the compiler's
// adapter at <autogenerated>:1, a position the report cannot map back to
// source. Literals carry the position of this file.
type workbench struct {
	t *tracer.Tracer
}

func newWorkbench(t *tracer.Tracer) *workbench {
	return &workbench{t: t}
}

// collatz builds the step counter for the Collatz sequence.
func (b *workbench) collatz() func(int) int {
	return func(seed int) int {
		b.t.Mark()

		steps := 0

		for n := seed; n > 1; {
			b.t.Mark()

			if n%2 == 0 {
				n /= 2
			} else {
				n = 3*n + 1
			}

			steps++
		}

		b.t.Mark()

		return steps
	}
}

func runCollatz(
	_ context.Context,
	b *workbench,
	d *wrap.Dispatcher,
	iterations int,
) error {
	fn, err := wrap.Wrap(d, b.collatz())
	if err != nil {
		return err
	}

	for i := range iterations {
		fn(27 + i)
	}

	return nil
}

// simmer builds a function performing rounds of busy work, checking for
// cancellation between rounds.
func (b *workbench) simmer() func(context.Context, int) error {
	return func(ctx context.Context, steps int) error {
		b.t.Mark()

		acc := 0

		for i := range steps {
			b.t.Mark()

			if err := ctx.Err(); err != nil {
				return err
			}

			acc += i * i
		}

		if acc < 0 {
			panic("accumulator overflow")
		}

		b.t.Mark()

		return nil
	}
}

func runSimmer(
	ctx context.Context,
	b *workbench,
	d *wrap.Dispatcher,
	iterations int,
) error {
	fn, err := wrap.Wrap(d, b.simmer())
	if err != nil {
		return err
	}

	for range iterations {
		err = fn(ctx, 64)
		if err != nil {
			return err
		}
	}

	return nil
}

var errNoPrimes = NewError("iterator produced no primes")

// primes builds a function yielding the primes below its limit by trial
// division.
func (b *workbench) primes() func(int) iter.Seq[int] {
	return func(limit int) iter.Seq[int] {
		return func(yield func(int) bool) {
			b.t.Mark()

			for n := 2; n < limit; n++ {
				b.t.Mark()

				composite := false
				for p := 2; p*p <= n; p++ {
					if n%p == 0 {
						composite = true

						break
					}
				}

				if !composite && !yield(n) {
					return
				}
			}

			b.t.Mark()
		}
	}
}

func runPrimes(
	_ context.Context,
	b *workbench,
	d *wrap.Dispatcher,
	iterations int,
) error {
	fn, err := wrap.Wrap(d, b.primes())
	if err != nil {
		return err
	}

	total := 0

	for range iterations {
		for range fn(256) {
			total++
		}
	}

	if iterations > 0 && total == 0 {
		return errNoPrimes
	}

	return nil
}

// digester hashes byte slices.
type digester interface {
	sum(data []byte) uint64
}

// xxhDigester implements digester with xxh3.
type xxhDigester struct{}

func (xxhDigester) sum(data []byte) uint64 { return xxh3.Hash(data) }

// digest builds the instrumented hasher. Its first parameter is the
// digester interface, so dispatch through dg is part of what gets timed.
func (b *workbench) digest() func(digester, []byte) uint64 {
	return func(dg digester, data []byte) uint64 {
		b.t.Mark()

		h := dg.sum(data)

		b.t.Mark()

		return h
	}
}

func runDigest(
	_ context.Context,
	b *workbench,
	d *wrap.Dispatcher,
	iterations int,
) error {
	fn, err := wrap.Wrap(d, b.digest())
	if err != nil {
		return err
	}

	data := make([]byte, 4096)

	for i := range data {
		data[i] = byte(i)
	}

	for range iterations {
		fn(xxhDigester{}, data)
	}

	return nil
}
