package wrap

import (
	"errors"
	"iter"
	"slices"
	"testing"

	"github.com/ardnew/lprof/tracer"
)

const (
	produceLine = 100
	finishLine  = 101
)

// counter returns an instrumented generator over [0, n): one probe per
// produced value and one on the way out, with 3 ticks of generator work
// per resumption.
func counter(clk *tickClock, tr *tracer.Tracer) func(int) iter.Seq[int] {
	return func(n int) iter.Seq[int] {
		return func(yield func(int) bool) {
			for i := range n {
				tr.Line(produceLine)
				clk.advance(3)

				if !yield(i) {
					return
				}
			}

			tr.Line(finishLine)
		}
	}
}

func TestWrapSeqValues(t *testing.T) {
	for _, n := range []int{0, 1, 5} {
		clk, tr, d := session(t)
		gen := counter(clk, tr)

		wrapped, err := Wrap(d, gen)
		if err != nil {
			t.Fatalf("Wrap() error = %v", err)
		}

		want := slices.Collect(gen(n))
		got := slices.Collect(wrapped(n))

		if !slices.Equal(got, want) {
			t.Errorf("n=%d: wrapped yielded %v, want %v", n, got, want)
		}
	}
}

func TestWrapSeqBracketPerResumption(t *testing.T) {
	clk, tr, d := session(t)

	wrapped, err := Wrap(d, counter(clk, tr))
	if err != nil {
		t.Fatal(err)
	}

	const n = 4

	for range wrapped(n) {
		// Consumer work must not be attributed to any generator line.
		clk.advance(10)
	}

	var produce, finish tracer.LineStat

	for _, stats := range tr.Stats() {
		for _, ls := range stats {
			switch ls.Line {
			case produceLine:
				produce = ls
			case finishLine:
				finish = ls
			}
		}
	}

	// One probe per resumption: a closed-then-reopened window per value
	// means every probe after the first still lands inside a window.
	if produce.Hits != n {
		t.Errorf("produce hits = %d, want %d (one bracket per resumption)", produce.Hits, n)
	}

	// Only generator work accrues: 3 ticks per value, none of the
	// consumer's 10-tick processing.
	if produce.Ticks != 3*n {
		t.Errorf("produce ticks = %d, want %d", produce.Ticks, 3*n)
	}

	if finish.Hits != 1 {
		t.Errorf("finish hits = %d, want 1 (exhaustion bracketed)", finish.Hits)
	}
}

func TestWrapSeqEarlyBreak(t *testing.T) {
	clk, tr, d := session(t)

	wrapped, err := Wrap(d, counter(clk, tr))
	if err != nil {
		t.Fatal(err)
	}

	got := []int{}

	for v := range wrapped(10) {
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}

	if !slices.Equal(got, []int{0, 1}) {
		t.Errorf("early break collected %v, want [0 1]", got)
	}

	// Windows balanced after the break: a stray probe records nothing.
	tr.Line(999)

	for _, stats := range tr.Stats() {
		for _, ls := range stats {
			if ls.Line == 999 {
				t.Error("activation window leaked after early break")
			}
		}
	}
}

func TestWrapSeqPanicInGenerator(t *testing.T) {
	_, _, d := session(t)

	sentinel := errors.New("boom")

	gen := func() iter.Seq[int] {
		return func(yield func(int) bool) {
			yield(1)
			panic(sentinel)
		}
	}

	wrapped, err := Wrap(d, gen)
	if err != nil {
		t.Fatal(err)
	}

	defer func() {
		if r := recover(); r != sentinel { //nolint:errorlint
			t.Errorf("recovered %v, want the original panic value", r)
		}
	}()

	for range wrapped() {
	}
}

func TestWrapSeqPanicInConsumer(t *testing.T) {
	clk, tr, d := session(t)

	wrapped, err := Wrap(d, counter(clk, tr))
	if err != nil {
		t.Fatal(err)
	}

	sentinel := errors.New("consumer boom")

	func() {
		defer func() {
			if r := recover(); r != sentinel { //nolint:errorlint
				t.Errorf("recovered %v, want the consumer's panic value", r)
			}
		}()

		for range wrapped(5) {
			panic(sentinel)
		}
	}()

	// Windows balanced after the unwind.
	tr.Line(999)

	for _, stats := range tr.Stats() {
		for _, ls := range stats {
			if ls.Line == 999 {
				t.Error("activation window leaked across consumer panic")
			}
		}
	}
}

func TestWrapSeq2(t *testing.T) {
	_, _, d := session(t)

	gen := func(words ...string) iter.Seq2[int, string] {
		return func(yield func(int, string) bool) {
			for i, w := range words {
				if !yield(i, w) {
					return
				}
			}
		}
	}

	wrapped, err := Wrap(d, gen)
	if err != nil {
		t.Fatal(err)
	}

	got := map[int]string{}
	for i, w := range wrapped("a", "b") {
		got[i] = w
	}

	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("wrapped seq2 yielded %v", got)
	}
}
