package tracer

import (
	"maps"
	"runtime"
	"slices"
	"sync"
)

// Tracer accumulates per-line statistics for registered targets.
//
// The zero value is not usable; construct with [New].
type Tracer struct {
	mu    sync.Mutex
	clock func() int64
	recs  map[Target]map[int]*LineStat
	stack []frame
	unit  float64
}

// frame is one open activation window.
type frame struct {
	rec   map[int]*LineStat // nil for unregistered targets
	line  int               // last probed line, 0 if none yet
	since int64             // tick of the last probe
}

// New creates a Tracer with the given options applied over the defaults.
func New(opts ...Option) *Tracer {
	cfg := apply(defaultConfig(), opts...)

	return &Tracer{
		clock: cfg.clock,
		unit:  cfg.unit,
		recs:  map[Target]map[int]*LineStat{},
	}
}

// Unit returns the duration of one tick in seconds.
func (t *Tracer) Unit() float64 { return t.unit }

// Register arms line-hit tracking for the given target.
//
// Registering the same identity twice is idempotent: accumulated
// statistics are never duplicated and subsequent invocations are not
// double-counted.
//
// Optional lines pre-seed zero-valued statistics, so a line that is armed
// but never executed reports zero hits instead of no entry at all.
func (t *Tracer) Register(target Target, lines ...int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	rec, ok := t.recs[target]
	if !ok {
		rec = map[int]*LineStat{}
		t.recs[target] = rec
	}

	for _, n := range lines {
		if _, ok := rec[n]; !ok {
			rec[n] = &LineStat{Line: n}
		}
	}
}

// Registered reports whether the given target has been registered.
func (t *Tracer) Registered(target Target) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, ok := t.recs[target]

	return ok
}

// Activate opens an activation window for the given target. Probes fired
// until the matching [Tracer.Deactivate] are attributed to it.
//
// Activating an unregistered target opens an inert window: the bracket
// nests and releases normally, but no statistics accumulate, so orphan
// statistics never exist.
func (t *Tracer) Activate(target Target) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stack = append(t.stack, frame{rec: t.recs[target]})
}

// Deactivate closes the innermost activation window, attributing any
// pending elapsed ticks to the last probed line.
//
// Deactivating with no open window is a no-op, so a scoped deferred
// release is always safe.
func (t *Tracer) Deactivate() {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := len(t.stack)
	if n == 0 {
		return
	}

	f := t.stack[n-1]
	t.stack = t.stack[:n-1]

	if f.rec != nil && f.line != 0 {
		t.stat(f.rec, f.line).Ticks += t.clock() - f.since
	}
}

// Line records a probe of the given source line within the innermost open
// activation window.
//
// The probed line is counted as one hit. Elapsed ticks since the previous
// probe in the same window are attributed to the previously probed line,
// so a line's time covers everything executed until the next probe fires,
// including nested calls.
func (t *Tracer) Line(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	last := len(t.stack) - 1
	if last < 0 {
		return
	}

	f := &t.stack[last]
	if f.rec == nil {
		return
	}

	now := t.clock()

	if f.line != 0 {
		t.stat(f.rec, f.line).Ticks += now - f.since
	}

	t.stat(f.rec, n).Hits++
	f.line = n
	f.since = now
}

// Mark records a probe of the caller's own source line.
// It is the instrumentation sugar over [Tracer.Line].
func (t *Tracer) Mark() {
	_, _, line, ok := runtime.Caller(1)
	if !ok {
		return
	}

	t.Line(line)
}

// Targets returns all registered targets sorted by identity.
func (t *Tracer) Targets() []Target {
	t.mu.Lock()
	defer t.mu.Unlock()

	return slices.SortedFunc(maps.Keys(t.recs), Target.Compare)
}

// Stats returns a snapshot of the accumulated statistics for every
// registered target, each target's stats sorted by line number.
//
// The snapshot is a deep copy: reading or rendering it never mutates the
// accumulation, so repeated snapshots of an idle session are identical.
func (t *Tracer) Stats() map[Target][]LineStat {
	t.mu.Lock()
	defer t.mu.Unlock()

	stats := make(map[Target][]LineStat, len(t.recs))

	for target, rec := range t.recs {
		lines := make([]LineStat, 0, len(rec))
		for _, ls := range rec {
			lines = append(lines, *ls)
		}

		slices.SortFunc(lines, func(a, b LineStat) int {
			return a.Line - b.Line
		})

		stats[target] = lines
	}

	return stats
}

// stat returns the accumulation record of one line, creating it on first
// reference. Callers must hold t.mu.
func (t *Tracer) stat(rec map[int]*LineStat, n int) *LineStat {
	ls, ok := rec[n]
	if !ok {
		ls = &LineStat{Line: n}
		rec[n] = ls
	}

	return ls
}
