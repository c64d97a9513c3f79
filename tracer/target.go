package tracer

import (
	"cmp"
	"fmt"
	"log/slog"
	"reflect"
	"runtime"
)

// Target identifies one profiled function by its source file, the line of
// its declaration, and its fully-qualified name.
//
// A Target is immutable once created and unique within one [Tracer]
// session.
type Target struct {
	File string
	Name string
	Line int
}

// TargetOf derives the [Target] identity of the given function value using
// the runtime symbol table.
//
// It returns [ErrNotCallable] if fn is not a non-nil function, and
// [ErrNoSymbol] if the runtime has no symbol information for it.
func TargetOf(fn any) (Target, error) {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return Target{}, ErrNotCallable.With(
			slog.String("type", fmt.Sprintf("%T", fn)),
		)
	}

	rf := runtime.FuncForPC(v.Pointer())
	if rf == nil {
		return Target{}, ErrNoSymbol
	}

	file, line := rf.FileLine(rf.Entry())

	return Target{File: file, Line: line, Name: rf.Name()}, nil
}

// Compare orders targets by (File, Line, Name) ascending.
// The ordering is stable and total.
func (t Target) Compare(o Target) int {
	if c := cmp.Compare(t.File, o.File); c != 0 {
		return c
	}

	if c := cmp.Compare(t.Line, o.Line); c != 0 {
		return c
	}

	return cmp.Compare(t.Name, o.Name)
}

// String returns the target identity in "name (file:line)" form.
func (t Target) String() string {
	return fmt.Sprintf("%s (%s:%d)", t.Name, t.File, t.Line)
}

// LogValue implements slog.LogValuer.
func (t Target) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", t.Name),
		slog.String("file", t.File),
		slog.Int("line", t.Line),
	)
}

// LineStat is the accumulated statistic of one source line of one target:
// the number of times the line was hit and the elapsed ticks attributed
// to it.
type LineStat struct {
	Line  int
	Hits  int64
	Ticks int64
}
