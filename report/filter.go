package report

import (
	"log/slog"

	"github.com/expr-lang/expr"

	"github.com/ardnew/lprof/tracer"
)

// ErrFilter is returned when a line filter expression does not compile
// to a boolean predicate.
var ErrFilter = tracer.NewError("invalid filter expression")

// filterScope is the evaluation environment of one recorded line.
type filterScope struct {
	Line    int     `expr:"line"`
	Hits    int64   `expr:"hits"`
	Time    float64 `expr:"time"`
	Percent float64 `expr:"percent"`
}

// filterFunc reports whether one recorded line passes the filter.
type filterFunc func(line int, hits int64, time, percent float64) bool

// compileFilter compiles the filter source once per report. An empty
// source compiles to no filter. Evaluation faults on individual lines
// degrade to excluding the line, never to a rendering error.
func compileFilter(src string) (filterFunc, error) {
	if src == "" {
		return nil, nil
	}

	prog, err := expr.Compile(src, expr.Env(filterScope{}), expr.AsBool())
	if err != nil {
		return nil, ErrFilter.Wrap(err).
			With(slog.String("filter", src))
	}

	return func(line int, hits int64, time, percent float64) bool {
		out, err := expr.Run(prog, filterScope{
			Line:    line,
			Hits:    hits,
			Time:    time,
			Percent: percent,
		})
		if err != nil {
			return false
		}

		pass, ok := out.(bool)

		return ok && pass
	}, nil
}
