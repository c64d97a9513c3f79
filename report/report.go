package report

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/ardnew/lprof/source"
	"github.com/ardnew/lprof/tracer"
)

// Write renders one report of the given statistics snapshot to w.
//
// unit is the tracer's native seconds-per-tick scale. Targets render in
// ascending (file, start line, name) order. See the package
// documentation for the block layout.
func Write(
	w io.Writer,
	stats map[tracer.Target][]tracer.LineStat,
	unit float64,
	opts ...Option,
) error {
	c := newControl(opts...)

	pred, err := compileFilter(c.filter)
	if err != nil {
		return err
	}

	outputUnit := c.outputUnit
	if outputUnit == 0 {
		outputUnit = unit
	}

	targets := slices.SortedFunc(maps.Keys(stats), tracer.Target.Compare)
	targets = matchTargets(targets, c.match)

	// Re-read source files so the report reflects their current content.
	source.ClearCache()

	st := newStyles(c.color)

	_, err = fmt.Fprintf(w, "Timer unit: %g s\n\n", outputUnit)
	if err != nil {
		return err
	}

	for _, target := range targets {
		err := writeFunc(w, target, stats[target], unit, outputUnit, c, pred, st)
		if err != nil {
			return err
		}
	}

	return nil
}

// writeFunc renders the block of one target: header lines and the
// per-line table over the function's source block.
//
// A missing source file degrades to a single diagnostic line for this
// target only. A zero-total target is omitted entirely under stripzeros.
func writeFunc(
	w io.Writer,
	target tracer.Target,
	timings []tracer.LineStat,
	unit, outputUnit float64,
	c control,
	pred filterFunc,
	st styles,
) error {
	if _, err := os.Stat(target.File); err != nil {
		_, werr := fmt.Fprintf(
			w, "%s\n",
			st.miss.Render("Could not find file "+target.File),
		)

		return werr
	}

	var total int64
	for _, ls := range timings {
		total += ls.Ticks
	}

	if c.stripZeros && total == 0 {
		return nil
	}

	scalar := unit / outputUnit

	_, err := fmt.Fprintf(w, "%s\n",
		st.title.Render(fmt.Sprintf(
			"Total time in %s: %6.3f s", target.Name, float64(total)*scalar,
		)),
	)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "File: %s\nFunction: %s at line %d\n",
		target.File, target.Name, target.Line,
	)
	if err != nil {
		return err
	}

	// Block isolation failures degrade to a header-only table.
	block, _ := source.Block(target.File, target.Line)

	cells := map[int][4]string{}

	for _, ls := range timings {
		t := float64(ls.Ticks) * scalar

		var percent float64
		if total != 0 {
			percent = 100 * float64(ls.Ticks) / float64(total)
		}

		if pred != nil && !pred(ls.Line, ls.Hits, t, percent) {
			continue
		}

		row := [4]string{
			strconv.FormatInt(ls.Hits, 10),
			fmt.Sprintf("%5.1f", t),
			"", // per-hit undefined when the line was never hit
			"", // percentage undefined when the target total is zero
		}

		if ls.Hits != 0 {
			row[2] = fmt.Sprintf("%5.1f", t/float64(ls.Hits))
		}

		if total != 0 {
			row[3] = fmt.Sprintf("%5.1f", percent)
		}

		cells[ls.Line] = row
	}

	header := fmt.Sprintf("%-6s %-9s %-12s %-8s %-8s  %s",
		"Line #", "Hits", "Time", "Per Hit", "% Time", "Line Contents",
	)

	_, err = fmt.Fprintf(w, "\n%s\n%s\n",
		st.header.Render(header),
		strings.Repeat("=", len(header)),
	)
	if err != nil {
		return err
	}

	for i, text := range block {
		lineno := target.Line + i
		row := cells[lineno] // zero value renders four blank columns

		_, err = fmt.Fprintf(w, "%6d %9s %-12s %-8s %-8s %s\n",
			lineno, row[0], row[1], row[2], row[3],
			strings.TrimRight(text, " \t\r\n"),
		)
		if err != nil {
			return err
		}
	}

	_, err = fmt.Fprintln(w)

	return err
}
