package cmd

import (
	"context"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/ardnew/lprof/log"
	"github.com/ardnew/lprof/report"
	"github.com/ardnew/lprof/tracer"
	"github.com/ardnew/lprof/wrap"
)

// Run profiles the bundled demo workloads and prints a line-level report.
type Run struct {
	Workload   []string `arg:""       help:"Workload(s) to profile (default: all)" name:"workload" optional:""`
	Iterations int      `default:"10" help:"Number of times to invoke each workload"                               short:"n"`
	Output     string   `default:"-"  help:"Report output file or '-' for stdout"                                  short:"o"`
	OutputUnit float64  `default:"0"  help:"Render times in this unit (seconds per tick)"`
	StripZeros bool     `             help:"Omit functions that recorded no time"                                  short:"z"`
	Filter     string   `             help:"Keep only lines matching this expression (line, hits, time, percent)"`
	Match      string   `             help:"Keep only functions fuzzy-matching this pattern"                       short:"m"`
	Color      bool     `             help:"Colorize report output"                                  negatable:""`
}

// Run executes the run command.
func (r *Run) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	names := r.Workload
	if len(names) == 0 {
		names = slices.Sorted(workloadNames())
	}

	d := wrap.New(tracer.New())
	bench := newWorkbench(d.Tracer())

	for _, name := range names {
		workload, ok := workloadByName(name)
		if !ok {
			return ErrUnknownWorkload.
				With(slog.String("workload", name)).
				With(slog.String("available",
					strings.Join(slices.Sorted(workloadNames()), ", ")))
		}

		log.DebugContext(ctx, "profiling workload",
			slog.String("workload", name),
			slog.Int("iterations", r.Iterations),
		)

		err = workload(ctx, bench, d, r.Iterations)
		if err != nil {
			return ErrWrapWorkload.
				With(slog.String("workload", name)).
				Wrap(err)
		}
	}

	out := os.Stdout
	if r.Output != "" && r.Output != stdinSource {
		out, err = os.Create(r.Output)
		if err != nil {
			return ErrWriteReport.
				With(slog.String("file", r.Output)).
				Wrap(err)
		}
		defer out.Close()
	}

	opts := []report.Option{
		report.WithStripZeros(r.StripZeros),
		report.WithColor(r.Color),
	}

	if r.OutputUnit > 0 {
		opts = append(opts, report.WithOutputUnit(r.OutputUnit))
	}

	if r.Filter != "" {
		opts = append(opts, report.WithFilter(r.Filter))
	}

	if r.Match != "" {
		opts = append(opts, report.WithMatch(r.Match))
	}

	err = d.WriteStats(out, opts...)
	if err != nil {
		return ErrWriteReport.
			With(slog.String("file", r.Output)).
			Wrap(err)
	}

	return nil
}
