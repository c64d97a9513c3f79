package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alecthomas/kong"

	"github.com/ardnew/lprof/log"
	"github.com/ardnew/lprof/pkg"
	"github.com/ardnew/lprof/tracer"
	"github.com/ardnew/lprof/wrap"
)

// CLI is the top-level command-line interface for funcscan.
type CLI struct {
	LogLevel string `default:"warn" enum:"trace,debug,info,warn,error" help:"Set log level."`

	Dir  []string `arg:"" help:"Package directory(ies) to scan" name:"dir" type:"existingdir"`
	List bool     `       help:"List every discovered function" short:"l"`
}

// Run executes the funcscan CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	parser, err := kong.New(&cli,
		kong.Name("funcscan"),
		kong.Description(
			"Discover functions eligible for line-level profiling",
		),
		kong.UsageOnError(),
		kong.Exit(exit),
	)
	if err != nil {
		return err
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	log.Config(log.WithLevel(log.ParseLevel(cli.LogLevel)))

	return cli.scan(ctx)
}

// scan registers every top-level function of each package directory and
// prints the results.
func (c *CLI) scan(ctx context.Context) error {
	d := wrap.New(tracer.New())

	total := 0

	for _, dir := range c.Dir {
		count, err := d.Package(dir)
		if err != nil {
			return pkg.MakeError(pkg.ErrReadInput, err).
				Wrapf("scan %s", dir)
		}

		log.DebugContext(ctx, "scanned package",
			slog.String("dir", dir),
			slog.Int("functions", count),
		)

		fmt.Printf("%s: %d function(s)\n", dir, count)

		total += count
	}

	if c.List {
		for _, target := range d.Tracer().Targets() {
			fmt.Printf("  %s %s:%d\n", target.Name, target.File, target.Line)
		}
	}

	if len(c.Dir) > 1 {
		fmt.Printf("total: %d function(s)\n", total)
	}

	return nil
}
