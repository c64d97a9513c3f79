package cli

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/lprof/log"
)

// logFormat is a custom type that configures the logger format as a side
// effect of parsing via encoding.TextUnmarshaler.
type logFormat string

// UnmarshalText implements encoding.TextUnmarshaler.
// Kong calls it while parsing the --log-format flag, which configures the
// logger early enough to affect error messages emitted during parsing.
func (f *logFormat) UnmarshalText(text []byte) error {
	*f = logFormat(text)
	log.Config(log.WithFormat(log.ParseFormat(string(*f))))

	return nil
}

// logLevel is a custom type that configures the logger level as a side
// effect of parsing via encoding.TextUnmarshaler.
type logLevel string

// UnmarshalText implements encoding.TextUnmarshaler.
// Kong calls it while parsing the --log-level flag, which configures the
// logger early enough to affect error messages emitted during parsing.
func (l *logLevel) UnmarshalText(text []byte) error {
	*l = logLevel(text)
	log.Config(log.WithLevel(log.ParseLevel(string(*l))))

	return nil
}

type logConfig struct {
	Level      logLevel  `default:"info"    enum:"trace,debug,info,warn,error" help:"Set log level."`
	Format     logFormat `default:"json"    enum:"json,text"                   help:"Set log format."`
	TimeLayout string    `default:"RFC3339"                                    help:"Set timestamp format."`
	Caller     bool      `default:"false"                                      help:"Include caller information."       negatable:""`
	Pretty     bool      `default:"true"                                       help:"Enable colorized pretty printing." negatable:""`
}

func (*logConfig) vars() kong.Vars {
	return kong.Vars{}
}

func (*logConfig) group() kong.Group {
	var group kong.Group

	group.Key = "log"
	group.Title = "Logging options"

	return group
}

func (f *logConfig) start(ctx context.Context) {
	log.Config(
		log.WithLevel(log.ParseLevel(string(f.Level))),
		log.WithFormat(log.ParseFormat(string(f.Format))),
		log.WithTimeLayout(f.TimeLayout),
		log.WithCaller(f.Caller),
		log.WithPretty(f.Pretty),
	)

	log.DebugContext(ctx, "logger initialized",
		slog.String("level", string(f.Level)),
		slog.String("format", string(f.Format)),
		slog.String("time", f.TimeLayout),
		slog.Bool("caller", f.Caller),
		slog.Bool("pretty", f.Pretty),
	)
}

// splitFlag separates a long flag into its name and, when written as
// --flag=value, its value.
func splitFlag(arg string) (name, value string, assigned bool) {
	if !strings.HasPrefix(arg, "--") {
		return "", "", false
	}

	if eq := strings.IndexByte(arg, '='); eq >= 0 {
		return arg[:eq], arg[eq+1:], true
	}

	return arg, "", false
}

// scan performs an early pass over command-line arguments to extract and
// apply logger configuration before Kong begins parsing, so the logger is
// configured regardless of flag position on the command line.
//
// The logFormat and logLevel types already configure the logger as Kong
// parses them, but boolean flags like Pretty never pass through
// encoding.TextUnmarshaler. This pre-scan applies all logger flags.
func (f *logConfig) scan(args []string) {
	// Boolean flags take a value only when written as --flag=value;
	// a bare flag means true, or false through its --no- form.
	toggle := func(dst *bool, opt func(bool) log.Option,
		value string, assigned, invert bool,
	) {
		v := true

		if assigned {
			parsed, err := strconv.ParseBool(value)
			if err != nil {
				return
			}

			v = parsed
		}

		if invert {
			v = !v
		}

		*dst = v

		log.Config(opt(v))
	}

	for i := 0; i < len(args); i++ {
		name, value, assigned := splitFlag(args[i])

		// Value flags consume the following argument unless assigned
		// with "=".
		next := func() string {
			if !assigned && i+1 < len(args) && len(args[i+1]) > 0 &&
				args[i+1][0] != '-' {
				i++

				return args[i]
			}

			return value
		}

		switch name {
		case "--log-level":
			_ = f.Level.UnmarshalText([]byte(next()))

		case "--log-format":
			_ = f.Format.UnmarshalText([]byte(next()))

		case "--log-pretty":
			toggle(&f.Pretty, log.WithPretty, value, assigned, false)

		case "--no-log-pretty":
			toggle(&f.Pretty, log.WithPretty, value, assigned, true)

		case "--log-caller":
			toggle(&f.Caller, log.WithCaller, value, assigned, false)

		case "--no-log-caller":
			toggle(&f.Caller, log.WithCaller, value, assigned, true)
		}
	}
}
