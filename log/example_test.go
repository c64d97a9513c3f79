package log_test

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/lprof/log"
)

func Example_basic() {
	logger := log.Make(os.Stdout)
	logger.Info("session started", slog.String("workload", "collatz"))
}

func Example_configuration() {
	logger := log.Make(os.Stdout,
		log.WithLevel(log.LevelDebug),
		log.WithTimeLayout("RFC3339Nano"),
		log.WithCaller(true))

	logger.Debug("tracer registered")
}

func Example_levels() {
	logger := log.Make(os.Stdout, log.WithLevel(log.LevelWarn))

	logger.Debug("wrapping target")
	logger.Info("iteration complete")
	logger.Warn("source file missing", slog.String("file", "demo.go"))
	logger.Error("report failed", slog.String("error", "write: broken pipe"))
}

func Example_textFormat() {
	logger := log.Make(os.Stdout, log.WithFormat(log.FormatText))
	logger.Info("report written", slog.String("path", "report.txt"))
}

func Example_withAttributes() {
	// Attach the workload name to every message.
	logger := log.Make(os.Stdout).With(slog.String("workload", "primes"))

	logger.Info("profiling workload")
	logger.Debug("iteration complete", slog.Int("iteration", 7))
}

func Example_withContext() {
	type sessionKey struct{}

	ctx := context.WithValue(context.Background(), sessionKey{}, "run-7")

	logger := log.Make(os.Stdout)

	logger.InfoContext(ctx, "profiling workload")
	logger.DebugContext(ctx, "iteration complete", slog.Int("iteration", 7))
}
