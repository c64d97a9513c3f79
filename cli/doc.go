// Package cli contains the command line interface for lprof.
//
// # Usage
//
// The CLI provides logging and profiling configuration:
//
//	lprof --log-level=debug run
//
// # Commands
//
//   - run:     Wrap the bundled demo workloads, execute them, and print a
//     line-level timing report for each instrumented function.
//   - view:    Browse a previously captured report in an interactive pager
//     with fuzzy search.
//   - version: Print version information.
//
// # Configuration Loader
//
// The package includes a Kong configuration loader ([resolve]) that reads
// YAML config files and converts them to Kong flag values. The config file
// lives in the user configuration directory (e.g., ~/.config/lprof/config.yaml)
// and stores flag values under the top-level "config" key:
//
//	config:
//	  log_level: debug
//	  log_format: text
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Enable colorized pretty printing
//
// # Profiling Options
//
// Whole-process pprof profiling of lprof itself is only available when built
// with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/lprof/pprof)
//
// # Examples
//
//	# Debug logging with CPU profiling
//	lprof --log-level=debug --pprof-mode=cpu run
//
//	# Profile a single workload with more iterations
//	lprof run --workload collatz --iterations 100
//
//	# Render times in microseconds and omit functions with no samples
//	lprof run --output-unit 1e-6 --strip-zeros
//
//	# Browse a saved report
//	lprof run > report.txt && lprof view report.txt
package cli
