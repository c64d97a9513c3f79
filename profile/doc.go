// Package profile provides optional whole-process runtime profiling of
// lprof itself, orthogonal to the line-level timing data lprof collects
// for instrumented functions.
//
// The package wraps [github.com/pkg/profile] behind the "pprof" build tag.
// In default builds every operation is a no-op with zero overhead.
//
// # Modes
//
// When built with the pprof tag, the supported modes are allocs, block,
// clock, cpu, goroutine, heap, mem, mutex, thread, and trace. Use [Modes]
// to retrieve the list programmatically.
//
// # Usage
//
// The profiler is configured as a [Config] and started with [Config.Start]:
//
//	cfg := profile.Config(func() (mode, path string, quiet bool) {
//	    return "cpu", "/tmp/profiles", false
//	})
//	defer cfg.Start().Stop()
//
// Profile files are named after their mode (cpu.pprof, mem.pprof, ...) and
// written to the given directory, the lprof cache directory by default.
// Analyze them with:
//
//	go tool pprof ./lprof /tmp/profiles/cpu.pprof
//
// The lprof command exposes these parameters as the --pprof-mode and
// --pprof-dir flags when built with the pprof tag.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
