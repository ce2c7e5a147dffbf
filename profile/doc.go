// Package profile wraps [github.com/pkg/profile] to profile a wbd run.
//
// Profiling is compiled in only with the "pprof" build tag:
//
//	go build -tags pprof .
//	wbd --pprof-mode cpu eval -f snippets.wbd
//	go tool pprof -http=: "$XDG_CACHE_HOME/wbd/pprof/cpu.pprof"
//
// Without the tag, [Modes] is empty and [Profiler.Start] always returns a
// no-op [Stopper]. The supported modes are allocs, block, clock, cpu,
// goroutine, heap, mem, mutex, thread and trace.
//
// With the tag, the package also imports [net/http/pprof], registering its
// handlers on [net/http.DefaultServeMux].
package profile

// Tag is the build tag required to enable profiling.
const Tag = `pprof`
