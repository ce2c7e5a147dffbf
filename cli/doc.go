// Package cli contains the command line interface for wbd.
//
// # Usage
//
//	wbd lex '(+ 1 x)'
//	wbd parse json 'double is fn (n) (+ n n)'
//	wbd eval -d 'x is 3' '(* x x)'
//	wbd eval -f snippets.wbd
//	wbd repl -f snippets.wbd
//
// Eval is the default command, so "wbd '(+ 1 2)'" prints 3.
//
// # Configuration
//
// Flag defaults are read from $XDG_CONFIG_HOME/wbd/config.yaml, a flat YAML
// mapping from flag names to values, and from config.json in the same
// directory. "wbd init" writes the current flag values to config.yaml.
// Command-line flags override both files.
//
// # Logging Options
//
//   - --log-level: minimum level (trace, debug, info, warn, error)
//   - --log-format: output format (text, json)
//   - --log-time: timestamp layout (RFC3339, Kitchen, none, ...)
//   - --log-caller: include caller information
//   - --log-pretty: colorize text output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: profile to collect (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: profile output directory (default
//     $XDG_CACHE_HOME/wbd/pprof)
package cli
