// Package log provides a structured logger built on [log/slog] that accepts
// only typed attributes.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("session started", slog.Int("snippets", n))
//
// # Configuration
//
// A Logger is configured once at creation with functional options and is
// immutable afterwards. [Logger.Wrap] derives a reconfigured copy.
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelTrace),
//		log.WithFormat(log.FormatJSON),
//		log.WithTimeLayout("kitchen"),
//		log.WithCaller(true))
//
// # Package Logger
//
// The package-level functions such as [Info] and [ErrorContext] write to a
// shared Logger that [Config] reconfigures in place. It initially writes
// pretty text to [os.Stderr] at [DefaultLevel].
//
// # Levels
//
// [LevelTrace] sits below [LevelDebug] and is used for per-call tracing of
// the interpreter. Messages below the configured level are discarded before
// any attribute is formatted.
//
// # Output Formats
//
// [FormatText] (default) and [FormatJSON] are supported. Text output is
// colorized unless [WithPretty] disables it.
package log
