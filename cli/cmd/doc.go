// Package cmd implements the wbd subcommands: lex, parse, eval, repl and
// init. Commands read snippets from their arguments or from source files
// (one snippet per line) and write results to the writer set with
// [WithOutput], which defaults to standard output.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path of
	// the YAML configuration file written by [Init].
	ConfigIdentifier = "config"

	// MaxDepthIdentifier is the kong variable identifier containing the
	// default call depth limit of the interpreter.
	MaxDepthIdentifier = "maxDepth"
)
