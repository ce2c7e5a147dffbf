package cmd

import (
	"context"
	"io"

	"github.com/ardnew/wbd/cli/cmd/repl"
	"github.com/ardnew/wbd/log"
)

// Repl starts an interactive session.
type Repl struct {
	Source    []string `help:"Snippet file to run before the session starts, or '-' for stdin" placeholder:"FILE" short:"f"`
	NoHistory bool     `help:"Keep history in memory only"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	srcs, err := OpenSources(r.Source)
	if err != nil {
		return err
	}

	defer srcs.Close()

	var source io.Reader
	if !srcs.IsZero() {
		source = srcs.Reader()
	}

	cacheDir := ""
	if !r.NoHistory {
		cacheDir, _ = varFrom(ctx, CacheIdentifier)
	}

	return repl.Run(ctx, source, cacheDir, log.Default())
}
