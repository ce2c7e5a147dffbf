package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/wbd/lang"
)

// Lex prints the tokens of a snippet, one per line, with their positions.
type Lex struct {
	Snippet string `arg:"" help:"Snippet to tokenize" name:"snippet"`
}

// Run executes the lex command.
func (l *Lex) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	w := outputFrom(ctx)

	// Tokens before a lex error are still printed.
	toks, err := lang.Lex(l.Snippet)

	for _, tok := range toks {
		if _, werr := fmt.Fprintf(w, "%s\t%s\n", tok.Pos, tok); werr != nil {
			return werr
		}
	}

	if err != nil {
		return ErrLex.With(slog.String("snippet", l.Snippet)).Wrap(err)
	}

	return nil
}
