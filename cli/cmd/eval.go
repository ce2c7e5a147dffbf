package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ardnew/wbd/lang"
	"github.com/ardnew/wbd/log"
)

// Eval runs snippets against one interpreter and prints the value of each
// expression. Source files run first, then definitions given with -d, then
// the positional snippets. With no input at all, snippets are read from
// stdin.
type Eval struct {
	Source   []string `help:"Snippet file, one snippet per line, or '-' for stdin" placeholder:"FILE" short:"f"`
	Define   []string `help:"Definition to run before the positional snippets"      placeholder:"DEF"  short:"d" sep:"none"`
	MaxDepth int      `default:"${maxDepth}" help:"Maximum nested function calls; 0 disables the limit"`

	Snippets []string `arg:"" help:"Expressions or definitions to run" name:"snippet" optional:""`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	paths := e.Source
	if len(paths) == 0 && len(e.Define) == 0 && len(e.Snippets) == 0 {
		paths = []string{stdinSource}
	}

	srcs, err := OpenSources(paths)
	if err != nil {
		return err
	}

	defer srcs.Close()

	logger := log.Default()
	interp := lang.New(
		lang.WithLogger(logger),
		lang.WithCache(lang.NewCache()),
		lang.WithMaxDepth(e.MaxDepth),
	)

	w := outputFrom(ctx)

	if r := srcs.Reader(); r != nil {
		if err := e.runSource(ctx, interp, w, r); err != nil {
			return err
		}
	}

	for i, def := range e.Define {
		if err := interp.Definition(ctx, lang.Code(def)); err != nil {
			return ErrEval.
				With(slog.String("define", def)).
				With(slog.Int("index", i)).
				Wrap(err)
		}
	}

	for i, code := range e.Snippets {
		if err := run(ctx, interp, w, lang.Code(code)); err != nil {
			return ErrEval.
				With(slog.String("snippet", code)).
				With(slog.Int("index", i)).
				Wrap(err)
		}
	}

	logger.DebugContext(ctx, "eval complete",
		slog.Int("sources", len(paths)),
		slog.Int("definitions", len(e.Define)),
		slog.Int("snippets", len(e.Snippets)))

	return nil
}

func (e *Eval) runSource(
	ctx context.Context,
	interp *lang.Interpreter,
	w io.Writer,
	r io.Reader,
) error {
	for snip, err := range lang.ReadSnippets(ctx, r) {
		if err != nil {
			return ErrEval.With(slog.Int("line", snip.Line)).Wrap(err)
		}

		if err := run(ctx, interp, w, snip.Code); err != nil {
			return ErrEval.
				With(slog.String("snippet", string(snip.Code))).
				With(slog.Int("line", snip.Line)).
				Wrap(err)
		}
	}

	return nil
}

// run executes one snippet and prints its value if it is an expression.
func run(
	ctx context.Context,
	interp *lang.Interpreter,
	w io.Writer,
	code lang.Code,
) error {
	if lang.Classify(code) == lang.SnippetDefinition {
		return interp.Definition(ctx, code)
	}

	v, err := interp.Expr(ctx, code)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, v)

	return err
}
