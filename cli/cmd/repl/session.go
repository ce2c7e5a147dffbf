package repl

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/ardnew/wbd/lang"
	"github.com/ardnew/wbd/log"
)

// session is the interpreter state behind a REPL together with the
// definitions that built it, in the order they were executed. The edit
// command renders those definitions back to source.
type session struct {
	interp *lang.Interpreter
	defs   []lang.Code
	cache  *lang.Cache
	logger log.Logger
}

func newSession(cache *lang.Cache, logger log.Logger) *session {
	return &session{
		interp: lang.New(lang.WithCache(cache), lang.WithLogger(logger)),
		cache:  cache,
		logger: logger,
	}
}

// eval runs one snippet. A definition evaluates to nil and is recorded; an
// expression never changes the session.
func (s *session) eval(ctx context.Context, code lang.Code) (lang.Value, error) {
	kind := lang.Classify(code)

	v, err := s.interp.Eval(ctx, code)
	if err != nil {
		return lang.Nil, err
	}

	if kind == lang.SnippetDefinition {
		s.defs = append(s.defs, code)
	}

	return v, nil
}

// load runs every snippet read from r. Expression values are discarded. The
// first failing snippet aborts the load with an error naming its line.
func (s *session) load(ctx context.Context, r io.Reader) error {
	count := 0

	for snip, err := range lang.ReadSnippets(ctx, r) {
		if err != nil {
			return err
		}

		if _, err := s.eval(ctx, snip.Code); err != nil {
			return lang.ErrSnippet.Wrap(err).With(slog.Int("line", snip.Line))
		}

		count++
	}

	s.logger.TraceContext(ctx, "repl source loaded",
		slog.Int("snippets", count),
		slog.Int("definitions", len(s.defs)))

	return nil
}

// source renders the recorded definitions one per line in canonical form.
// Definitions that no longer parse are written verbatim.
func (s *session) source() string {
	var b strings.Builder

	for _, code := range s.defs {
		if def, err := lang.ParseDefinition(string(code)); err == nil {
			b.WriteString(def.String())
		} else {
			b.WriteString(string(code))
		}

		b.WriteByte('\n')
	}

	return b.String()
}

// list renders the user functions followed by the top-level bindings.
func (s *session) list() string {
	var b strings.Builder

	for name, fn := range s.interp.Functions() {
		def := &lang.Definition{
			Name:   name,
			Kind:   lang.DefineFunction,
			Params: fn.Params,
			Body:   fn.Body,
		}

		b.WriteString("  ")
		b.WriteString(def.String())
		b.WriteByte('\n')
	}

	for name, v := range s.interp.Bindings() {
		b.WriteString("  ")
		b.WriteString(string(name))
		b.WriteString(" = ")
		b.WriteString(v.String())
		b.WriteByte('\n')
	}

	return b.String()
}
