package lang

import (
	"bufio"
	"context"
	"io"
	"iter"
	"log/slog"
	"strings"

	"github.com/klauspost/readahead"
)

// SnippetKind distinguishes the two ways a snippet is executed.
type SnippetKind int

const (
	// SnippetExpr is evaluated and its value spliced into the document.
	SnippetExpr SnippetKind = iota

	// SnippetDefinition is executed for its binding and discarded.
	SnippetDefinition
)

// String returns a string representation of the snippet kind.
func (k SnippetKind) String() string {
	switch k {
	case SnippetExpr:
		return "expr"

	case SnippetDefinition:
		return "definition"

	default:
		return "unknown"
	}
}

// Snippet is one unit of code read from a stream.
type Snippet struct {
	Kind SnippetKind
	Code Code
	Line int // 1-based line number in the stream
}

// Classify reports whether code is a definition (an identifier followed by
// "is") or an expression. It reads at most two tokens. Code that fails to
// lex is classified as an expression, and parsing it reports the error.
func Classify(code Code) SnippetKind {
	lex := NewLexer(string(code))

	first, err := lex.Next()
	if err != nil || first.Kind != KindIdentifier {
		return SnippetExpr
	}

	second, err := lex.Next()
	if err != nil || second.Kind != KindIs {
		return SnippetExpr
	}

	return SnippetDefinition
}

// ReadSnippets reads one snippet per line from r. Blank lines and lines whose
// first non-blank character is '#' are skipped. Input is read through an
// asynchronous read-ahead buffer.
//
// The iterator stops after yielding an error. A read failure yields
// [ErrReadInput]; a cancelled ctx yields ctx's cause.
func ReadSnippets(ctx context.Context, r io.Reader) iter.Seq2[Snippet, error] {
	return func(yield func(Snippet, error) bool) {
		ra := readahead.NewReader(r)
		defer ra.Close()

		scan := bufio.NewScanner(ra)
		line := 0

		for scan.Scan() {
			line++

			if err := context.Cause(ctx); err != nil {
				yield(Snippet{Line: line}, err)

				return
			}

			text := strings.TrimSpace(scan.Text())
			if text == "" || strings.HasPrefix(text, "#") {
				continue
			}

			code := Code(text)
			if !yield(Snippet{Kind: Classify(code), Code: code, Line: line}, nil) {
				return
			}
		}

		if err := scan.Err(); err != nil {
			yield(Snippet{Line: line}, ErrReadInput.Wrap(err).
				With(slog.Int("line", line)))
		}
	}
}

// Parse classifies code and parses it as the matching [Node].
func Parse(code Code) (Node, error) {
	if Classify(code) == SnippetDefinition {
		return ParseDefinition(string(code))
	}

	return ParseExpr(string(code))
}
