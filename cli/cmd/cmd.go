package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/alecthomas/kong"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// varFrom returns the kong variable name of the running application.
func varFrom(ctx context.Context, name string) (string, bool) {
	ktx := kongContextFrom(ctx)
	if ktx == nil {
		return "", false
	}

	v, ok := ktx.Model.Vars()[name]

	return v, ok
}

type outputKey struct{}

// WithOutput returns a context directing command output to w.
func WithOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, outputKey{}, w)
}

// outputFrom returns the writer stored by [WithOutput], or os.Stdout.
func outputFrom(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(outputKey{}).(io.Writer); ok && w != nil {
		return w
	}

	return os.Stdout
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// Sources is an ordered set of snippet inputs. Each file appears once, no
// matter how many paths name it; stdin is read last.
type Sources struct {
	files []*os.File
	stdin bool
}

// OpenSources opens the files named by paths. The path "-", or any path
// naming the same file as stdin, selects stdin.
func OpenSources(paths []string) (*Sources, error) {
	var (
		srcs  Sources
		infos []os.FileInfo
	)

	stdinInfo, _ := os.Stdin.Stat()

	for _, path := range paths {
		if path == stdinSource {
			srcs.stdin = true

			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			_ = srcs.Close()

			return nil, ErrOpenSource.With(slog.String("path", path)).Wrap(err)
		}

		if stdinInfo != nil && os.SameFile(info, stdinInfo) {
			srcs.stdin = true

			continue
		}

		if slices.ContainsFunc(infos, func(seen os.FileInfo) bool {
			return os.SameFile(seen, info)
		}) {
			continue
		}

		file, err := os.Open(path)
		if err != nil {
			_ = srcs.Close()

			return nil, ErrOpenSource.With(slog.String("path", path)).Wrap(err)
		}

		infos = append(infos, info)
		srcs.files = append(srcs.files, file)
	}

	return &srcs, nil
}

// IsZero reports whether there are no inputs.
func (s *Sources) IsZero() bool {
	return s == nil || (len(s.files) == 0 && !s.stdin)
}

// Reader concatenates the inputs. A line break separates consecutive inputs
// so the last line of one never joins the first line of the next.
func (s *Sources) Reader() io.Reader {
	if s.IsZero() {
		return nil
	}

	readers := make([]io.Reader, 0, 2*len(s.files)+1)

	for _, f := range s.files {
		readers = append(readers, f, strings.NewReader("\n"))
	}

	if s.stdin {
		readers = append(readers, os.Stdin)
	}

	return io.MultiReader(readers...)
}

// Close closes every opened file. Stdin is left open.
func (s *Sources) Close() error {
	if s == nil {
		return nil
	}

	errs := make([]error, 0, len(s.files))

	for _, f := range s.files {
		errs = append(errs, f.Close())
	}

	s.files = nil

	return errors.Join(errs...)
}
