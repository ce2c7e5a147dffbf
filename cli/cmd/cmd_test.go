package cmd

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

func readSources(t *testing.T, paths ...string) string {
	t.Helper()

	srcs, err := OpenSources(paths)
	if err != nil {
		t.Fatalf("OpenSources(%v): %v", paths, err)
	}

	t.Cleanup(func() { _ = srcs.Close() })

	r := srcs.Reader()
	if r == nil {
		return ""
	}

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("reading sources: %v", err)
	}

	return string(data)
}

func TestOpenSourcesEmpty(t *testing.T) {
	srcs, err := OpenSources(nil)
	if err != nil {
		t.Fatal(err)
	}

	if !srcs.IsZero() {
		t.Error("OpenSources(nil) is not zero")
	}

	if srcs.Reader() != nil {
		t.Error("Reader() of no sources is not nil")
	}
}

func TestOpenSourcesOrderAndSeparator(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.wbd", "x is 1")
	b := writeFile(t, dir, "b.wbd", "y is 2\n")

	if got, want := readSources(t, a, b), "x is 1\ny is 2\n\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestOpenSourcesDuplicates(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.wbd", "x is 1\n")

	link := filepath.Join(dir, "link.wbd")
	if err := os.Symlink(a, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	rel, err := filepath.Rel(wd, a)
	if err != nil {
		t.Fatal(err)
	}

	if got, want := readSources(t, a, rel, link, a), "x is 1\n\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestOpenSourcesNonexistent(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.wbd", "x is 1\n")

	_, err := OpenSources([]string{a, filepath.Join(dir, "missing.wbd")})
	if !errors.Is(err, ErrOpenSource) {
		t.Fatalf("error = %v, want %v", err, ErrOpenSource)
	}

	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want wrapped %v", err, os.ErrNotExist)
	}
}

func TestOpenSourcesStdin(t *testing.T) {
	srcs, err := OpenSources([]string{"-", "-"})
	if err != nil {
		t.Fatal(err)
	}

	if srcs.IsZero() || !srcs.stdin || len(srcs.files) != 0 {
		t.Errorf("sources = %+v, want stdin only", srcs)
	}
}
