package repl

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestHistoryAdd(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)
	h := NewHistory(path)

	for _, e := range []HistoryEntry{
		{"(+ 1 2)", modeEval},
		{"list", modeCtrl},
		{"  ", modeEval},
		{"x is 3", modeEval},
		{"(+ 1 2)", modeEval},
		{"(+ 1 2)", modeEval},
		{"list", modeEval},
	} {
		if err := h.Add(e.Line, e.Mode); err != nil {
			t.Fatalf("Add(%q): %v", e.Line, err)
		}
	}

	want := []HistoryEntry{
		{"list", modeCtrl},
		{"x is 3", modeEval},
		{"(+ 1 2)", modeEval},
		{"list", modeEval},
	}

	if got := h.Entries(); !slices.Equal(got, want) {
		t.Errorf("Entries() = %v, want %v", got, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	const wantFile = "C:list\nE:x is 3\nE:(+ 1 2)\nE:list\n"
	if string(data) != wantFile {
		t.Errorf("history file = %q, want %q", data, wantFile)
	}

	reloaded := NewHistory(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := reloaded.Entries(); !slices.Equal(got, want) {
		t.Errorf("reloaded Entries() = %v, want %v", got, want)
	}
}

func TestHistoryLoadMissing(t *testing.T) {
	h := NewHistory(filepath.Join(t.TempDir(), "absent", baseHistory))

	if err := h.Load(); err != nil {
		t.Errorf("Load() = %v, want nil", err)
	}

	if h.Len() != 0 {
		t.Errorf("Len() = %d, want 0", h.Len())
	}
}

func TestHistoryEntry(t *testing.T) {
	h := NewHistory("")

	if err := h.Add("help", modeCtrl); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		index   int
		want    HistoryEntry
		wantErr error
	}{
		{"first", 0, HistoryEntry{"help", modeCtrl}, nil},
		{"negative", -1, HistoryEntry{}, ErrOutOfBounds},
		{"past_end", 1, HistoryEntry{}, ErrOutOfBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := h.Entry(tt.index)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Entry(%d) error = %v, want %v", tt.index, err, tt.wantErr)
			}

			if got != tt.want {
				t.Errorf("Entry(%d) = %v, want %v", tt.index, got, tt.want)
			}
		})
	}
}
