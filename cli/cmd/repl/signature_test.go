package repl

import (
	"slices"
	"strings"
	"testing"
)

func TestDetectCall(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		cursor    int
		wantHead  string
		wantIndex int
		wantIn    bool
	}{
		{"no_call", "x", 1, "", 0, false},
		{"open_only", "(", 1, "", 0, false},
		{"typing_head", "(dou", 4, "", 0, false},
		{"after_head", "(double ", 8, "double", 0, true},
		{"typing_first", "(+ 1", 4, "+", 0, true},
		{"after_first", "(+ 1 ", 5, "+", 1, true},
		{"typing_second", "(if c 7", 7, "if", 1, true},
		{"third", "(if c 7 ", 8, "if", 2, true},
		{"inner_call", "(f (g ", 6, "g", 0, true},
		{"after_inner_call", "(f (g 1) ", 9, "f", 1, true},
		{"at_inner_close", "(f (g 1)", 8, "f", 0, true},
		{"cursor_mid", "(+ 1 2)", 4, "+", 0, true},
		{"closed_call", "(+ 1 2)", 7, "", 0, false},
		{"definition_body", "f is fn (a b) (* a ", 19, "*", 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectCall(tt.input, tt.cursor)

			if got.inCall != tt.wantIn {
				t.Fatalf("detectCall(%q, %d).inCall = %v, want %v",
					tt.input, tt.cursor, got.inCall, tt.wantIn)
			}

			if !tt.wantIn {
				return
			}

			if got.head != tt.wantHead || got.argIndex != tt.wantIndex {
				t.Errorf("detectCall(%q, %d) = (%q, %d), want (%q, %d)",
					tt.input, tt.cursor, got.head, got.argIndex,
					tt.wantHead, tt.wantIndex)
			}
		})
	}
}

func TestSignature(t *testing.T) {
	sess := newTestSession(t,
		"x is 3",
		"add is fn (a b) (+ a b)",
		"zero is fn () 0",
	)

	tests := []struct {
		name   string
		head   string
		want   []string
		wantOK bool
	}{
		{"builtin_plus", "+", []string{"...n"}, true},
		{"builtin_minus", "-", []string{"first", "...n"}, true},
		{"builtin_if", "if", []string{"cond", "then", "else"}, true},
		{"user", "add", []string{"a", "b"}, true},
		{"user_no_params", "zero", []string{}, true},
		{"binding", "x", nil, false},
		{"unknown", "missing", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := signature(sess.interp, tt.head)
			if ok != tt.wantOK {
				t.Fatalf("signature(%q) ok = %v, want %v", tt.head, ok, tt.wantOK)
			}

			if !slices.Equal(got, tt.want) {
				t.Errorf("signature(%q) = %v, want %v", tt.head, got, tt.want)
			}
		})
	}
}

func TestRenderSignatureHint(t *testing.T) {
	tests := []struct {
		name   string
		head   string
		params []string
		arg    int
		want   string
	}{
		{"no_params", "zero", nil, 0, "(zero)"},
		{"first", "add", []string{"a", "b"}, 0, "(add a b)"},
		{"variadic", "+", []string{"...n"}, 3, "(+ ...n)"},
		{"past_end", "add", []string{"a", "b"}, 5, "(add a b)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := plain(renderSignatureHint(tt.head, tt.params, tt.arg))
			if got != tt.want {
				t.Errorf("renderSignatureHint() = %q, want %q", got, tt.want)
			}

			if !strings.Contains(got, tt.head) {
				t.Errorf("renderSignatureHint() = %q, missing head %q", got, tt.head)
			}
		})
	}
}
