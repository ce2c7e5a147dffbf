package lang

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
)

func mustParse(t *testing.T, src string) Node {
	t.Helper()

	node, err := Parse(Code(src))
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}

	return node
}

func TestFormat(t *testing.T) {
	var buf bytes.Buffer

	if err := Format(&buf, mustParse(t, "(+   1\n (f  x))")); err != nil {
		t.Fatal(err)
	}

	if got := buf.String(); got != "(+ 1 (f x))\n" {
		t.Errorf("Format = %q", got)
	}
}

func TestFormatJSON(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		indent int
		want   string
	}{
		{
			name: "int",
			src:  "7",
			want: "7\n",
		},
		{
			name: "nil",
			src:  "nil",
			want: "null\n",
		},
		{
			name: "call",
			src:  "(+ 1 x nil)",
			want: `{"+":[1,"x",null]}` + "\n",
		},
		{
			name: "value definition",
			src:  "x is (f)",
			want: `{"x":{"f":[]}}` + "\n",
		},
		{
			name: "function definition",
			src:  "sq is fn (n) (* n n)",
			want: `{"sq":{"(body)":{"*":["n","n"]},"(parameters)":["n"]}}` + "\n",
		},
		{
			name:   "indented",
			src:    "(f 1)",
			indent: 2,
			want:   "{\n  \"f\": [\n    1\n  ]\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			if err := FormatJSON(&buf, mustParse(t, tt.src), tt.indent); err != nil {
				t.Fatal(err)
			}

			if got := buf.String(); got != tt.want {
				t.Errorf("FormatJSON(%q) =\n%s\nwant\n%s", tt.src, got, tt.want)
			}
		})
	}
}

func TestFormatYAML(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		indent int
	}{
		{name: "block", src: "f is fn (lhs rhs) (if lhs (+ lhs rhs) nil)", indent: 2},
		{name: "flow", src: "(+ 1 (* 2 val))", indent: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := mustParse(t, tt.src)

			var buf bytes.Buffer

			if err := FormatYAML(t.Context(), &buf, node, tt.indent); err != nil {
				t.Fatal(err)
			}

			var decoded any
			if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
				t.Fatalf("output is not YAML: %v\n%s", err, buf.String())
			}

			var want bytes.Buffer

			if err := FormatJSON(&want, node, 0); err != nil {
				t.Fatal(err)
			}

			got, err := json.Marshal(decoded)
			if err != nil {
				t.Fatal(err)
			}

			if string(got) != strings.TrimSpace(want.String()) {
				t.Errorf("YAML decodes to\n%s\nwant\n%s", got, want.String())
			}

			if tt.indent == 0 && strings.Contains(strings.TrimSpace(buf.String()), "\n") {
				t.Errorf("flow output spans lines:\n%s", buf.String())
			}
		})
	}
}

func TestPrint(t *testing.T) {
	tests := []struct {
		src  string
		want []string
	}{
		{
			src:  "(+ 1 (f x) nil)",
			want: []string{"Call +", "  Int 1", "  Call f", "    Ident x", "  Nil"},
		},
		{
			src:  "x is 3",
			want: []string{"Definition x", "  Int 3"},
		},
		{
			src:  "f is fn (a b) (+ a b)",
			want: []string{"Function f (a b)", "  Call +", "    Ident a", "    Ident b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			var buf bytes.Buffer

			if err := Print(&buf, mustParse(t, tt.src)); err != nil {
				t.Fatal(err)
			}

			want := strings.Join(tt.want, "\n") + "\n"
			if got := buf.String(); got != want {
				t.Errorf("Print(%q) =\n%s\nwant\n%s", tt.src, got, want)
			}
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestPrint_WriteError(t *testing.T) {
	if err := Print(failingWriter{}, mustParse(t, "(f 1)")); err == nil {
		t.Error("expected write error")
	}
}
