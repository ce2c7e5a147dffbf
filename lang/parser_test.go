package lang

import (
	"errors"
	"testing"
)

func TestParseExpr(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *Expr
	}{
		{
			name:  "int",
			input: "42",
			want:  NewInt(42),
		},
		{
			name:  "ident",
			input: "x",
			want:  NewIdent("x"),
		},
		{
			name:  "nil",
			input: "nil",
			want:  NewNil(),
		},
		{
			name:  "call without args",
			input: "(f)",
			want:  NewCall("f"),
		},
		{
			name:  "nested call",
			input: "(+ 1 (* x 2) nil)",
			want: NewCall("+",
				NewInt(1),
				NewCall("*", NewIdent("x"), NewInt(2)),
				NewNil()),
		},
		{
			name:  "whitespace and newlines",
			input: "\n ( if\tc\n 1 2 ) \n",
			want:  NewCall("if", NewIdent("c"), NewInt(1), NewInt(2)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseExpr(tt.input)
			if err != nil {
				t.Fatalf("ParseExpr(%q): %v", tt.input, err)
			}

			if !got.Equal(tt.want) {
				t.Errorf("ParseExpr(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDefinition(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantKind   DefinitionKind
		wantName   Ident
		wantParams []Ident
		wantBody   *Expr
	}{
		{
			name:     "value",
			input:    "x is (+ 1 1)",
			wantKind: DefineValue,
			wantName: "x",
			wantBody: NewCall("+", NewInt(1), NewInt(1)),
		},
		{
			name:     "nil value",
			input:    "y is nil",
			wantKind: DefineValue,
			wantName: "y",
			wantBody: NewNil(),
		},
		{
			name:       "function",
			input:      "double is fn (n) (+ n n)",
			wantKind:   DefineFunction,
			wantName:   "double",
			wantParams: []Ident{"n"},
			wantBody:   NewCall("+", NewIdent("n"), NewIdent("n")),
		},
		{
			name:       "function without params",
			input:      "seven is fn () 7",
			wantKind:   DefineFunction,
			wantName:   "seven",
			wantParams: []Ident{},
			wantBody:   NewInt(7),
		},
		{
			name:     "fn as a name",
			input:    "fn is 3",
			wantKind: DefineValue,
			wantName: "fn",
			wantBody: NewInt(3),
		},
		{
			name:     "fn as a value",
			input:    "x is fn",
			wantKind: DefineValue,
			wantName: "x",
			wantBody: NewIdent("fn"),
		},
		{
			name:       "fn everywhere",
			input:      "fn is fn (fn) (fn fn)",
			wantKind:   DefineFunction,
			wantName:   "fn",
			wantParams: []Ident{"fn"},
			wantBody:   NewCall("fn", NewIdent("fn")),
		},
		{
			name:       "operator name",
			input:      "+ is fn (a b) a",
			wantKind:   DefineFunction,
			wantName:   "+",
			wantParams: []Ident{"a", "b"},
			wantBody:   NewIdent("a"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := ParseDefinition(tt.input)
			if err != nil {
				t.Fatalf("ParseDefinition(%q): %v", tt.input, err)
			}

			if def.Kind != tt.wantKind || def.Name != tt.wantName {
				t.Fatalf("got %s %s, want %s %s",
					def.Kind, def.Name, tt.wantKind, tt.wantName)
			}

			body := def.Value
			if def.Kind == DefineFunction {
				body = def.Body

				if len(def.Params) != len(tt.wantParams) {
					t.Fatalf("params = %v, want %v", def.Params, tt.wantParams)
				}

				for i := range def.Params {
					if def.Params[i] != tt.wantParams[i] {
						t.Errorf("param %d = %s, want %s", i, def.Params[i], tt.wantParams[i])
					}
				}
			}

			if !body.Equal(tt.wantBody) {
				t.Errorf("body = %s, want %s", body, tt.wantBody)
			}
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	inputs := []string{
		"0",
		"nil",
		"foo_bar",
		"(f)",
		"(+ 1 2 3)",
		"(if (- x 2) (double x) nil)",
		"x is 3",
		"x is fn",
		"f is fn () nil",
		"fact is fn (n) (if n (* n (fact (- n 1))) 1)",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			node, err := Parse(Code(input))
			if err != nil {
				t.Fatalf("Parse(%q): %v", input, err)
			}

			if got := node.String(); got != input {
				t.Errorf("String() = %q, want %q", got, input)
			}

			again, err := Parse(Code(node.String()))
			if err != nil {
				t.Fatalf("reparse %q: %v", node.String(), err)
			}

			if again.String() != node.String() {
				t.Errorf("reparse = %q, want %q", again.String(), node.String())
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		def       bool
		wantErr   error
		wantPos   string
		wantToken string
	}{
		{
			name:    "empty expression",
			input:   "",
			wantErr: ErrUnexpectedEOF,
			wantPos: "1:1",
		},
		{
			name:    "unclosed call",
			input:   "(+ 1 2",
			wantErr: ErrUnexpectedEOF,
			wantPos: "1:7",
		},
		{
			name:      "call head must be identifier",
			input:     "(1 2)",
			wantErr:   ErrUnexpectedToken,
			wantPos:   "1:2",
			wantToken: "Int(1)",
		},
		{
			name:      "empty call",
			input:     "()",
			wantErr:   ErrUnexpectedToken,
			wantPos:   "1:2",
			wantToken: "CloseParens",
		},
		{
			name:      "trailing input",
			input:     "1 2",
			wantErr:   ErrUnexpectedToken,
			wantPos:   "1:3",
			wantToken: "Int(2)",
		},
		{
			name:      "stray close",
			input:     ")",
			wantErr:   ErrUnexpectedToken,
			wantPos:   "1:1",
			wantToken: "CloseParens",
		},
		{
			name:      "keyword as expression",
			input:     "is",
			wantErr:   ErrUnexpectedToken,
			wantPos:   "1:1",
			wantToken: "Is",
		},
		{
			name:    "lex error surfaces",
			input:   "(+ 1 #)",
			wantErr: ErrUnexpectedChar,
			wantPos: "1:6",
		},
		{
			name:      "definition without is",
			input:     "x 3",
			def:       true,
			wantErr:   ErrUnexpectedToken,
			wantPos:   "1:3",
			wantToken: "Int(3)",
		},
		{
			name:    "definition without value",
			input:   "x is",
			def:     true,
			wantErr: ErrUnexpectedEOF,
			wantPos: "1:5",
		},
		{
			name:      "non-identifier parameter",
			input:     "f is fn (a 1) a",
			def:       true,
			wantErr:   ErrUnexpectedToken,
			wantPos:   "1:12",
			wantToken: "Int(1)",
		},
		{
			name:      "fn without parameter list",
			input:     "f is fn a",
			def:       true,
			wantErr:   ErrUnexpectedToken,
			wantPos:   "1:9",
			wantToken: `Identifier("a")`,
		},
		{
			name:    "fn without body",
			input:   "f is fn (a)",
			def:     true,
			wantErr: ErrUnexpectedEOF,
			wantPos: "1:12",
		},
		{
			name:      "second line position",
			input:     "(+ 1\n  ))",
			wantErr:   ErrUnexpectedToken,
			wantPos:   "2:4",
			wantToken: "CloseParens",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			if tt.def {
				_, err = ParseDefinition(tt.input)
			} else {
				_, err = ParseExpr(tt.input)
			}

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}

			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error %T is not a *ParseError", err)
			}

			if got := pe.Pos.String(); got != tt.wantPos {
				t.Errorf("error at %s, want %s", got, tt.wantPos)
			}

			if tt.wantToken != "" {
				if pe.Token == nil {
					t.Fatalf("error has no token, want %s", tt.wantToken)
				}

				if got := pe.Token.String(); got != tt.wantToken {
					t.Errorf("token = %s, want %s", got, tt.wantToken)
				}
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		input string
		want  SnippetKind
	}{
		{"x is 3", SnippetDefinition},
		{"f is fn (a) a", SnippetDefinition},
		{"+ is fn () 0", SnippetDefinition},
		{"x", SnippetExpr},
		{"(x is 3)", SnippetExpr},
		{"is_x is 3", SnippetDefinition},
		{"x island", SnippetExpr},
		{"3 is 4", SnippetExpr},
		{"$ is 4", SnippetExpr},
		{"", SnippetExpr},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Classify(Code(tt.input)); got != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}
