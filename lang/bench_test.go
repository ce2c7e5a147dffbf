package lang

import (
	"testing"
)

func BenchmarkLex(b *testing.B) {
	const src = "fact is fn (n) (if n (* n (fact (- n 1))) 1)"

	for b.Loop() {
		if _, err := Lex(src); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEvaluate(b *testing.B) {
	tests := []struct {
		name string
		defs []string
		expr string
	}{
		{
			name: "arithmetic",
			expr: "(+ 1 (* 2 3) (- 10 4) (/ 100 5))",
		},
		{
			name: "function_call",
			defs: []string{"double is fn (n) (+ n n)"},
			expr: "(double (double 21))",
		},
		{
			name: "recursion",
			defs: []string{"fact is fn (n) (if n (* n (fact (- n 1))) 1)"},
			expr: "(fact 20)",
		},
	}

	for _, tt := range tests {
		b.Run(tt.name, func(b *testing.B) {
			in := New()

			for _, def := range tt.defs {
				if err := in.Definition(b.Context(), Code(def)); err != nil {
					b.Fatal(err)
				}
			}

			expr, err := ParseExpr(tt.expr)
			if err != nil {
				b.Fatal(err)
			}

			for b.Loop() {
				if _, err := in.Evaluate(b.Context(), expr); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkExpr compares parsing every time with a shared parse cache.
func BenchmarkExpr(b *testing.B) {
	const src = Code("(+ 1 (* 2 3) (- 10 4) (/ 100 5))")

	b.Run("uncached", func(b *testing.B) {
		in := New()

		for b.Loop() {
			if _, err := in.Expr(b.Context(), src); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("cached", func(b *testing.B) {
		in := New(WithCache(NewCache()))

		for b.Loop() {
			if _, err := in.Expr(b.Context(), src); err != nil {
				b.Fatal(err)
			}
		}
	})
}
