package lang

import (
	"context"
	"log/slog"
)

var builtinNames = []string{"*", "+", "-", "/", "if"}

// Builtins returns the names that are dispatched before user functions.
// Defining a function with one of these names has no effect on calls.
func Builtins() []string {
	names := make([]string, len(builtinNames))
	copy(names, builtinNames)

	return names
}

// IsBuiltin reports whether name is a built-in operator.
func IsBuiltin(name Ident) bool {
	switch name {
	case "+", "*", "-", "/", "if":
		return true

	default:
		return false
	}
}

// running is the accumulator of the non-commutative folds: it has no value
// until the first operand arrives.
type running struct {
	v   int64
	set bool
}

// accumulate evaluates args left to right and folds each integer into acc.
// The first non-integer operand ends the fold with [Nil] and the remaining
// operands are not evaluated.
func accumulate[A any](
	ctx context.Context,
	in *Interpreter,
	args []*Expr,
	acc A,
	combine func(A, int64) (A, error),
	result func(A) Value,
) (Value, error) {
	for _, arg := range args {
		v, err := in.eval(ctx, arg)
		if err != nil {
			return Nil, err
		}

		i, ok := coerce(v)
		if !ok {
			return Nil, nil
		}

		if acc, err = combine(acc, i); err != nil {
			return Nil, err
		}
	}

	return result(acc), nil
}

// Arithmetic wraps on overflow, including MinInt64 / -1.

func add(acc, i int64) (int64, error) { return acc + i, nil }

func mul(acc, i int64) (int64, error) { return acc * i, nil }

func sub(acc running, i int64) (running, error) {
	if !acc.set {
		return running{v: i, set: true}, nil
	}

	return running{v: acc.v - i, set: true}, nil
}

func div(acc running, i int64) (running, error) {
	if !acc.set {
		return running{v: i, set: true}, nil
	}

	if i == 0 {
		return acc, ErrDivideByZero.With(slog.Int64("dividend", acc.v))
	}

	return running{v: acc.v / i, set: true}, nil
}

// orDefault yields the accumulated value, or def if no operand was seen.
func orDefault(def int64) func(running) Value {
	return func(acc running) Value {
		if !acc.set {
			return Int(def)
		}

		return Int(acc.v)
	}
}
