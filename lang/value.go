package lang

import (
	"strconv"
)

// Value is a runtime value: either a 64-bit integer or nil.
// The zero Value is nil. Values are comparable with ==.
type Value struct {
	i     int64
	isInt bool
}

// Nil is the absence-of-value.
var Nil = Value{}

// Int returns an integer Value.
func Int(i int64) Value {
	return Value{i: i, isInt: true}
}

// IsNil reports whether v is nil.
func (v Value) IsNil() bool { return !v.isInt }

// Int returns the integer held by v and whether v is an integer.
func (v Value) Int() (int64, bool) { return v.i, v.isInt }

// Truthy reports whether v selects the "then" branch of an if: nil and zero
// are falsy, every other integer is truthy.
func (v Value) Truthy() bool {
	return v.isInt && v.i != 0
}

// String renders v as it is spliced into a document: decimal for integers,
// "nil" otherwise.
func (v Value) String() string {
	if !v.isInt {
		return "nil"
	}

	return strconv.FormatInt(v.i, 10)
}

// ToNative returns int64 for integers and nil for nil.
func (v Value) ToNative() any {
	if !v.isInt {
		return nil
	}

	return v.i
}

// coerce extracts an integer operand. Anything else is a type mismatch,
// which callers map uniformly to [Nil].
func coerce(v Value) (int64, bool) {
	return v.Int()
}
