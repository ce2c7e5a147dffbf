package lang

import (
	"iter"
	"maps"
	"slices"
)

// scope maps names to values. Keys are unique within a scope.
type scope map[Ident]Value

// Environment is the variable store of an [Interpreter]: one persistent
// top-level scope plus a stack of per-call scopes.
//
// Lookups resolve in the innermost scope only. There is no chaining to outer
// scopes, so a function body cannot see top-level bindings unless they are
// passed as arguments. Existing documents rely on this.
type Environment struct {
	top   scope
	calls []scope
}

// NewEnvironment returns an Environment holding only an empty top-level
// scope.
func NewEnvironment() *Environment {
	return &Environment{top: make(scope)}
}

// Enter pushes a fresh, empty scope.
func (e *Environment) Enter() {
	e.calls = append(e.calls, make(scope))
}

// Exit pops the innermost scope. The top-level scope is never removed.
func (e *Environment) Exit() {
	if len(e.calls) == 0 {
		return
	}

	e.calls[len(e.calls)-1] = nil
	e.calls = e.calls[:len(e.calls)-1]
}

// Depth returns the number of scopes, including the top level.
func (e *Environment) Depth() int {
	return len(e.calls) + 1
}

// Put binds name in the current scope, overwriting any prior binding.
func (e *Environment) Put(name Ident, v Value) {
	e.current()[name] = v
}

// Get returns the value bound to name in the current scope, or [Nil].
func (e *Environment) Get(name Ident) Value {
	return e.current()[name]
}

// Globals returns the top-level bindings in name order.
func (e *Environment) Globals() iter.Seq2[Ident, Value] {
	return func(yield func(Ident, Value) bool) {
		for _, name := range slices.Sorted(maps.Keys(e.top)) {
			if !yield(name, e.top[name]) {
				return
			}
		}
	}
}

func (e *Environment) current() scope {
	if n := len(e.calls); n > 0 {
		return e.calls[n-1]
	}

	return e.top
}
