// Package lang implements the Wahlbergdown scripting core: a lexer, a
// recursive-descent parser and a tree-walking interpreter for the tiny
// expression language embedded in Wahlbergdown documents.
//
// A document splitter (not part of this package) extracts code snippets from
// a document and hands them to an [Interpreter] in document order. Snippets
// inside comments are definitions; snippets inside backticks are
// expressions whose values are spliced into the output.
//
// # Grammar
//
// Informal EBNF:
//
//	expr       → IDENT | INT | 'nil' | call
//	call       → '(' IDENT expr* ')'
//	definition → IDENT 'is' ( function | expr )
//	function   → 'fn' '(' IDENT* ')' expr
//
// Identifiers start with a letter or underscore and continue with letters,
// digits or underscores. The operator characters + - * / are one-character
// identifiers. Only "is" and "nil" are reserved: "fn" marks a function
// definition when a parameter list follows it and is an ordinary name
// everywhere else.
//
// # Example
//
// Given the definitions
//
//	x is (+ 1 1)
//	double is fn (n) (+ n n)
//
// the expression (double x) evaluates to 4 and (if (- x 2) 10 20) to 20.
//
// # Values
//
// The only runtime values are 64-bit integers and nil. Operators never fail
// on bad operands: a non-integer operand turns the whole call into nil, an
// unresolved name is nil, and calling an unknown function is nil. The only
// runtime errors are division by zero ([ErrDivideByZero]) and exceeding the
// call depth limit ([ErrMaxDepthExceeded]).
//
// # Scoping
//
// Top-level definitions live in a single persistent scope. Each user
// function call pushes a fresh scope holding only its parameters, and name
// lookups see the innermost scope only. A function body therefore cannot
// read top-level bindings; values must be passed in as arguments. There are
// no closures.
package lang
