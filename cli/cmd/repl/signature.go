package repl

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/wbd/lang"
)

var (
	signatureStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	signatureNameStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("6")).
				Bold(true)
	currentParamStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("11")).
				Bold(true)
)

// builtinParams are the parameter names shown for built-in operators. A
// leading "..." marks a variadic parameter.
var builtinParams = map[lang.Ident][]string{
	"+":  {"...n"},
	"*":  {"...n"},
	"-":  {"first", "...n"},
	"/":  {"first", "...n"},
	"if": {"cond", "then", "else"},
}

// call describes the innermost call enclosing the cursor.
type call struct {
	head     string // called name; empty if not yet typed
	argIndex int    // 0-based index of the argument under the cursor
	inCall   bool
}

// detectCall finds the innermost unclosed '(' before cursor and reports its
// head name and which argument the cursor is in.
func detectCall(input string, cursor int) call {
	cursor = min(max(cursor, 0), len(input))

	depth := 0
	open := -1

	for i := cursor - 1; i >= 0 && open < 0; i-- {
		switch input[i] {
		case ')':
			depth++

		case '(':
			if depth == 0 {
				open = i
			} else {
				depth--
			}
		}
	}

	if open < 0 {
		return call{}
	}

	// Split the text between '(' and the cursor into top-level words.
	var (
		words  int
		inWord bool
		head   strings.Builder
	)

	depth = 0

	for i := open + 1; i < cursor; {
		r, size := utf8.DecodeRuneInString(input[i:])
		i += size

		switch {
		case r == '(':
			if depth == 0 && !inWord {
				words++
			}

			depth++
			inWord = false

		case r == ')':
			// A closed argument reads as one word.
			depth--
			inWord = depth == 0

		case isWordBoundary(r):
			inWord = false

		case depth == 0:
			if !inWord {
				words++
				inWord = true
			}

			if words == 1 {
				head.WriteRune(r)
			}
		}
	}

	// The cursor directly after a word is still in that word.
	arg := words - 1
	if !inWord && depth == 0 {
		arg = words
	}

	return call{
		head:     head.String(),
		argIndex: max(arg-1, 0),
		inCall:   words > 1 || (words == 1 && !inWord),
	}
}

// signature returns the parameter names of the built-in or user function
// named head.
func signature(in *lang.Interpreter, head string) (params []string, ok bool) {
	name := lang.Ident(head)

	if params, ok := builtinParams[name]; ok {
		return params, true
	}

	for fn, f := range in.Functions() {
		if fn == name {
			params = make([]string, len(f.Params))
			for i, p := range f.Params {
				params[i] = string(p)
			}

			return params, true
		}
	}

	return nil, false
}

// renderSignatureHint renders "(head p1 p2)" with the parameter at argIndex
// highlighted. A variadic parameter stays highlighted for every later
// argument.
func renderSignatureHint(head string, params []string, argIndex int) string {
	var b strings.Builder

	b.WriteString(signatureStyle.Render("("))
	b.WriteString(signatureNameStyle.Render(head))

	for i, p := range params {
		b.WriteString(signatureStyle.Render(" "))

		variadic := strings.HasPrefix(p, "...")
		if argIndex == i || (variadic && argIndex > i) {
			b.WriteString(currentParamStyle.Render(p))
		} else {
			b.WriteString(signatureStyle.Render(p))
		}
	}

	b.WriteString(signatureStyle.Render(")"))

	return b.String()
}
