package repl

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/wbd/lang"
)

// ctrlCommands are the control-mode commands.
var ctrlCommands = []string{"help", "list", "edit", "clear", "quit"}

// keywords complete in eval mode alongside names.
var keywords = []string{"is", "fn", "nil"}

// isWordBoundary reports whether r separates completion words: whitespace
// and parentheses.
func isWordBoundary(r rune) bool {
	return r == '(' || r == ')' || unicode.IsSpace(r)
}

// wordBounds returns the word containing the cursor and its byte offsets in
// input. The word is empty when the cursor sits between two boundaries.
func wordBounds(input string, cursor int) (word string, start, end int) {
	cursor = min(max(cursor, 0), len(input))

	start = cursor
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if isWordBoundary(r) {
			break
		}

		start -= size
	}

	end = cursor
	for end < len(input) {
		r, size := utf8.DecodeRuneInString(input[end:])
		if isWordBoundary(r) {
			break
		}

		end += size
	}

	return input[start:end], start, end
}

// candidates returns the completion candidates of the session: built-in
// operators, keywords, user functions, and top-level bindings. Each name
// appears once.
func candidates(in *lang.Interpreter) []string {
	names := slices.Concat(lang.Builtins(), keywords)

	for name := range in.Functions() {
		names = append(names, string(name))
	}

	for name := range in.Bindings() {
		names = append(names, string(name))
	}

	slices.Sort(names)

	return slices.Compact(names)
}

// isFunction reports whether name is callable in the head of a call.
func isFunction(in *lang.Interpreter, name string) bool {
	if lang.IsBuiltin(lang.Ident(name)) {
		return true
	}

	for fn := range in.Functions() {
		if string(fn) == name {
			return true
		}
	}

	return false
}

// computeMatches ranks the candidates against the word at the cursor. An
// empty word yields no matches so the hint line stays visible.
func (m model) computeMatches() (
	matches fuzzy.Matches,
	wordStart, wordEnd int,
) {
	word, wordStart, wordEnd := wordBounds(m.input.Value(), m.input.Position())
	if word == "" {
		return nil, wordStart, wordEnd
	}

	list := ctrlCommands
	if m.mode == modeEval {
		list = candidates(m.sess.interp)
	}

	return fuzzy.Find(word, list), wordStart, wordEnd
}

// renderCandidateBar renders matches on a single line no wider than width,
// ending in an ellipsis when some do not fit.
func renderCandidateBar(
	in *lang.Interpreter,
	matches fuzzy.Matches,
	selected int,
	width int,
) string {
	if len(matches) == 0 || width <= 0 {
		return ""
	}

	const sep = "  "

	ellipsis := hintStyle.Render("...")
	reserve := lipgloss.Width(sep) + lipgloss.Width(ellipsis)

	var b strings.Builder

	used := 0

	for i, match := range matches {
		rendered := renderCandidate(in, match, i == selected)

		w := lipgloss.Width(rendered)
		if i > 0 {
			w += lipgloss.Width(sep)
		}

		last := i == len(matches)-1
		if i > 0 && (used+w > width || (!last && used+w+reserve > width)) {
			b.WriteString(sep)
			b.WriteString(ellipsis)

			break
		}

		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(rendered)

		used += w
	}

	return b.String()
}

// renderCandidate renders one candidate with its matched characters
// emphasized. Callable names are suffixed with "()" for display only.
func renderCandidate(in *lang.Interpreter, match fuzzy.Match, selected bool) string {
	base, highlight := suggestionStyle, suggestionStyle.Bold(true)
	if selected {
		base, highlight = selectedStyle, selectedStyle.Bold(true)
	}

	matched := make(map[int]bool, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matched[idx] = true
	}

	var b strings.Builder

	for i, r := range match.Str {
		if matched[i] {
			b.WriteString(highlight.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}

	if in != nil && isFunction(in, match.Str) {
		b.WriteString(base.Render("()"))
	}

	return b.String()
}
