package repl

import (
	"errors"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/wbd/lang"
	"github.com/ardnew/wbd/log"
)

func testLogger() log.Logger { return log.Make(io.Discard) }

func TestSessionLoad(t *testing.T) {
	src := strings.Join([]string{
		"# constants",
		"x is 3",
		"",
		"double is fn (n) (+ n n)",
		"(double x)",
		"y is (double x)",
	}, "\n")

	sess := newSession(lang.NewCache(), testLogger())
	if err := sess.load(t.Context(), strings.NewReader(src)); err != nil {
		t.Fatalf("load: %v", err)
	}

	const wantSource = "x is 3\ndouble is fn (n) (+ n n)\ny is (double x)\n"
	if got := sess.source(); got != wantSource {
		t.Errorf("source() = %q, want %q", got, wantSource)
	}

	const wantList = "  double is fn (n) (+ n n)\n  x = 3\n  y = 6\n"
	if got := sess.list(); got != wantList {
		t.Errorf("list() = %q, want %q", got, wantList)
	}
}

func TestSessionLoadError(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr error
	}{
		{"syntax", "x is 1\n(+ 1", lang.ErrUnexpectedEOF},
		{"runtime", "x is 0\n\ny is (/ 1 x)", lang.ErrDivideByZero},
		{"lex", "x is $", lang.ErrUnexpectedChar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := newSession(lang.NewCache(), testLogger())

			err := sess.load(t.Context(), strings.NewReader(tt.src))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("load() error = %v, want %v", err, tt.wantErr)
			}

			if !errors.Is(err, lang.ErrSnippet) {
				t.Errorf("load() error = %v, want %v", err, lang.ErrSnippet)
			}
		})
	}
}

func TestEvalLine(t *testing.T) {
	m := newModel(t.Context(), newTestSession(t), NewHistory(""), testLogger())

	tests := []struct {
		input   string
		want    string
		wantErr error
	}{
		{"(+ 1 2)", "3", nil},
		{"x is 3", "", nil},
		{"x", "3", nil},
		{"square is fn (a) (* a a)", "", nil},
		{"(square x)", "9", nil},
		{"(square)", "nil", nil},
		{"(if 0 1 (- 5 7))", "-2", nil},
		{"(/ x 0)", "", lang.ErrDivideByZero},
		{"(+ 1", "", lang.ErrUnexpectedEOF},
		{"y", "nil", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := m.evalLine(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("evalLine(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}

			if got != tt.want {
				t.Errorf("evalLine(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func typeLine(m model, line string) model {
	m.input.SetValue(line)
	m.input.SetCursor(len(line))

	return m
}

func TestExecuteInput(t *testing.T) {
	m := newModel(t.Context(), newTestSession(t), NewHistory(""), testLogger())

	m, _ = typeLine(m, "x is 4").executeInput()
	m, cmd := typeLine(m, "(* x x)").executeInput()

	if cmd == nil {
		t.Fatal("executeInput() returned no command")
	}

	if m.input.Value() != "" {
		t.Errorf("input = %q after submit, want empty", m.input.Value())
	}

	if got, _ := m.evalLine("x"); got != "4" {
		t.Errorf("x = %q, want 4", got)
	}

	want := []HistoryEntry{{"x is 4", modeEval}, {"(* x x)", modeEval}}
	if got := m.history.Entries(); len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("history = %v, want %v", got, want)
	}
}

func TestExecuteCommand(t *testing.T) {
	m := newModel(t.Context(), newTestSession(t), NewHistory(""), testLogger())

	m = m.switchToMode(modeCtrl)
	m, cmd := typeLine(m, "quit").executeInput()

	if !m.quitting || cmd == nil {
		t.Errorf("quit: quitting = %v, cmd = %v", m.quitting, cmd)
	}

	if got, _ := m.history.Entry(0); got != (HistoryEntry{"quit", modeCtrl}) {
		t.Errorf("history[0] = %v, want ctrl quit", got)
	}
}

func TestExecuteCommand_Help(t *testing.T) {
	// tea.Println appends its own newline
	if strings.HasSuffix(helpMessage, "\n") {
		t.Error("helpMessage ends with a newline")
	}

	m := newModel(t.Context(), newTestSession(t), NewHistory(""), testLogger())

	for _, name := range []string{"help", "h"} {
		got, cmd := m.executeCommand(name)
		if cmd == nil {
			t.Errorf("%s: no command returned", name)
		}

		if got.quitting {
			t.Errorf("%s: model is quitting", name)
		}
	}
}

func TestHistoryStep(t *testing.T) {
	h := NewHistory("")
	for _, e := range []HistoryEntry{
		{"(+ 1 2)", modeEval},
		{"list", modeCtrl},
		{"x is 3", modeEval},
	} {
		if err := h.Add(e.Line, e.Mode); err != nil {
			t.Fatal(err)
		}
	}

	m := newModel(t.Context(), newTestSession(t), h, testLogger())

	steps := []struct {
		name     string
		dir      int
		inMode   bool
		wantLine string
		wantMode inputMode
	}{
		{"up", -1, false, "x is 3", modeEval},
		{"up_switches_mode", -1, false, "list", modeCtrl},
		{"up_in_mode_none_older", -1, true, "list", modeCtrl},
		{"down_in_mode_clears", 1, true, "", modeCtrl},
		{"up_again", -1, false, "x is 3", modeEval},
		{"up_in_mode_skips_ctrl", -1, true, "(+ 1 2)", modeEval},
		{"up_at_oldest", -1, false, "(+ 1 2)", modeEval},
		{"down", 1, false, "list", modeCtrl},
	}

	for _, s := range steps {
		m = m.historyStep(s.dir, s.inMode)

		if m.input.Value() != s.wantLine || m.mode != s.wantMode {
			t.Fatalf("%s: input = %q mode = %d, want %q mode = %d",
				s.name, m.input.Value(), m.mode, s.wantLine, s.wantMode)
		}
	}
}

func TestCycle(t *testing.T) {
	sess := newTestSession(t, "double is fn (n) (+ n n)", "dozen is 12")
	m := newModel(t.Context(), sess, NewHistory(""), testLogger())

	m = typeLine(m, "(+ do")
	refreshMatches(&m, false)

	if len(m.matches) != 2 {
		t.Fatalf("matches = %v, want 2", m.matches)
	}

	first := m.matches[0].Str
	second := m.matches[1].Str

	m = m.cycle(1)
	if got := m.input.Value(); got != "(+ "+first {
		t.Errorf("after Tab input = %q, want %q", got, "(+ "+first)
	}

	m = m.cycle(1)
	if got := m.input.Value(); got != "(+ "+second {
		t.Errorf("after Tab Tab input = %q, want %q", got, "(+ "+second)
	}

	m = m.cycle(1)
	if got := m.input.Value(); got != "(+ "+first {
		t.Errorf("cycling did not wrap: input = %q", got)
	}

	next, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyEsc})
	if got := next.input.Value(); got != "(+ do" {
		t.Errorf("Esc did not restore input: %q", got)
	}

	if next.mode != modeEval {
		t.Errorf("Esc while cycling changed mode to %d", next.mode)
	}
}

func TestHintLine(t *testing.T) {
	sess := newTestSession(t, "add is fn (a b) (+ a b)")
	m := newModel(t.Context(), sess, NewHistory(""), testLogger())

	if got := plain(m.hintLine()); !strings.Contains(got, "expression") {
		t.Errorf("empty input hint = %q", got)
	}

	m = typeLine(m, "(add 1 ")
	if got := plain(m.hintLine()); got != "(add a b)" {
		t.Errorf("signature hint = %q, want %q", got, "(add a b)")
	}
}
