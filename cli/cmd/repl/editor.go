package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/ardnew/wbd/log"
)

const defaultEditor = "vi"

// editCommand implements [tea.ExecCommand] for the edit-reload-retry loop.
// It writes the session's definitions to a temp file, opens the user's
// editor, and loads the result into a fresh session. On error the user is
// prompted to re-edit; declining exits the program.
type editCommand struct {
	sess    *session
	ctxFunc func() context.Context
	result  *session
	logger  log.Logger
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

func (c *editCommand) SetStdin(r io.Reader)  { c.stdin = r }
func (c *editCommand) SetStdout(w io.Writer) { c.stdout = w }
func (c *editCommand) SetStderr(w io.Writer) { c.stderr = w }

// Run returns [ErrEditDeclined] if the user declines to re-edit. An empty
// file cancels the edit and leaves result nil.
func (c *editCommand) Run() error {
	ctx := c.ctxFunc()
	content := c.sess.source()

	f, err := os.CreateTemp("", "wbd-repl-*.wbd")
	if err != nil {
		return err
	}

	path := f.Name()

	defer os.Remove(path)

	if err := f.Close(); err != nil {
		return err
	}

	for {
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			return err
		}

		if err := runEditor(ctx, c.stdin, c.stdout, c.stderr, path); err != nil {
			return err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		if strings.TrimSpace(string(data)) == "" {
			return nil
		}

		sess := newSession(c.sess.cache, c.logger)
		loadErr := sess.load(ctx, strings.NewReader(string(data)))

		c.logger.TraceContext(ctx, "editor load attempt",
			slog.Int("content_length", len(data)),
			slog.Bool("success", loadErr == nil))

		if loadErr == nil {
			c.result = sess

			return nil
		}

		if !c.confirm(loadErr) {
			return ErrEditDeclined
		}

		content = string(data)
	}
}

// confirm reports err and asks whether to edit again. Anything but an
// explicit "n" or "no" is a yes.
func (c *editCommand) confirm(err error) bool {
	fmt.Fprintf(c.stderr, "\n%s\n", formatError(err))
	fmt.Fprint(c.stdout, "Re-edit? [Y/n] ")

	scanner := bufio.NewScanner(c.stdin)
	if !scanner.Scan() {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
	case "n", "no":
		return false

	default:
		return true
	}
}

// runEditor runs $EDITOR, or vi, on path and waits for it to exit.
func runEditor(
	ctx context.Context,
	stdin io.Reader,
	stdout io.Writer,
	stderr io.Writer,
	path string,
) error {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = defaultEditor
	}

	args := strings.Fields(editor)
	if len(args) == 0 {
		return ErrNoEditor
	}

	cmd := exec.CommandContext(ctx, args[0], append(args[1:], path)...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	return cmd.Run()
}
