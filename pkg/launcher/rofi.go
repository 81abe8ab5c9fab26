// Package launcher starts rofi with a ql-rofi script as its modi, so a
// registered script can be opened without writing the rofi command line by
// hand.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/lvim-tech/ql-rofi/pkg/config"
)

var (
	// ErrCancelled is returned when the user closes rofi with Escape
	ErrCancelled = errors.New("cancelled by user")

	// ErrNoLauncher is returned when the rofi binary cannot be found
	ErrNoLauncher = errors.New("launcher not found")
)

// IsCancelled checks if the error is a user cancel
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}

// Rofi runs rofi in script mode
type Rofi struct {
	command string
	args    []string
}

// NewRofi creates a launcher from config; an empty command means "rofi"
func NewRofi(cfg config.LauncherCommand) *Rofi {
	command := cfg.Command
	if command == "" {
		command = "rofi"
	}
	return &Rofi{command: command, args: cfg.Args}
}

// Name returns the launcher binary
func (r *Rofi) Name() string {
	return r.command
}

// ScriptArgs builds the arguments that show the named script. self is the
// command line rofi runs for every cycle, e.g. "/usr/bin/ql-rofi browser".
func (r *Rofi) ScriptArgs(name string, self []string) []string {
	args := append([]string{}, r.args...)
	return append(args,
		"-modi", name+":"+quoteCommand(self),
		"-show", name,
	)
}

// Show opens rofi on the named script and waits for it to exit
func (r *Rofi) Show(ctx context.Context, name string, self []string) error {
	path, err := exec.LookPath(r.command)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNoLauncher, r.command)
	}

	cmd := exec.CommandContext(ctx, path, r.ScriptArgs(name, self)...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == 1 {
			return ErrCancelled
		}
		return fmt.Errorf("%s exited with error: %w", r.command, err)
	}
	return nil
}

// quoteCommand joins a command line the way rofi splits it back: words with
// spaces or quotes are wrapped in single quotes.
func quoteCommand(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		if w == "" || strings.ContainsAny(w, " \t'\"\\") {
			w = "'" + strings.ReplaceAll(w, "'", `'\''`) + "'"
		}
		quoted[i] = w
	}
	return strings.Join(quoted, " ")
}
