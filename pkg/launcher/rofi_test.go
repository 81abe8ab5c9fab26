package launcher

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/lvim-tech/ql-rofi/pkg/config"
)

func TestRofi_ScriptArgs(t *testing.T) {
	t.Parallel()

	r := NewRofi(config.LauncherCommand{Args: []string{"-theme", "nord"}})
	got := strings.Join(r.ScriptArgs("browser", []string{"/usr/bin/ql-rofi", "browser"}), "|")
	want := "-theme|nord|-modi|browser:/usr/bin/ql-rofi browser|-show|browser"
	if got != want {
		t.Errorf("ScriptArgs() = %q, want %q", got, want)
	}
	if r.Name() != "rofi" {
		t.Errorf("Name() = %q, want %q", r.Name(), "rofi")
	}
}

func TestRofi_ScriptArgsDoesNotAlias(t *testing.T) {
	t.Parallel()

	base := make([]string, 1, 4)
	base[0] = "-i"
	r := NewRofi(config.LauncherCommand{Args: base})

	a := r.ScriptArgs("a", []string{"x"})
	b := r.ScriptArgs("b", []string{"y"})
	if a[2] == b[2] {
		t.Errorf("ScriptArgs results share storage: %v / %v", a, b)
	}
}

func TestQuoteCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		words []string
		want  string
	}{
		{[]string{"ql-rofi", "simple"}, "ql-rofi simple"},
		{[]string{"/opt/my tools/ql-rofi", "browser"}, "'/opt/my tools/ql-rofi' browser"},
		{[]string{"it's"}, `'it'\''s'`},
		{[]string{""}, "''"},
	}

	for _, tt := range tests {
		if got := quoteCommand(tt.words); got != tt.want {
			t.Errorf("quoteCommand(%q) = %q, want %q", tt.words, got, tt.want)
		}
	}
}

func TestRofi_ShowMissingBinary(t *testing.T) {
	t.Parallel()

	r := NewRofi(config.LauncherCommand{Command: "ql-rofi-no-such-launcher"})
	err := r.Show(context.Background(), "simple", []string{"ql-rofi", "simple"})
	if !errors.Is(err, ErrNoLauncher) {
		t.Errorf("Show() error = %v, want ErrNoLauncher", err)
	}
	if IsCancelled(err) {
		t.Error("missing binary must not look like a cancel")
	}
}
