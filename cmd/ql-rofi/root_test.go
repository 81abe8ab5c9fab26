package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lvim-tech/ql-rofi/pkg/commands"
	"github.com/lvim-tech/ql-rofi/pkg/rofi"
)

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "log_level = \"error\"\n[notifications]\nenabled = false\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd(commands.List())
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestScriptCommand(t *testing.T) {
	t.Setenv("QL_ROFI_CONFIG", writeTestConfig(t))
	t.Setenv(rofi.RetvEnv, "1")

	out, err := execute(t, "simple", "reload")
	if err != nil {
		t.Fatalf("simple reload error = %v", err)
	}
	if out != "reload\nquit\n" {
		t.Errorf("simple reload output = %q", out)
	}

	out, err = execute(t, "simple", "quit")
	if err != nil || out != "" {
		t.Errorf("simple quit = %q, %v, want no output", out, err)
	}
}

func TestScriptCommand_FlagLikeInput(t *testing.T) {
	t.Setenv("QL_ROFI_CONFIG", writeTestConfig(t))
	t.Setenv(rofi.RetvEnv, "2")

	out, err := execute(t, "simple", "--not-a-flag")
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	if out != "reload\nquit\n" {
		t.Errorf("output = %q", out)
	}
}

func TestScriptCommand_UnknownRetv(t *testing.T) {
	t.Setenv("QL_ROFI_CONFIG", writeTestConfig(t))
	t.Setenv(rofi.RetvEnv, "42")

	out, err := execute(t, "simple")
	if err != nil {
		t.Fatalf("unknown ROFI_RETV should degrade, got error %v", err)
	}
	if out != "reload\nquit\n" {
		t.Errorf("output = %q", out)
	}
}

func TestListAndVersion(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	for _, name := range []string{"browser", "simple"} {
		if !strings.Contains(out, name) {
			t.Errorf("list output %q does not mention %s", out, name)
		}
	}

	out, err = execute(t, "version")
	if err != nil || !strings.Contains(out, version) {
		t.Errorf("version = %q, %v", out, err)
	}
}

func TestShow_UnknownScript(t *testing.T) {
	if _, err := execute(t, "show", "nope"); err == nil {
		t.Error("show with unknown script should fail")
	}
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := newLogger(&buf, "warn", "debug")
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	logger.Debug("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Error("later level should override earlier one")
	}

	if _, err := newLogger(&buf, "loud"); err == nil {
		t.Error("newLogger() with invalid level should fail")
	}
}
