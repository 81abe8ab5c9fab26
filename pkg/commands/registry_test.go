package commands

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/lvim-tech/ql-rofi/pkg/config"
	"github.com/lvim-tech/ql-rofi/pkg/rofi"
)

func newInvocation(cfg *config.Config, input string) *Invocation {
	return &Invocation{
		Rofi:   &rofi.Context{Input: input},
		Config: cfg,
		Log:    log.New(io.Discard),
	}
}

func TestRegistry(t *testing.T) {
	Register(Command{Name: "zz-test-b", Description: "b"})
	Register(Command{Name: "zz-test-a", Description: "a"})

	if _, ok := Find("zz-test-a"); !ok {
		t.Fatal("Find() did not return registered command")
	}
	if _, ok := Find("zz-missing"); ok {
		t.Error("Find() returned unregistered command")
	}

	var names []string
	for _, cmd := range List() {
		names = append(names, cmd.Name)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("List() not sorted: %v", names)
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("registering a duplicate name should panic")
		}
	}()
	Register(Command{Name: "zz-test-a"})
}

func TestExecute(t *testing.T) {
	t.Parallel()

	echo := Command{
		Name: "echo",
		Run: func(inv *Invocation) (rofi.Message, error) {
			return rofi.Message{Rows: []rofi.RowOption{rofi.NewRow(inv.Rofi.Input)}}, nil
		},
	}
	done := Command{
		Name: "done",
		Run: func(*Invocation) (rofi.Message, error) {
			return rofi.Message{}, ErrDone
		},
	}
	boom := errors.New("boom")
	failing := Command{
		Name: "failing",
		Run: func(*Invocation) (rofi.Message, error) {
			return rofi.Message{}, boom
		},
	}

	cfg := &config.Config{Scripts: config.ScriptsConfig{"off": {"enabled": false}}}

	out, err := Execute(echo, newInvocation(cfg, "hello"))
	if err != nil || out != "hello\n" {
		t.Errorf("Execute(echo) = %q, %v", out, err)
	}

	out, err = Execute(done, newInvocation(cfg, ""))
	if err != nil || out != "" {
		t.Errorf("Execute(done) = %q, %v, want empty output and nil error", out, err)
	}

	if _, err := Execute(failing, newInvocation(cfg, "")); !errors.Is(err, boom) {
		t.Errorf("Execute(failing) error = %v, want wrapped boom", err)
	}

	off := Command{Name: "off", Run: echo.Run}
	if _, err := Execute(off, newInvocation(cfg, "x")); err == nil {
		t.Error("Execute() of disabled script should fail")
	}
}
