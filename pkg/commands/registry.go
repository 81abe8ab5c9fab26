// Package commands provides the registry of rofi script-mode commands.
// Scripts register themselves on initialization and are exposed as
// subcommands of ql-rofi, each one usable as a rofi modi.
package commands

import (
	"errors"
	"fmt"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/lvim-tech/ql-rofi/pkg/config"
	"github.com/lvim-tech/ql-rofi/pkg/rofi"
	"github.com/lvim-tech/ql-rofi/pkg/utils"
)

// ErrDone ends the rofi session: the script prints nothing and exits 0
var ErrDone = errors.New("done")

// Invocation is everything a script gets for one run
type Invocation struct {
	Rofi     *rofi.Context
	Config   *config.Config
	Log      *log.Logger
	Notifier utils.Notifier
}

// Command describes one script
type Command struct {
	Name        string
	Description string
	Run         func(*Invocation) (rofi.Message, error)
}

var registry = make(map[string]Command)

// Register adds a command; registering a name twice panics
func Register(cmd Command) {
	if _, exists := registry[cmd.Name]; exists {
		panic(fmt.Sprintf("command %q registered twice", cmd.Name))
	}
	registry[cmd.Name] = cmd
}

// Find returns the command with the given name
func Find(name string) (Command, bool) {
	cmd, ok := registry[name]
	return cmd, ok
}

// List returns all registered commands sorted by name
func List() []Command {
	commands := make([]Command, 0, len(registry))
	for _, cmd := range registry {
		commands = append(commands, cmd)
	}
	sort.Slice(commands, func(i, j int) bool {
		return commands[i].Name < commands[j].Name
	})
	return commands
}

// Execute runs a command and returns the text to print. ErrDone yields an
// empty string and no error.
func Execute(cmd Command, inv *Invocation) (string, error) {
	if !inv.Config.IsScriptEnabled(cmd.Name) {
		return "", fmt.Errorf("script %s is disabled in config", cmd.Name)
	}

	retv := "none"
	if inv.Rofi.Retv != nil {
		retv = inv.Rofi.Retv.String()
	}
	inv.Log.Debug("running script", "script", cmd.Name, "retv", retv, "input", inv.Rofi.Input)

	msg, err := cmd.Run(inv)
	if errors.Is(err, ErrDone) {
		inv.Log.Debug("script finished the session", "script", cmd.Name)
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", cmd.Name, err)
	}

	inv.Log.Debug("script produced rows", "script", cmd.Name, "rows", len(msg.Rows))
	return msg.String(), nil
}
