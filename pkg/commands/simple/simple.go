// Package simple provides a minimal rofi script: it lists fixed entries and
// ends the session when the quit entry is selected.
package simple

import (
	"fmt"

	"github.com/lvim-tech/ql-rofi/pkg/commands"
	"github.com/lvim-tech/ql-rofi/pkg/rofi"
)

func init() {
	commands.Register(commands.Command{
		Name:        "simple",
		Description: "Reload/quit demo menu",
		Run:         Run,
	})
}

// Run returns the configured entries, or ErrDone once the quit entry is
// selected
func Run(inv *commands.Invocation) (rofi.Message, error) {
	cfg := DefaultConfig()
	if err := inv.Config.DecodeScript("simple", &cfg); err != nil {
		return rofi.Message{}, fmt.Errorf("failed to read config: %w", err)
	}

	if !cfg.Enabled {
		return rofi.Message{}, fmt.Errorf("simple script is disabled in config")
	}

	if cfg.QuitEntry != "" && inv.Rofi.Input == cfg.QuitEntry {
		return rofi.Message{}, commands.ErrDone
	}

	rows := make([]rofi.RowOption, 0, len(cfg.Entries))
	for _, entry := range cfg.Entries {
		rows = append(rows, rofi.NewRow(entry))
	}

	var opt rofi.ModeOption
	if cfg.Prompt != "" {
		opt = opt.WithPrompt(cfg.Prompt)
	}

	return rofi.Message{Opt: opt, Rows: rows}, nil
}
