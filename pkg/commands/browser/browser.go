// Package browser provides a file browser rofi script.
// Every run lists one directory; selecting a directory row descends into it
// and selecting anything else sends a notification with its path and closes
// rofi.
package browser

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lvim-tech/ql-rofi/pkg/commands"
	"github.com/lvim-tech/ql-rofi/pkg/rofi"
	"github.com/lvim-tech/ql-rofi/pkg/utils"
)

func init() {
	commands.Register(commands.Command{
		Name:        "browser",
		Description: "Browse files and directories",
		Run:         Run,
	})
}

// Run lists the directory for this rofi cycle
func Run(inv *commands.Invocation) (rofi.Message, error) {
	cfg := DefaultConfig()
	if err := inv.Config.DecodeScript("browser", &cfg); err != nil {
		return rofi.Message{}, fmt.Errorf("failed to read config: %w", err)
	}

	if !cfg.Enabled {
		return rofi.Message{}, fmt.Errorf("browser script is disabled in config")
	}

	dir, err := resolveDir(inv.Rofi, &cfg)
	if err != nil {
		return rofi.Message{}, err
	}

	if !utils.IsDirectory(dir) {
		inv.Log.Info("selected entry is not a directory", "path", dir)
		if inv.Notifier != nil {
			if err := inv.Notifier.Notify("ql-rofi", dir); err != nil {
				inv.Log.Warn("failed to send notification", "err", err)
			}
		}
		return rofi.Message{}, commands.ErrDone
	}

	rows, err := listDir(dir, &cfg)
	if err != nil {
		return rofi.Message{}, err
	}

	var opt rofi.ModeOption
	if cfg.Prompt != "" {
		opt = opt.WithPrompt(cfg.Prompt)
	}

	return rofi.Message{Opt: opt, Rows: rows}, nil
}

// resolveDir picks the directory for this run. The first call, and calls
// from rofi versions without ROFI_RETV that carry no input, start in the
// configured directory; every other call browses the selected path.
// Environment variables are expanded in start_dir only, selected paths are
// real file names and may contain "$".
func resolveDir(ctx *rofi.Context, cfg *Config) (string, error) {
	path := utils.ExpandHome(ctx.Input)
	if ctx.HasState(rofi.InitialCall) || (ctx.Retv == nil && ctx.Input == "") {
		path = utils.ExpandPath(cfg.StartDir)
	}

	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get the current directory: %w", err)
		}
		return wd, nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	return abs, nil
}

// listDir returns the parent row followed by one row per entry
func listDir(dir string, cfg *Config) ([]rofi.RowOption, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	rows := make([]rofi.RowOption, 0, len(entries)+1)

	if parent := filepath.Dir(dir); cfg.ShowParent && parent != dir {
		rows = append(rows, rofi.NewRow(parent))
	}

	for _, entry := range entries {
		if !cfg.ShowHidden && utils.IsHidden(entry.Name()) {
			continue
		}

		row := rofi.NewRow(filepath.Join(dir, entry.Name()))
		switch {
		case entry.IsDir():
			row = row.WithIcon(cfg.FolderIcon)
		case entry.Type().IsRegular():
			row = row.WithIcon(cfg.FileIcon)
		}
		rows = append(rows, row)
	}

	return rows, nil
}
