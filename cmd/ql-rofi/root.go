package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/lvim-tech/ql-rofi/pkg/commands"
	"github.com/lvim-tech/ql-rofi/pkg/config"
	"github.com/lvim-tech/ql-rofi/pkg/launcher"
	"github.com/lvim-tech/ql-rofi/pkg/rofi"
	"github.com/lvim-tech/ql-rofi/pkg/utils"
)

type rootOptions struct {
	configPath string
	logLevel   string
}

func newRootCmd(scripts []commands.Command) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "ql-rofi",
		Short: "Rofi script-mode helpers",
		Long: `ql-rofi implements rofi script modes.

Use a script as a rofi modi:

  rofi -modi "files:ql-rofi browser" -show files

or let ql-rofi build that command line:

  ql-rofi show browser`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/ql-rofi/config.toml)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		newInitCmd(),
		newVersionCmd(),
		newListCmd(scripts),
		newShowCmd(opts, scripts),
	)
	for _, script := range scripts {
		root.AddCommand(newScriptCmd(opts, script))
	}

	return root
}

// setup loads config and builds the stderr logger; stdout belongs to rofi
func setup(opts *rootOptions) (*config.Config, *log.Logger, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, nil, err
	}

	logger, err := newLogger(os.Stderr, cfg.LogLevel, opts.logLevel)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func newLogger(w io.Writer, levels ...string) (*log.Logger, error) {
	level := log.WarnLevel
	for _, name := range levels {
		if name == "" {
			continue
		}
		parsed, err := log.ParseLevel(name)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", name, err)
		}
		level = parsed
	}

	return log.NewWithOptions(w, log.Options{
		Prefix:          "ql-rofi",
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	}), nil
}

func newScriptCmd(opts *rootOptions, script commands.Command) *cobra.Command {
	return &cobra.Command{
		Use:   script.Name + " [input...]",
		Short: script.Description,
		// rofi passes the selected entry verbatim; it may look like a flag.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(opts, script, args, cmd.OutOrStdout())
		},
	}
}

func runScript(opts *rootOptions, script commands.Command, args []string, out io.Writer) error {
	cfg, logger, err := setup(opts)
	if err != nil {
		return err
	}
	logger = logger.With("script", script.Name)

	ctx, err := rofi.ReadContext(os.LookupEnv, args)
	if err != nil {
		var retvErr *rofi.UnknownRetvError
		if !errors.As(err, &retvErr) {
			return err
		}
		logger.Warn("ignoring unknown rofi state", "value", retvErr.Value)
	}

	output, err := commands.Execute(script, &commands.Invocation{
		Rofi:     ctx,
		Config:   cfg,
		Log:      logger,
		Notifier: utils.NewDesktopNotifier(cfg.Notifications),
	})
	if err != nil {
		return err
	}

	_, err = io.WriteString(out, output)
	return err
}

func newShowCmd(opts *rootOptions, scripts []commands.Command) *cobra.Command {
	valid := make([]string, 0, len(scripts))
	for _, s := range scripts {
		valid = append(valid, s.Name)
	}

	return &cobra.Command{
		Use:       "show <script>",
		Short:     "Open a script in rofi",
		Args:      cobra.ExactArgs(1),
		ValidArgs: valid,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if _, ok := commands.Find(name); !ok {
				return fmt.Errorf("unknown script: %s", name)
			}

			cfg, logger, err := setup(opts)
			if err != nil {
				return err
			}

			self, err := os.Executable()
			if err != nil {
				return fmt.Errorf("failed to locate ql-rofi: %w", err)
			}

			r := launcher.NewRofi(cfg.Launcher)
			logger.Debug("starting launcher", "launcher", r.Name(), "script", name)

			err = r.Show(cmd.Context(), name, []string{self, name})
			if launcher.IsCancelled(err) {
				return nil
			}
			return err
		},
	}
}

func newListCmd(scripts []commands.Command) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available scripts",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, s := range scripts {
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", s.Name, s.Description)
			}
		},
	}
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the default config to ~/.config/ql-rofi/config.toml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.InitUserConfig()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config initialized at: %s\n", path)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ql-rofi version %s\n", version)
		},
	}
}
