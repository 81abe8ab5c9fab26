package utils

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/lvim-tech/ql-rofi/pkg/config"
)

// Notifier sends desktop notifications
type Notifier interface {
	Notify(title, message string) error
}

// DesktopNotifier sends notifications through dunstify or notify-send
type DesktopNotifier struct {
	cfg config.NotificationConfig
}

// NewDesktopNotifier creates a notifier from config
func NewDesktopNotifier(cfg config.NotificationConfig) *DesktopNotifier {
	return &DesktopNotifier{cfg: cfg}
}

// Notify starts the notification tool in the background. A disabled config
// or a missing tool is not an error.
func (n *DesktopNotifier) Notify(title, message string) error {
	if !n.cfg.Enabled {
		return nil
	}

	tool := n.cfg.Tool
	if tool == "" || tool == "auto" {
		tool = detectNotificationTool()
	}
	if tool == "" {
		return nil
	}

	args, err := notificationArgs(tool, title, message, n.cfg.Timeout, n.cfg.Urgency)
	if err != nil {
		return err
	}

	cmd := exec.Command(tool, args...)
	cmd.Env = os.Environ()
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", tool, err)
	}
	// The script exits right after printing; the tool outlives it.
	if err := cmd.Process.Release(); err != nil {
		return fmt.Errorf("failed to release %s: %w", tool, err)
	}

	return nil
}

// detectNotificationTool detects which notification tool is available
func detectNotificationTool() string {
	if CommandExists("dunstify") {
		return "dunstify"
	}
	if CommandExists("notify-send") {
		return "notify-send"
	}
	return ""
}

// notificationArgs builds the command line for the given tool
func notificationArgs(tool, title, message string, timeout int, urgency string) ([]string, error) {
	if urgency == "" {
		urgency = "normal"
	}
	if timeout <= 0 {
		timeout = 5000
	}

	switch tool {
	case "dunstify", "notify-send":
		return []string{
			"-u", urgency,
			"-t", strconv.Itoa(timeout),
			title,
			message,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported notification tool: %s", tool)
	}
}
