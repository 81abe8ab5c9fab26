// Package utils provides common helpers for ql-rofi scripts: command lookup,
// path expansion and desktop notifications.
package utils

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// CommandExists checks if a command exists in PATH
func CommandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}

// ExpandHome expands a leading ~ only; "$" is left alone
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home := os.Getenv("HOME")
		path = filepath.Join(home, path[1:])
	}
	return path
}

// ExpandPath expands a leading ~ and environment variables
func ExpandPath(path string) string {
	return os.ExpandEnv(ExpandHome(path))
}

// IsDirectory checks if path is an existing directory
func IsDirectory(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsHidden reports whether a file name is a dot file
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
