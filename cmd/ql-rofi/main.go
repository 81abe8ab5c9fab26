package main

import (
	"fmt"
	"os"

	"github.com/lvim-tech/ql-rofi/pkg/commands"
	_ "github.com/lvim-tech/ql-rofi/pkg/commands/browser"
	_ "github.com/lvim-tech/ql-rofi/pkg/commands/simple"
)

const version = "0.1.0"

func main() {
	root := newRootCmd(commands.List())
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
