// Command cstr runs the cstr primitives from the command line.
//
// Usage:
//
//	cstr len "hello"
//	cstr cmp abc abd
//	cstr find hello l --last
//	cstr search "hello world" wor
//	cstr tok "a,b,,c" --delims ,
//	cstr --escape move 'abcdef' 2 0 4
package main

import (
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errorColor.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

var (
	valueColor = color.New(color.FgCyan, color.Bold)
	labelColor = color.New(color.FgYellow)
	errorColor = color.New(color.FgRed, color.Bold)
)

// applyColorMode sets the global color switch from an auto|on|off mode.
// "auto" keeps the terminal detection done by the color package.
func applyColorMode(mode string) {
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	}
}
