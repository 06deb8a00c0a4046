package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the CLI.
var (
	// Titles: bold cyan so the cleaned title stands out
	colorTitle = color.New(color.FgCyan, color.Bold)

	// Field names: green
	colorField = color.New(color.FgGreen)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// stdinIsTerminal reports whether stdin is attached to a terminal rather
// than a pipe.
func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

func formatTitle(s string) string {
	return colorTitle.Sprint(s)
}

func formatField(s string) string {
	return colorField.Sprint(s)
}

func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
