package prompt

import (
	"errors"
	"os"

	"golang.org/x/term"
)

// ErrNotInteractive is returned by prompts when stdin or stdout is not a terminal
var ErrNotInteractive = errors.New("not running in an interactive terminal")

// ErrCancelled is returned when the user leaves a prompt without choosing
var ErrCancelled = errors.New("cancelled by user")

var isInteractive = isTerminal(os.Stdin) && isTerminal(os.Stdout)

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// IsInteractive reports whether prompts can be shown
func IsInteractive() bool {
	return isInteractive
}

// terminalHeight is the number of rows of the terminal, or fallback when unknown
func terminalHeight(fallback int) int {
	_, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || height <= 0 {
		return fallback
	}
	return height
}
