// Package terminal holds small helpers for cleaning up interactive prompts.
package terminal

import (
	"os"

	"atomicgo.dev/cursor"
	"golang.org/x/term"
)

// ClearPreviousLines erases the previously printed text of textLength
// characters, taking line wrapping at the current terminal width into
// account. Used to scrub entered connection strings from the screen so
// credentials do not linger in the scrollback.
func ClearPreviousLines(textLength int) {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	lines := (textLength + width - 1) / width
	if lines < 1 {
		lines = 1
	}

	// After Enter the cursor sits on a fresh line below the input.
	cursor.ClearLine()
	cursor.ClearLinesUp(lines)
	cursor.StartOfLine()
}
