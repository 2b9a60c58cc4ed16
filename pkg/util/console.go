package util

import (
	"os"

	"golang.org/x/crypto/ssh/terminal"
)

func IntMin(a, b int) int {
	if a > b {
		return b
	}
	return a
}

// GetConsoleWidth is the width of the terminal on stdout, or 80 when stdout
// isn't one.
func GetConsoleWidth() int {
	width, _, err := terminal.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80
	}

	return width
}
