package term

import (
	"fmt"
	"io"
	"os"
	"runtime"
)

var (
	// Enabled turns color output on or off for
	// every function in this package.
	Enabled = true

	escape string
)

const (
	FgRed = iota + 31
	FgGreen
	FgYellow
	FgBlue
	FgMagenta
	FgCyan
)

const (
	Reset = iota
	Bold
	Faint
)

func init() {
	switch runtime.GOOS {
	case "windows":
		escape = ""
	default:
		escape = "\x1b"
	}
}

// Blue returns s but colored blue
func Blue(s string) string { return color(FgBlue, s) }

// Cyan returns s but colored cyan
func Cyan(s string) string { return color(FgCyan, s) }

// Green returns s but colored green
func Green(s string) string { return color(FgGreen, s) }

// Red returns s but colored red
func Red(s string) string { return color(FgRed, s) }

// Yellow returns s but colored yellow
func Yellow(s string) string { return color(FgYellow, s) }

// Bolded returns s in bold text.
func Bolded(s string) string { return color(Bold, s) }

func color(code int, s string) string {
	if escape == "" || !Enabled {
		return s
	}
	return fmt.Sprintf("%[1]s[%dm%s%[1]s[0m", escape, code, s)
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
