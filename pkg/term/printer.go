package term

import (
	"fmt"
	"strings"
)

// Colorf is fmt.Sprintf but each argument is wrapped in the color
// given by its verb.
//
// Verbs:
//	%r - red
//	%g - green
//	%y - yellow
//	%b - blue
//	%m - magenta
//	%c - cyan
//	%0 - no color
//
// A '!' before the color letter makes it bold (ex. %!r)
// and %% is a literal percent sign.
func Colorf(format string, a ...interface{}) string {
	var (
		b   strings.Builder
		arg int
		end = len(format)
	)
	for i := 0; i < end; i++ {
		if format[i] != '%' || i+1 >= end {
			b.WriteByte(format[i])
			continue
		}
		i++
		if format[i] == '%' {
			b.WriteByte('%')
			continue
		}
		bold := false
		if format[i] == '!' && i+1 < end {
			bold = true
			i++
		}
		var val string
		if arg < len(a) {
			val = fmt.Sprintf("%v", a[arg])
		}
		arg++

		code := foreground(format[i])
		switch {
		case escape == "" || !Enabled || code == Reset:
			b.WriteString(val)
		case bold:
			fmt.Fprintf(&b, "%s[%d;%dm%s%s[0m", escape, code, Bold, val, escape)
		default:
			fmt.Fprintf(&b, "%s[%dm%s%s[0m", escape, code, val, escape)
		}
	}
	return b.String()
}

func foreground(code byte) int {
	switch code {
	case 'r':
		return FgRed
	case 'g':
		return FgGreen
	case 'y':
		return FgYellow
	case 'b':
		return FgBlue
	case 'm':
		return FgMagenta
	case 'c':
		return FgCyan
	}
	return Reset
}
