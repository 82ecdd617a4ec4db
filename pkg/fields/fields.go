// Package fields has the small text helpers used to parse
// comma separated catalog rows.
package fields

import "strings"

// ASCII whitespace, the same set as C's isspace in the "C" locale.
const space = " \t\n\v\f\r"

// Trim removes leading and trailing ascii whitespace.
func Trim(s string) string {
	return strings.Trim(s, space)
}

// Split will split a line on the delimiter and trim each field.
// Fields that are empty after trimming are dropped, so "a,,b"
// gives the same result as "a,b".
func Split(line string, delim rune) []string {
	parts := strings.Split(line, string(delim))
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = Trim(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
