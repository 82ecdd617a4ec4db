package internal

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewTable(t *testing.T) {
	var buf bytes.Buffer
	tab := NewTable(&buf)
	SetTableHeader(tab, []string{"id", "title"}, false)
	tab.Append([]string{"CS101", "Intro to CS"})
	tab.Render()
	out := buf.String()
	for _, s := range []string{"id", "title", "CS101", "Intro to CS"} {
		if !strings.Contains(out, s) {
			t.Errorf("missing %q in table:\n%s", s, out)
		}
	}
}

func TestError(t *testing.T) {
	var err error = &Error{Msg: "course not found", Code: 1}
	if err.Error() != "course not found" {
		t.Errorf("wrong message %q", err.Error())
	}
}
