package internal

import (
	"io"

	table "github.com/olekukonko/tablewriter"
)

// Error is an error that carries an exit code.
type Error struct {
	Msg  string
	Code int
}

func (e *Error) Error() string {
	return e.Msg
}

// NewTable creates a table with some default parameters
func NewTable(r io.Writer) *table.Table {
	t := table.NewWriter(r)
	t.SetBorder(false)
	t.SetColumnSeparator("")
	t.SetAlignment(table.ALIGN_LEFT)
	t.SetAutoFormatHeaders(false)
	t.SetHeaderLine(false)
	t.SetHeaderAlignment(table.ALIGN_LEFT)
	t.SetAutoWrapText(false)
	return t
}

// SetTableHeader sets the table header and automatically manages header color.
func SetTableHeader(t *table.Table, header []string, color bool) {
	t.SetHeader(header)
	if color {
		headercolors := make([]table.Colors, len(header))
		for i := range header {
			headercolors[i] = table.Colors{table.FgCyanColor}
		}
		t.SetHeaderColor(headercolors...)
	}
}
