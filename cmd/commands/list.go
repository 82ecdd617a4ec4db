package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/harrybrwn/planner/catalog"
	"github.com/harrybrwn/planner/cmd/internal"
	"github.com/harrybrwn/planner/cmd/internal/opts"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newListCmd(opts *opts.Global) *cobra.Command {
	var format = "table"
	c := &cobra.Command{
		Use:     "list [file]",
		Short:   "List every course in a catalog file",
		Aliases: []string{"ls"},
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var file string
			if len(args) > 0 {
				file = args[0]
			}
			courses, err := listCourses(file)
			if err != nil {
				return err
			}
			return writeCourses(cmd.OutOrStdout(), format, courses, !opts.NoColor)
		},
	}
	c.Flags().StringVarP(&format, "format", "f", format, "output format (table|csv|yaml|json)")
	return c
}

func writeCourses(w io.Writer, format string, courses []*catalog.Course, color bool) error {
	switch format {
	case "table":
		tab := internal.NewTable(w)
		internal.SetTableHeader(tab, []string{"id", "title", "prerequisites"}, color)
		for _, c := range courses {
			tab.Append([]string{c.ID, c.Title, catalog.FormatPrereqs(c.Prereqs)})
		}
		tab.Render()
		return nil
	case "csv":
		for _, c := range courses {
			if _, err := fmt.Fprintln(w, c.String()); err != nil {
				return err
			}
		}
		return nil
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(courses); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(courses)
	}
	return fmt.Errorf("unknown format %q", format)
}
