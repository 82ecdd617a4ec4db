package commands

import (
	"fmt"

	"github.com/harrybrwn/planner/catalog"
	"github.com/harrybrwn/planner/cmd/internal"
	"github.com/harrybrwn/planner/pkg/term"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info [file] <id>",
		Short: "Show a course's title and prerequisites",
		Long: `Show a course's title and prerequisites.

The course id is matched in upper case so 'cs201' finds CS201.
If only the id is given, the catalog file from the config is used.`,
		Example: "$ planner info courses.csv cs201",
		Aliases: []string{"course", "crs"},
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var file, id string
			if len(args) == 2 {
				file, id = args[0], args[1]
			} else {
				id = args[0]
			}
			c, err := loadCatalog(file)
			if err != nil {
				return err
			}
			course, err := c.Lookup(id)
			switch err {
			case nil:
			case catalog.ErrNotFound:
				return &internal.Error{Msg: fmt.Sprintf("course %q not found", id), Code: 1}
			case catalog.ErrEmpty:
				return errors.WithMessage(err, emptyCatalog)
			default:
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, term.Colorf("%b,%0", course.ID, course.Title))
			fmt.Fprintln(out, "Prerequisites:", catalog.FormatPrereqs(course.Prereqs))
			return nil
		},
	}
}
