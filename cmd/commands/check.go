package commands

import (
	"fmt"
	"strings"

	"github.com/harrybrwn/planner/cmd/internal"
	"github.com/harrybrwn/planner/cmd/internal/opts"
	"github.com/spf13/cobra"
)

func newCheckCmd(opts *opts.Global) *cobra.Command {
	return &cobra.Command{
		Use:   "check [file]",
		Short: "Find prerequisites that are not in the catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var file string
			if len(args) > 0 {
				file = args[0]
			}
			c, err := loadCatalog(file)
			if err != nil {
				return err
			}
			missing := c.Unresolved()
			if len(missing) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "all prerequisites found")
				return nil
			}
			tab := internal.NewTable(cmd.OutOrStdout())
			internal.SetTableHeader(tab, []string{"id", "missing"}, !opts.NoColor)
			for _, m := range missing {
				tab.Append([]string{m.ID, strings.Join(m.Prereqs, ",")})
			}
			tab.Render()
			return &internal.Error{
				Msg:  fmt.Sprintf("%d course(s) have unknown prerequisites", len(missing)),
				Code: 1,
			}
		},
	}
}
