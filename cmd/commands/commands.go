package commands

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/harrybrwn/config"
	"github.com/harrybrwn/errs"
	"github.com/harrybrwn/planner/catalog"
	"github.com/harrybrwn/planner/cmd/internal"
	"github.com/harrybrwn/planner/cmd/internal/opts"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Config is the config file layout.
type Config struct {
	// Catalog is the file used when a command is not given one.
	Catalog string `yaml:"catalog" env:"PLANNER_CATALOG"`
	Editor  string `yaml:"editor" env:"EDITOR" default:"vim"`
	NoColor bool   `yaml:"nocolor"`
}

const emptyCatalog = "catalog has no courses, give a file with at least one 'id,title' row or set 'catalog' in the config file"

// Conf is the global config.
var Conf = &Config{}

// All returns all the commands.
func All(globals *opts.Global) []*cobra.Command {
	return []*cobra.Command{
		newListCmd(globals),
		newInfoCmd(),
		newCheckCmd(globals),
		newConfigCmd(),
	}
}

func newConfigCmd() *cobra.Command {
	var file, edit bool
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"conf"},
		RunE: func(cmd *cobra.Command, args []string) error {
			f := config.FileUsed()
			if file {
				fmt.Fprintln(cmd.OutOrStdout(), f)
				return nil
			}
			if edit {
				if f == "" {
					return errs.New("no config file found")
				}
				editor := config.GetString("editor")
				ex := exec.Command(editor, f)
				ex.Stdout, ex.Stderr, ex.Stdin = os.Stdout, os.Stderr, os.Stdin
				return ex.Run()
			}
			return cmd.Usage()
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use: "get", Short: "Get a config variable",
		Run: func(c *cobra.Command, args []string) {
			for _, arg := range args {
				fmt.Fprintln(c.OutOrStdout(), config.GetString(arg))
			}
		}})
	cmd.Flags().BoolVarP(&edit, "edit", "e", false, "edit the config file")
	cmd.Flags().BoolVarP(&file, "file", "f", false, "print the config file path")
	return cmd
}

// loadCatalog loads the file given or the
// catalog file from the config.
func loadCatalog(filename string) (*catalog.Catalog, error) {
	if filename == "" {
		filename = config.GetString("catalog")
	}
	if filename == "" {
		return nil, errs.New("no catalog file given (set 'catalog' in the config file or '$PLANNER_CATALOG')")
	}
	c := catalog.New()
	if err := c.Load(filename); err != nil {
		internal.Log.WithFields(logrus.Fields{
			"file":  filename,
			"error": err,
		}).Error("load failed")
		return nil, err
	}
	internal.Log.WithFields(logrus.Fields{
		"file":    filename,
		"courses": c.Len(),
	}).Info("catalog loaded")
	return c, nil
}

func listCourses(filename string) ([]*catalog.Course, error) {
	c, err := loadCatalog(filename)
	if err != nil {
		return nil, err
	}
	courses, err := c.List()
	if err == catalog.ErrEmpty {
		return nil, errors.WithMessage(err, emptyCatalog)
	}
	return courses, err
}
