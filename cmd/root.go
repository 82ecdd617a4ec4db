package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/harrybrwn/config"
	"github.com/harrybrwn/errs"
	"github.com/harrybrwn/planner/catalog"
	"github.com/harrybrwn/planner/cmd/commands"
	"github.com/harrybrwn/planner/cmd/internal"
	"github.com/harrybrwn/planner/cmd/internal/menu"
	"github.com/harrybrwn/planner/cmd/internal/opts"
	"github.com/harrybrwn/planner/pkg/term"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"
)

var version string

// Logger for the cmd package
var Logger = &lumberjack.Logger{
	Filename:   filepath.Join(os.TempDir(), "planner.log"),
	MaxSize:    25,  // megabytes
	MaxBackups: 10,  // number of spare files
	MaxAge:     365, // days
	Compress:   false,
}

// exit is swapped out in tests
var exit = os.Exit

// Stop will print to stderr and exit with the error's code.
func Stop(err error) {
	internal.Log.WithError(err).Error("command failed")
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	exit(exitCode(err))
}

func exitCode(err error) int {
	switch e := errors.Cause(err).(type) {
	case *internal.Error:
		return e.Code
	default:
		return 1
	}
}

// Execute will execute the root comand on the cli
func Execute() (err error) {
	log.SetOutput(Logger)
	internal.Log.SetOutput(Logger)

	config.SetFilename("config.yml")
	config.SetType("yaml")
	config.AddPath("$PLANNER_CONFIG")
	config.AddDefaultDirs("planner")
	config.SetConfig(commands.Conf)

	err = config.ReadConfigFile()
	switch err {
	case nil:
		break
	case config.ErrNoConfigDir, config.ErrNoConfigFile:
		internal.Log.Debug(err)
	default:
		return err
	}

	configfile := config.FileUsed()
	if configfile != "" {
		Logger.Filename = filepath.Join(filepath.Dir(configfile), "logs", "planner.log")
	}

	globalFlags := opts.Global{}
	root := &cobra.Command{
		Use:           "planner",
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       version,
		Short:         "Load a course catalog and look up courses and prerequisites.",
		Long: `Load a course catalog and look up courses and prerequisites.

Run without a command to start the interactive menu. Catalog files
have one course per line:

    id,title[,prereq1,prereq2,...]`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return runMenu(cmd.InOrStdin(), out, os.Stderr, term.IsTerminal(out))
		},
		PersistentPreRun: func(*cobra.Command, []string) {
			rootPreRun(&globalFlags)
		},
	}
	globalFlags.AddToFlagSet(root.PersistentFlags())

	root.SetUsageTemplate(commandTemplate)
	root.AddCommand(append(
		commands.All(&globalFlags),
		completionCmd,
	)...)
	return root.Execute()
}

// runMenu runs the interactive menu. Input errors are
// only logged, the menu always exits cleanly.
func runMenu(in io.Reader, out, stderr io.Writer, color bool) error {
	m := menu.New(in, out, catalog.New())
	m.Stderr = stderr
	m.Log = internal.Log
	m.Color = color
	if err := m.Run(); err != nil {
		internal.Log.WithError(err).Error("could not read input")
	}
	return nil
}

func rootPreRun(flags *opts.Global) {
	if commands.Conf.NoColor || !term.IsTerminal(os.Stdout) {
		flags.NoColor = true
	}
	term.Enabled = !flags.NoColor
	if flags.Verbose {
		internal.Log.SetLevel(logrus.DebugLevel)
	}
	internal.Log.WithFields(logrus.Fields{
		"config":  config.FileUsed(),
		"version": version,
	}).Debug("starting")
}

var completionCmd = &cobra.Command{
	Use:   "completion",
	Short: "Print a completion script to stdout.",
	Long: `Use the completion command to generate a script for shell
completion. Note: for zsh you will need to use the command
'compdef _planner planner' after you source the generated script.`,
	Example:   "$ source <(planner completion zsh)",
	ValidArgs: []string{"zsh", "bash", "ps", "powershell", "fish"},
	Aliases:   []string{"comp"},
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		root := cmd.Root()
		out := cmd.OutOrStdout()
		if len(args) == 0 {
			return errors.New("no shell type given")
		}
		switch args[0] {
		case "zsh":
			return root.GenZshCompletion(out)
		case "ps", "powershell":
			return root.GenPowerShellCompletion(out)
		case "bash":
			return root.GenBashCompletion(out)
		case "fish":
			return root.GenFishCompletion(out, false)
		}
		return errs.New("unknown shell type")
	},
}

var commandTemplate = `Usage:
{{if .Runnable}}
	{{.UseLine}}{{end}}{{if gt (len .Aliases) 0}}

Aliases:
	{{.NameAndAliases}}{{end}}{{if .HasExample}}

Examples:
	{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

Available Commands:
{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
	{{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

Flags:

{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

Global Flags:

{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasHelpSubCommands}}

Additional help topics:
{{range .Commands}}{{if .IsAdditionalHelpTopicCommand}}
	{{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
