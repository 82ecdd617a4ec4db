package opts

import "github.com/spf13/pflag"

// Options is anything that registers its own flags.
type Options interface {
	AddToFlagSet(*pflag.FlagSet)
}

// Global holds the flags shared by every command.
type Global struct {
	NoColor bool
	Verbose bool
}

// AddToFlagSet registers the global flags.
func (g *Global) AddToFlagSet(set *pflag.FlagSet) {
	set.BoolVar(&g.NoColor, "nocolor", g.NoColor, "turn off colors")
	set.BoolVarP(&g.Verbose, "verbose", "v", g.Verbose, "write debug messages to the log file")
}
