package internal

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Log is the logger shared by all commands. Its output is
// discarded until the root command points it at the log file.
var Log = &logrus.Logger{
	Out:       io.Discard,
	Formatter: &logrus.TextFormatter{DisableColors: true, FullTimestamp: true},
	Hooks:     make(logrus.LevelHooks),
	Level:     logrus.InfoLevel,
}
