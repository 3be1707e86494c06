package console

import (
	"os"

	"github.com/fatih/color"
)

var (
	debugOn    = os.Getenv("RECFILE_DEBUG") != ""
	debugColor = color.New(color.FgCyan)
)

// Debugf prints a diagnostic line to stderr when the RECFILE_DEBUG
// environment variable is set. Output is colored on terminals; fatih/color
// drops the escape codes on its own when stderr is redirected.
func Debugf(format string, a ...any) {
	if !debugOn {
		return
	}
	debugColor.Fprintf(color.Error, "debug: "+format+"\n", a...)
}
