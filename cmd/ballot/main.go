// ballot is a command line client that votes on a ranked choice ballot contract.
package main

import (
	"os"

	"github.com/spf13/afero"

	"github.com/ballotpaper/go-ballotpaper/cmd"
)

var (
	version string
	commit  string
	branch  string
)

func main() { // run the app
	cmd.Version = version
	cmd.Commit = commit
	cmd.Branch = branch
	if err := newCommand(afero.NewOsFs()).Execute(); err != nil {
		// Do not print error as cmd.SilenceErrors is false
		// and the error was already printed
		os.Exit(1)
	}
}
