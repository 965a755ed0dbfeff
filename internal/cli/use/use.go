// Package use holds the commands that set persistent context,
// e.g. fleetboard use api ...
package use

import (
	"github.com/spf13/cobra"
)

// UseCmd returns the use parent command
func UseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "use",
		Short: "Choose which maintenance API the console talks to",
		Long: `Set persistent context that applies to every later command.

Sessions and board layouts are kept per API, so switching back and forth
keeps both.

Examples:
  fleetboard use api https://fleet.example.com
  eval $(fleetboard use api http://localhost:8080 --shell)
  fleetboard use api --show
  fleetboard use api --clear`,
	}

	cmd.AddCommand(APICmd())

	return cmd
}
