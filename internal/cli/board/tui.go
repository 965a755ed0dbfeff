package board

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/fleetboard/internal/cli"
	"github.com/thenoetrevino/fleetboard/internal/services/auth"
	"github.com/thenoetrevino/fleetboard/internal/tui"
)

// TUICmd returns the interactive board subcommand
func TUICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tui",
		Aliases: []string{"open"},
		Short:   "Open the interactive board",
		Long: `Open the board in the terminal and move cards with the keyboard.

Lift a card with space, move the cursor to the spot it should take and drop
it with enter. The new order is saved locally for the current API.`,
		RunE: runTUI,
	}

	cmd.Flags().String("status", "", "Start filtered to this column")
	cmd.Flags().String("priority", "", "Start filtered to this priority")
	cmd.Flags().String("search", "", "Start with this search")

	return cmd
}

func runTUI(cmd *cobra.Command, args []string) error {
	formatter := cli.Formatter(cmd)

	criteria, err := cli.ParseCriteria(cmd)
	if err != nil {
		return formatter.Fail(err)
	}

	cliInstance, closeCLI, err := cli.Open(cmd)
	if err != nil {
		return formatter.Fail(err)
	}
	defer closeCLI()

	if !cliInstance.App.LoggedIn() {
		return formatter.Fail(auth.ErrNotLoggedIn)
	}

	if err := tui.Run(cmd.Context(), cliInstance.App, criteria); err != nil {
		return formatter.Fail(err)
	}
	return nil
}
