package board

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/fleetboard/internal/cli"
)

// ResetCmd returns the board reset subcommand
func ResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Forget the local card order",
		Long:  "Drop the locally saved layout so every card goes back to the column its status maps to.",
		RunE:  runReset,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runReset(cmd *cobra.Command, args []string) error {
	formatter := cli.Formatter(cmd)

	cliInstance, closeCLI, err := cli.Open(cmd)
	if err != nil {
		return formatter.Fail(err)
	}
	defer closeCLI()

	if err := cliInstance.App.WorkOrderService.ResetLayout(cmd.Context()); err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.Result("api_url", cliInstance.App.APIURL())
	}
	fmt.Printf("✓ Board layout reset for %s\n", cliInstance.App.APIURL())
	return nil
}
