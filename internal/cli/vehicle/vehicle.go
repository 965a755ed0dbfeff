package vehicle

import (
	"github.com/spf13/cobra"
)

// VehicleCmd returns the vehicle parent command
func VehicleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vehicle",
		Short: "Manage the fleet",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(CreateCmd())

	return cmd
}
