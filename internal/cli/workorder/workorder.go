package workorder

import (
	"github.com/spf13/cobra"
)

// WorkOrderCmd returns the workorder parent command
func WorkOrderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "workorder",
		Aliases: []string{"wo"},
		Short:   "Manage work orders",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(CreateCmd())

	return cmd
}
