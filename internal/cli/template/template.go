package template

import (
	"github.com/spf13/cobra"
)

// TemplateCmd returns the template parent command
func TemplateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Manage maintenance plan templates",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(CreateCmd())

	return cmd
}
