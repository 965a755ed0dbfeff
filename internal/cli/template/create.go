package template

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/fleetboard/internal/cli"
	templateservice "github.com/thenoetrevino/fleetboard/internal/services/template"
)

// CreateCmd returns the template create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a maintenance plan template",
		Long: `Create a maintenance plan template.

Examples:
  # Oil change every 10 000 km
  fleetboard template create --name="Oil change" --mileage=10000

  # Yearly inspection
  fleetboard template create --name="Inspection" --trigger=time --days=365
`,
		RunE: runCreate,
	}

	cmd.Flags().String("name", "", "Template name (required)")
	cmd.Flags().String("trigger", "mileage", "Trigger: mileage, time, custom")
	cmd.Flags().Int("mileage", 0, "Mileage interval (mileage trigger)")
	cmd.Flags().Int("days", 0, "Interval in days (time trigger)")
	cmd.Flags().Int("type", 0, "Vehicle type ID")
	cmd.Flags().Bool("inactive", false, "Create the template disabled")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	formatter := cli.Formatter(cmd)

	req := templateservice.CreateRequest{}
	req.Name, _ = cmd.Flags().GetString("name")
	req.TriggerType, _ = cmd.Flags().GetString("trigger")
	req.MileageInterval, _ = cmd.Flags().GetInt("mileage")
	req.TimeIntervalDays, _ = cmd.Flags().GetInt("days")
	req.VehicleTypeID, _ = cmd.Flags().GetInt("type")
	req.Inactive, _ = cmd.Flags().GetBool("inactive")

	cliInstance, closeCLI, err := cli.Open(cmd)
	if err != nil {
		return formatter.Fail(err)
	}
	defer closeCLI()

	templates, err := cliInstance.App.TemplateService.Create(cmd.Context(), req)
	if err != nil {
		return formatter.Fail(err)
	}

	if !formatter.JSON && !formatter.Quiet {
		fmt.Printf("✓ Template '%s' created\n\n", req.Name)
	}
	return printTemplates(formatter, templates)
}
