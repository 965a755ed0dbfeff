package template

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/fleetboard/internal/cli"
	"github.com/thenoetrevino/fleetboard/internal/cli/styles"
	"github.com/thenoetrevino/fleetboard/internal/models"
)

// ListCmd returns the template list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List templates",
		RunE:  runList,
	}

	cmd.Flags().Bool("active", false, "Only active templates")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	formatter := cli.Formatter(cmd)
	activeOnly, _ := cmd.Flags().GetBool("active")

	cliInstance, closeCLI, err := cli.Open(cmd)
	if err != nil {
		return formatter.Fail(err)
	}
	defer closeCLI()

	templates, err := cliInstance.App.TemplateService.List(cmd.Context())
	if err != nil {
		return formatter.Fail(err)
	}

	if activeOnly {
		active := templates[:0]
		for _, t := range templates {
			if t.Active() {
				active = append(active, t)
			}
		}
		templates = active
	}
	return printTemplates(formatter, templates)
}

// interval describes when a template fires
func interval(t models.Template) string {
	switch t.Trigger() {
	case models.TriggerMileage:
		return fmt.Sprintf("every %d km", t.MileageInterval)
	case models.TriggerTime:
		return fmt.Sprintf("every %d days", t.TimeIntervalDays)
	}
	return "-"
}

func printTemplates(formatter *cli.OutputFormatter, templates []models.Template) error {
	if formatter.Quiet {
		for _, t := range templates {
			fmt.Println(t.ID)
		}
		return nil
	}

	if formatter.JSON {
		return formatter.Result("templates", templates)
	}

	if len(templates) == 0 {
		fmt.Println("No templates found")
		return nil
	}

	rows := make([][]string, 0, len(templates))
	for _, t := range templates {
		active := "yes"
		if !t.Active() {
			active = "no"
		}
		rows = append(rows, []string{
			strconv.Itoa(t.ID),
			t.Name,
			t.Trigger(),
			interval(t),
			strconv.Itoa(len(t.Lines)),
			active,
		})
	}

	fmt.Printf("Found %d templates:\n\n", len(templates))
	fmt.Println(styles.RenderTable([]string{"ID", "Name", "Trigger", "Interval", "Lines", "Active"}, rows))
	return nil
}
