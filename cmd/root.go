package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/fleetboard/internal/cli"
	"github.com/thenoetrevino/fleetboard/internal/cli/auth"
	"github.com/thenoetrevino/fleetboard/internal/cli/board"
	"github.com/thenoetrevino/fleetboard/internal/cli/dashboard"
	"github.com/thenoetrevino/fleetboard/internal/cli/styles"
	"github.com/thenoetrevino/fleetboard/internal/cli/template"
	"github.com/thenoetrevino/fleetboard/internal/cli/tutorial"
	"github.com/thenoetrevino/fleetboard/internal/cli/use"
	"github.com/thenoetrevino/fleetboard/internal/cli/vehicle"
	"github.com/thenoetrevino/fleetboard/internal/cli/workorder"
	"github.com/thenoetrevino/fleetboard/internal/config"
	"github.com/thenoetrevino/fleetboard/internal/launcher"
	"github.com/thenoetrevino/fleetboard/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "fleetboard",
	Short: "Fleetboard - fleet maintenance from the terminal",
	Long: `Fleetboard is a terminal console for a fleet maintenance API.

Run it without a command to open the interactive work order board, or use
the commands below to script the same operations.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := launcher.Launch(cmd.Context()); err != nil {
			return cli.Formatter(cmd).Fail(err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(auth.AuthCmd())
	rootCmd.AddCommand(board.BoardCmd())
	rootCmd.AddCommand(workorder.WorkOrderCmd())
	rootCmd.AddCommand(vehicle.VehicleCmd())
	rootCmd.AddCommand(template.TemplateCmd())
	rootCmd.AddCommand(dashboard.DashboardCmd())
	rootCmd.AddCommand(use.UseCmd())
	rootCmd.AddCommand(tutorial.TutorialCmd())
}

// setup initializes file logging and the CLI colors before any command runs
func setup(cmd *cobra.Command, args []string) error {
	if err := logging.Init(); err != nil {
		// Not fatal, logs go to stderr's default handler instead.
		fmt.Fprintf(os.Stderr, "warning: failed to initialize logging: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	styles.Init(cfg.ColorScheme)
	return nil
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
