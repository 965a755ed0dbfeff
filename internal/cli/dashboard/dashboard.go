package dashboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/fleetboard/internal/cli"
	authservice "github.com/thenoetrevino/fleetboard/internal/services/auth"
	dashboardservice "github.com/thenoetrevino/fleetboard/internal/services/dashboard"
)

// DashboardCmd returns the dashboard command
func DashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show fleet KPIs and recent work orders",
		Long: `Show the maintenance KPIs: open and overdue work orders, orders reported
this week, orders per day and the most recent work orders.

Examples:
  fleetboard dashboard
  fleetboard dashboard --limit=20 --width=120
  fleetboard dashboard --raw > report.md
`,
		RunE: runDashboard,
	}

	cmd.Flags().Int("limit", dashboardservice.RecentLimit, "Number of recent work orders")
	cmd.Flags().Int("width", 100, "Wrap width for the rendered output")
	cmd.Flags().Bool("raw", false, "Print markdown instead of rendering it")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDashboard(cmd *cobra.Command, args []string) error {
	formatter := cli.Formatter(cmd)
	ctx := cmd.Context()

	limit, _ := cmd.Flags().GetInt("limit")
	width, _ := cmd.Flags().GetInt("width")
	raw, _ := cmd.Flags().GetBool("raw")
	if limit < 0 {
		return formatter.Fail(cli.Usagef("--limit cannot be negative"))
	}

	cliInstance, closeCLI, err := cli.Open(cmd)
	if err != nil {
		return formatter.Fail(err)
	}
	defer closeCLI()

	summary, err := cliInstance.App.DashboardService.Summary(ctx, limit)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.JSON {
		return formatter.Result("summary", summary)
	}
	if formatter.Quiet {
		fmt.Printf("%d %d %d\n", summary.Open, summary.Overdue, summary.NewThisWeek)
		return nil
	}

	userName := ""
	session, err := cliInstance.App.AuthService.Current(ctx)
	switch {
	case err == nil:
		userName = session.User.FullName
	case !errors.Is(err, authservice.ErrNotLoggedIn):
		return formatter.Fail(err)
	}

	md := summary.Markdown(userName)
	if raw {
		fmt.Print(md)
		return nil
	}

	fmt.Println(render(md, width))
	return nil
}

// render returns md rendered for the terminal, or md itself when glamour fails
func render(md string, width int) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
