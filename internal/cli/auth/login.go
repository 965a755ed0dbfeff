package auth

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/fleetboard/internal/cli"
	"github.com/thenoetrevino/fleetboard/internal/cli/forms"
	"github.com/thenoetrevino/fleetboard/internal/models"
)

// LoginCmd returns the auth login subcommand
func LoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and remember the session",
		Long: `Log in to the configured API. The session is stored locally per API URL.
Missing credentials are prompted for.

Examples:
  fleetboard auth login
  fleetboard auth login --email=alex@example.com --password="$PASSWORD"
`,
		RunE: runLogin,
	}

	cmd.Flags().String("email", "", "Account email")
	cmd.Flags().String("password", "", "Account password")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runLogin(cmd *cobra.Command, args []string) error {
	formatter := cli.Formatter(cmd)
	ctx := cmd.Context()

	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")

	if email == "" || password == "" {
		if err := forms.LoginForm(&email, &password).RunWithContext(ctx); err != nil {
			return formatter.Fail(err)
		}
	}

	cliInstance, closeCLI, err := cli.Open(cmd)
	if err != nil {
		return formatter.Fail(err)
	}
	defer closeCLI()

	session, err := cliInstance.App.AuthService.Login(ctx, email, password)
	if err != nil {
		return formatter.Fail(err)
	}
	return printSession(formatter, session, cliInstance.App.APIURL(), "Logged in")
}

func printSession(formatter *cli.OutputFormatter, session *models.Session, apiURL, verb string) error {
	if formatter.Quiet {
		fmt.Println(session.User.ID)
		return nil
	}

	if formatter.JSON {
		return formatter.Result("user", session.User)
	}

	name := session.User.FullName
	if name == "" {
		name = session.User.Email
	}
	fmt.Printf("✓ %s as %s <%s>\n", verb, name, session.User.Email)
	if session.User.Role != "" {
		fmt.Printf("  Role: %s\n", session.User.Role)
	}
	fmt.Printf("  API: %s\n", apiURL)
	return nil
}
