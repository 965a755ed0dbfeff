package auth

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/fleetboard/internal/cli"
)

// LogoutCmd returns the auth logout subcommand
func LogoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		RunE:  runLogout,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runLogout(cmd *cobra.Command, args []string) error {
	formatter := cli.Formatter(cmd)

	cliInstance, closeCLI, err := cli.Open(cmd)
	if err != nil {
		return formatter.Fail(err)
	}
	defer closeCLI()

	if err := cliInstance.App.AuthService.Logout(cmd.Context()); err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.Result("api_url", cliInstance.App.APIURL())
	}
	fmt.Printf("✓ Logged out of %s\n", cliInstance.App.APIURL())
	return nil
}
