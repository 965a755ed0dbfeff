package auth

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/fleetboard/internal/cli"
)

// WhoAmICmd returns the auth whoami subcommand
func WhoAmICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged in user",
		RunE:  runWhoAmI,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runWhoAmI(cmd *cobra.Command, args []string) error {
	formatter := cli.Formatter(cmd)

	cliInstance, closeCLI, err := cli.Open(cmd)
	if err != nil {
		return formatter.Fail(err)
	}
	defer closeCLI()

	session, err := cliInstance.App.AuthService.Current(cmd.Context())
	if err != nil {
		return formatter.Fail(err)
	}
	return printSession(formatter, session, cliInstance.App.APIURL(), "Logged in")
}
