package auth

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/fleetboard/internal/cli"
	"github.com/thenoetrevino/fleetboard/internal/cli/forms"
	authservice "github.com/thenoetrevino/fleetboard/internal/services/auth"
)

// SignupCmd returns the auth signup subcommand
func SignupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and log in",
		RunE:  runSignup,
	}

	cmd.Flags().String("email", "", "Account email")
	cmd.Flags().String("name", "", "Full name")
	cmd.Flags().String("password", "", "Password (at least 8 characters)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runSignup(cmd *cobra.Command, args []string) error {
	formatter := cli.Formatter(cmd)
	ctx := cmd.Context()

	req := authservice.SignupRequest{}
	req.Email, _ = cmd.Flags().GetString("email")
	req.FullName, _ = cmd.Flags().GetString("name")
	req.Password, _ = cmd.Flags().GetString("password")

	if req.Email == "" || req.FullName == "" || req.Password == "" {
		if err := forms.SignupForm(&req.Email, &req.FullName, &req.Password).RunWithContext(ctx); err != nil {
			return formatter.Fail(err)
		}
	}

	cliInstance, closeCLI, err := cli.Open(cmd)
	if err != nil {
		return formatter.Fail(err)
	}
	defer closeCLI()

	session, err := cliInstance.App.AuthService.Signup(ctx, req)
	if err != nil {
		if formatter.JSON {
			return formatter.Fail(err)
		}
		code, exit, _ := cli.Classify(err)
		if exit == cli.ExitError {
			_ = formatter.ErrorWithSuggestion(code, "Unable to sign up (email might be used or password too short)", err.Error())
			return &cli.CommandError{Code: exit, Err: err}
		}
		return formatter.Fail(err)
	}
	return printSession(formatter, session, cliInstance.App.APIURL(), "Signed up")
}
