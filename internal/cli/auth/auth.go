package auth

import (
	"github.com/spf13/cobra"
)

// AuthCmd returns the auth parent command
func AuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Log in to the maintenance API",
	}

	cmd.AddCommand(LoginCmd())
	cmd.AddCommand(SignupCmd())
	cmd.AddCommand(LogoutCmd())
	cmd.AddCommand(WhoAmICmd())

	return cmd
}
