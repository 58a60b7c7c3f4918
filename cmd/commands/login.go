package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hrayfi/hrayfi-cli/internal/cli"
)

var loginUsername string

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in as an artisan",
		Long: `Authenticate against the marketplace and store the session locally.
The session is used by every command that touches your own products or
profile, and cleared by 'hrayfi logout'.

Examples:
  # Prompt for username and password
  hrayfi login

  # Pre-fill the username
  hrayfi login --username atelier-fes`,
		Args: cobra.NoArgs,
		RunE: runLogin,
	}

	cmd.Flags().StringVarP(&loginUsername, "username", "u", "", "Account username")

	return cmd
}

func runLogin(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}

	username := loginUsername
	if username == "" {
		username, err = cli.PromptLine("Username: ")
		if err != nil {
			return err
		}
	}
	password, err := cli.PromptLine("Password: ")
	if err != nil {
		return err
	}
	if username == "" || password == "" {
		return fmt.Errorf("username and password are required")
	}

	result, err := ctx.Client.Login(cmd.Context(), username, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	cli.PrintSuccess("Logged in as %s (artisan #%d)", result.Artisan.Name, result.Artisan.ID)
	return nil
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and clear the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cli.NewCommandContext()
			if err != nil {
				return err
			}
			if err := ctx.Client.Logout(); err != nil {
				return err
			}
			cli.PrintSuccess("Logged out")
			return nil
		},
	}
}
