package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hrayfi/hrayfi-cli/internal/cli"
	"github.com/hrayfi/hrayfi-cli/pkg/api"
)

var (
	registerUsername  string
	registerEmail     string
	registerPhone     string
	registerName      string
	registerBiography string
	registerRegionID  int
	registerImage     string
)

// NewRegisterCommand creates the register command
func NewRegisterCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new artisan account",
		Long: `Create an artisan account. The password is prompted for twice and
never accepted as a flag. After registering, log in with 'hrayfi login'.

Examples:
  # Register with a profile image
  hrayfi register --username atelier-fes --email contact@fes.ma \
    --name "Atelier Fès" --phone "+212600000000" --region-id 3 \
    --bio "Zellige workshop in the Fès medina" --image ./atelier.jpg

Run 'hrayfi regions' to list region ids.`,
		Args: cobra.NoArgs,
		RunE: runRegister,
	}

	cmd.Flags().StringVarP(&registerUsername, "username", "u", "", "Account username (required)")
	cmd.Flags().StringVarP(&registerEmail, "email", "e", "", "Contact email (required)")
	cmd.Flags().StringVar(&registerPhone, "phone", "", "Contact phone")
	cmd.Flags().StringVarP(&registerName, "name", "n", "", "Display name (required)")
	cmd.Flags().StringVar(&registerBiography, "bio", "", "Biography shown on your public page")
	cmd.Flags().IntVar(&registerRegionID, "region-id", 0, "Region id (required, see 'hrayfi regions')")
	cmd.Flags().StringVar(&registerImage, "image", "", "Path to a profile image to upload")
	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("region-id")

	return cmd
}

func runRegister(cmd *cobra.Command, args []string) error {
	if err := cli.ValidateImagePath(registerImage); err != nil {
		return err
	}

	ctx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}

	password, err := cli.PromptLine("Password: ")
	if err != nil {
		return err
	}
	confirm, err := cli.PromptLine("Confirm password: ")
	if err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("password is required")
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	in := api.RegisterInput{
		Username:  registerUsername,
		Email:     registerEmail,
		Phone:     registerPhone,
		Password:  password,
		Name:      registerName,
		Biography: registerBiography,
		RegionID:  registerRegionID,
		ImagePath: registerImage,
	}
	if err := ctx.Client.Register(cmd.Context(), in); err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	cli.PrintSuccess("Registration successful. Log in with 'hrayfi login'")
	return nil
}
