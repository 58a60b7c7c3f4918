package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hrayfi/hrayfi-cli/internal/cli"
	"github.com/hrayfi/hrayfi-cli/pkg/api"
)

var (
	profileName      string
	profilePhone     string
	profileBiography string
	profileRegionID  int
	profileImage     string
)

// NewProfileCommand creates the profile command
func NewProfileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update your artisan profile",
		Long: `Without flags, shows your profile. With flags, updates the given
fields and leaves the rest untouched (requires login).

Examples:
  # Show your profile
  hrayfi profile

  # Update the biography and phone
  hrayfi profile --bio "Third-generation zellige maker" --phone "+212611111111"

  # Replace your profile image
  hrayfi profile --image ./portrait.jpg`,
		Args: cobra.NoArgs,
		RunE: runProfile,
	}

	cmd.Flags().StringVarP(&profileName, "name", "n", "", "Display name")
	cmd.Flags().StringVar(&profilePhone, "phone", "", "Contact phone")
	cmd.Flags().StringVar(&profileBiography, "bio", "", "Biography")
	cmd.Flags().IntVar(&profileRegionID, "region-id", 0, "Region id")
	cmd.Flags().StringVar(&profileImage, "image", "", "Path to a profile image to upload")

	return cmd
}

func runProfile(cmd *cobra.Command, args []string) error {
	if err := cli.ValidateImagePath(profileImage); err != nil {
		return err
	}

	ctx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}
	sess, err := ctx.RequireSession()
	if err != nil {
		return err
	}

	artisan, err := ctx.Client.GetArtisan(cmd.Context(), sess.ArtisanID)
	if err != nil {
		return fmt.Errorf("failed to fetch profile: %w", err)
	}

	editing := profileName != "" || profilePhone != "" || profileBiography != "" ||
		profileRegionID != 0 || profileImage != ""

	if editing {
		in := api.ArtisanInput{
			Name:      artisan.Name,
			Phone:     artisan.Phone,
			Biography: artisan.Biography,
			ImagePath: profileImage,
		}
		if profileName != "" {
			in.Name = profileName
		}
		if profilePhone != "" {
			in.Phone = profilePhone
		}
		if profileBiography != "" {
			in.Biography = profileBiography
		}
		if profileRegionID != 0 {
			in.RegionID = profileRegionID
		}

		artisan, err = ctx.Client.UpdateArtisan(cmd.Context(), sess.ArtisanID, in)
		if err != nil {
			return fmt.Errorf("failed to update profile: %w", err)
		}
		cli.PrintSuccess("Profile updated")
	}

	outputFormat, _ := cmd.Flags().GetString("output")
	switch outputFormat {
	case "json", "yaml":
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, artisan)
	default:
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (#%d)\n", artisan.Name, artisan.ID)
		fmt.Fprintln(out, strings.Repeat("-", 80))
		if artisan.Email != "" {
			fmt.Fprintf(out, "Email:  %s\n", artisan.Email)
		}
		if artisan.Phone != "" {
			fmt.Fprintf(out, "Phone:  %s\n", artisan.Phone)
		}
		fmt.Fprintf(out, "Region: %s\n", artisan.Region.Name)
		if artisan.Biography != "" {
			fmt.Fprintf(out, "\n%s\n", artisan.Biography)
		}
		return nil
	}
}

// NewPasswdCommand creates the passwd command
func NewPasswdCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "passwd",
		Short: "Change your login credentials",
		Long: `Change the email, username and password of your account (requires
login). All values are prompted for; the new password must be entered
twice and match before anything is sent to the backend.`,
		Args: cobra.NoArgs,
		RunE: runPasswd,
	}
}

func runPasswd(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}
	sess, err := ctx.RequireSession()
	if err != nil {
		return err
	}

	email, err := cli.PromptLine(fmt.Sprintf("Email [%s]: ", sess.ArtisanEmail))
	if err != nil {
		return err
	}
	if email == "" {
		email = sess.ArtisanEmail
	}
	username, err := cli.PromptLine("Username: ")
	if err != nil {
		return err
	}
	current, err := cli.PromptLine("Current password: ")
	if err != nil {
		return err
	}
	newPassword, err := cli.PromptLine("New password: ")
	if err != nil {
		return err
	}
	confirm, err := cli.PromptLine("Confirm new password: ")
	if err != nil {
		return err
	}

	if current == "" || newPassword == "" {
		return fmt.Errorf("current and new passwords are required")
	}
	if newPassword != confirm {
		return fmt.Errorf("new passwords do not match")
	}

	in := api.CredentialsInput{
		Email:           email,
		Username:        username,
		CurrentPassword: current,
		NewPassword:     newPassword,
	}
	if err := ctx.Client.ChangeCredentials(cmd.Context(), sess.ArtisanID, in); err != nil {
		return fmt.Errorf("failed to change credentials: %w", err)
	}

	cli.PrintSuccess("Login credentials updated")
	return nil
}
