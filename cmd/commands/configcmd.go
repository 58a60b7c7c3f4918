package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hrayfi/hrayfi-cli/internal/cli"
	"github.com/hrayfi/hrayfi-cli/pkg/config"
)

// NewConfigCommand creates the config command
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change client settings",
		Long: `Show the current settings, or set one of the known keys:

  api.base_url    Backend base URL
  api.chat_url    Assistant endpoint (empty = built-in script)
  ui.page_size    Products per page
  ui.currency     Currency symbol for price display
  ui.default_sort Default sort key

Examples:
  hrayfi config
  hrayfi config set api.base_url https://api.example.com
  hrayfi config set ui.page_size 20`,
		Args: cobra.NoArgs,
		RunE: runConfigShow,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set one settings key",
		Args:  cobra.ExactArgs(2),
		RunE:  runConfigSet,
	})

	return cmd
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	settings, err := config.ReadSettings()
	if err != nil {
		return err
	}

	outputFormat, _ := cmd.Flags().GetString("output")
	if outputFormat == "json" {
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, settings)
	}
	return cli.OutputResults(cmd.OutOrStdout(), "yaml", settings)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	settings, err := config.ReadSettings()
	if err != nil {
		return err
	}

	switch key {
	case "api.base_url":
		settings.API.BaseURL = value
	case "api.chat_url":
		settings.API.ChatURL = value
	case "ui.page_size":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid page size %q (must be a positive number)", value)
		}
		settings.UI.PageSize = n
	case "ui.currency":
		settings.UI.Currency = value
	case "ui.default_sort":
		if _, err := cli.ValidateSortKey(value); err != nil {
			return err
		}
		settings.UI.DefaultSort = value
	default:
		return fmt.Errorf("unknown settings key: %s", key)
	}

	if err := config.WriteSettings(settings); err != nil {
		return err
	}
	cli.PrintSuccess("Set %s = %s", key, value)
	return nil
}
