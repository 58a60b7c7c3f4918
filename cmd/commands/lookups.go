package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hrayfi/hrayfi-cli/internal/cli"
)

// NewCategoriesCommand creates the categories command
func NewCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List product categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cli.NewCommandContext()
			if err != nil {
				return err
			}

			categories, err := ctx.Client.ListCategories(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch categories: %w", err)
			}

			outputFormat, _ := cmd.Flags().GetString("output")
			if outputFormat == "json" || outputFormat == "yaml" {
				return cli.OutputResults(cmd.OutOrStdout(), outputFormat, categories)
			}

			table := cli.NewTableFormatter(cmd.OutOrStdout())
			table.Header("ID", "Name")
			for _, c := range categories {
				table.Row(fmt.Sprintf("%d", c.ID), c.Name)
			}
			table.Flush()
			return nil
		},
	}
}

// NewRegionsCommand creates the regions command
func NewRegionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List regions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cli.NewCommandContext()
			if err != nil {
				return err
			}

			regions, err := ctx.Client.ListRegions(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch regions: %w", err)
			}

			outputFormat, _ := cmd.Flags().GetString("output")
			if outputFormat == "json" || outputFormat == "yaml" {
				return cli.OutputResults(cmd.OutOrStdout(), outputFormat, regions)
			}

			table := cli.NewTableFormatter(cmd.OutOrStdout())
			table.Header("ID", "Name")
			for _, r := range regions {
				table.Row(fmt.Sprintf("%d", r.ID), r.Name)
			}
			table.Flush()
			return nil
		},
	}
}
