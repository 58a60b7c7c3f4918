package commands

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/hrayfi/hrayfi-cli/internal/cli"
	"github.com/hrayfi/hrayfi-cli/pkg/models"
)

var showCopyLink bool

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <product-id>",
		Short: "Show a product's details",
		Long: `Display the full detail view of one product: description, materials,
dimensions, cultural significance, artisan and region.

Examples:
  # Show product 42
  hrayfi show 42

  # Show product 42 and copy its link to the clipboard
  hrayfi show 42 --copy

  # Structured output
  hrayfi show 42 -o json`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}

	cmd.Flags().BoolVar(&showCopyLink, "copy", false, "Copy the product link to the clipboard")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := cli.ParseID(args[0])
	if err != nil {
		return err
	}

	ctx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}

	product, err := ctx.Client.GetProduct(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to fetch product %d: %w", id, err)
	}

	if showCopyLink {
		link := fmt.Sprintf("%s/product/%d", ctx.Settings.API.BaseURL, product.ID)
		if err := clipboard.WriteAll(link); err != nil {
			cli.PrintWarning("Could not copy link to clipboard: %v", err)
		} else {
			cli.PrintSuccess("Copied %s", link)
		}
	}

	outputFormat, _ := cmd.Flags().GetString("output")
	switch outputFormat {
	case "json", "yaml":
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, product)
	default:
		outputProductText(cmd, ctx.Settings, product)
		return nil
	}
}

func outputProductText(cmd *cobra.Command, settings *models.Settings, p *models.Product) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s (#%d)\n", p.Name, p.ID)
	fmt.Fprintln(out, strings.Repeat("-", 80))
	fmt.Fprintf(out, "Price:     %s\n", cli.FormatPrice(settings.UI.Currency, p.Price))
	fmt.Fprintf(out, "Category:  %s\n", p.Category.Name)
	fmt.Fprintf(out, "Region:    %s\n", p.Region.Name)
	if name := p.ArtisanName(); name != "" {
		fmt.Fprintf(out, "Artisan:   %s\n", name)
	}
	if p.Materials != "" {
		fmt.Fprintf(out, "Materials: %s\n", p.Materials)
	}
	if p.Dimensions != "" {
		fmt.Fprintf(out, "Size:      %s\n", p.Dimensions)
	}
	if p.MainImage != "" {
		fmt.Fprintf(out, "Image:     %s\n", p.MainImage)
	}
	if p.Description != "" {
		fmt.Fprintf(out, "\n%s\n", p.Description)
	}
	if p.CulturalSignificance != "" {
		fmt.Fprintf(out, "\nCultural significance: %s\n", p.CulturalSignificance)
	}
}
