package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hrayfi/hrayfi-cli/internal/cli"
	"github.com/hrayfi/hrayfi-cli/pkg/api"
)

var (
	updateName        string
	updateDescription string
	updateMaterials   string
	updateDimensions  string
	updateCultural    string
	updateCategoryID  int
	updateRegionID    int
	updatePrice       string
	updateImage       string
)

// NewUpdateCommand creates the update command
func NewUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <product-id>",
		Short: "Update one of your products",
		Long: `Update a product you own (requires login). Flags you omit keep their
current value: the command fetches the product first and only overrides
what you pass.

Examples:
  # Reprice product 42
  hrayfi update 42 --price 249.00

  # Replace the image and fix the description
  hrayfi update 42 --image ./new-photo.jpg --description "..."`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().StringVarP(&updateName, "name", "n", "", "Product name")
	cmd.Flags().StringVarP(&updateDescription, "description", "d", "", "Product description")
	cmd.Flags().StringVar(&updateMaterials, "materials", "", "Materials, free text")
	cmd.Flags().StringVar(&updateDimensions, "dimensions", "", "Dimensions, free text")
	cmd.Flags().StringVar(&updateCultural, "cultural-significance", "", "Cultural significance, free text")
	cmd.Flags().IntVar(&updateCategoryID, "category-id", 0, "Category id")
	cmd.Flags().IntVar(&updateRegionID, "region-id", 0, "Region id")
	cmd.Flags().StringVar(&updatePrice, "price", "", "Price as a decimal, e.g. 299.00")
	cmd.Flags().StringVar(&updateImage, "image", "", "Path to a replacement product image")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id, err := cli.ParseID(args[0])
	if err != nil {
		return err
	}
	if err := cli.ValidateImagePath(updateImage); err != nil {
		return err
	}

	ctx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}
	if _, err := ctx.RequireSession(); err != nil {
		return err
	}

	current, err := ctx.Client.GetProduct(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to fetch product %d: %w", id, err)
	}

	in := api.ProductInput{
		Name:                 current.Name,
		Description:          current.Description,
		Materials:            current.Materials,
		Dimensions:           current.Dimensions,
		CulturalSignificance: current.CulturalSignificance,
		CategoryID:           current.Category.ID,
		RegionID:             current.Region.ID,
		Price:                current.Price,
		ImagePath:            updateImage,
	}
	if updateName != "" {
		in.Name = updateName
	}
	if updateDescription != "" {
		in.Description = updateDescription
	}
	if updateMaterials != "" {
		in.Materials = updateMaterials
	}
	if updateDimensions != "" {
		in.Dimensions = updateDimensions
	}
	if updateCultural != "" {
		in.CulturalSignificance = updateCultural
	}
	if updateCategoryID != 0 {
		in.CategoryID = updateCategoryID
	}
	if updateRegionID != 0 {
		in.RegionID = updateRegionID
	}
	if updatePrice != "" {
		price, err := cli.ParsePrice(updatePrice)
		if err != nil {
			return err
		}
		in.Price = price
	}

	updated, err := ctx.Client.UpdateProduct(cmd.Context(), id, in)
	if err != nil {
		return fmt.Errorf("failed to update product %d: %w", id, err)
	}

	cli.PrintSuccess("Updated product %q (#%d)", updated.Name, updated.ID)
	return nil
}
