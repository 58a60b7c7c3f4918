package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hrayfi/hrayfi-cli/internal/cli"
	"github.com/hrayfi/hrayfi-cli/pkg/api"
)

var (
	createName         string
	createDescription  string
	createMaterials    string
	createDimensions   string
	createCultural     string
	createCategoryID   int
	createRegionID     int
	createPrice        string
	createImage        string
)

// NewCreateCommand creates the create command
func NewCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new product",
		Long: `Create a product under your artisan account (requires login).

Examples:
  hrayfi create --name "Azilal Wool Rug" --price 299.00 \
    --category-id 1 --region-id 4 \
    --description "Handwoven rug using natural wool and vegetable dyes" \
    --materials "Natural wool, vegetable dyes" --dimensions "200x140cm" \
    --image ./rug.jpg

Run 'hrayfi categories' and 'hrayfi regions' to list the lookup ids.`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	cmd.Flags().StringVarP(&createName, "name", "n", "", "Product name (required)")
	cmd.Flags().StringVarP(&createDescription, "description", "d", "", "Product description (required)")
	cmd.Flags().StringVar(&createMaterials, "materials", "", "Materials, free text")
	cmd.Flags().StringVar(&createDimensions, "dimensions", "", "Dimensions, free text")
	cmd.Flags().StringVar(&createCultural, "cultural-significance", "", "Cultural significance, free text")
	cmd.Flags().IntVar(&createCategoryID, "category-id", 0, "Category id (required)")
	cmd.Flags().IntVar(&createRegionID, "region-id", 0, "Region id (required)")
	cmd.Flags().StringVar(&createPrice, "price", "", "Price as a decimal, e.g. 299.00 (required)")
	cmd.Flags().StringVar(&createImage, "image", "", "Path to the main product image")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("description")
	cmd.MarkFlagRequired("category-id")
	cmd.MarkFlagRequired("region-id")
	cmd.MarkFlagRequired("price")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	price, err := cli.ParsePrice(createPrice)
	if err != nil {
		return err
	}
	if err := cli.ValidateImagePath(createImage); err != nil {
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

	in := api.ProductInput{
		Name:                 createName,
		Description:          createDescription,
		Materials:            createMaterials,
		Dimensions:           createDimensions,
		CulturalSignificance: createCultural,
		CategoryID:           createCategoryID,
		RegionID:             createRegionID,
		ArtisanID:            sess.ArtisanID,
		Price:                price,
		ImagePath:            createImage,
	}

	created, err := ctx.Client.CreateProduct(cmd.Context(), in)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	cli.PrintSuccess("Created product %q (#%d)", created.Name, created.ID)
	return nil
}
