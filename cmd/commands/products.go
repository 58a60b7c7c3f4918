package commands

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/hrayfi/hrayfi-cli/internal/cli"
	"github.com/hrayfi/hrayfi-cli/pkg/catalog"
	"github.com/hrayfi/hrayfi-cli/pkg/models"
)

// ProductsResult represents the output structure for the products command
type ProductsResult struct {
	Items []models.Product `json:"items" yaml:"items"`
	Count int              `json:"count" yaml:"count"`
	Total int              `json:"total" yaml:"total"`
	Page  int              `json:"page" yaml:"page"`
	Pages int              `json:"pages" yaml:"pages"`
}

var (
	productsSearch   string
	productsCategory string
	productsRegion   string
	productsMinPrice float64
	productsMaxPrice float64
	productsSort     string
	productsPage     int
	productsMine     bool
)

// NewProductsCommand creates the products command
func NewProductsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Browse and filter the product catalog",
		Long: `Fetch the catalog and display a filtered, sorted, paginated view.

Filtering happens locally over the fetched list, so the same flags work
against the public catalog and, with --mine, against your own products.

Examples:
  # Everything, first page
  hrayfi products

  # Search across names, descriptions, artisans, materials...
  hrayfi products --search "azilal wool"

  # Cheap pottery, cheapest first
  hrayfi products --category Ceramics --max-price 100 --sort price-low

  # Your own products (requires login)
  hrayfi products --mine

  # JSON output for scripting
  hrayfi products -o json`,
		Args: cobra.NoArgs,
		RunE: runProducts,
	}

	cmd.Flags().StringVarP(&productsSearch, "search", "s", "", "Free-text search across product fields")
	cmd.Flags().StringVarP(&productsCategory, "category", "c", catalog.AllCategories, "Filter by category name")
	cmd.Flags().StringVarP(&productsRegion, "region", "r", catalog.AllRegions, "Filter by region name")
	cmd.Flags().Float64Var(&productsMinPrice, "min-price", 0, "Minimum price (inclusive)")
	cmd.Flags().Float64Var(&productsMaxPrice, "max-price", 0, "Maximum price (inclusive, 0 = unbounded)")
	cmd.Flags().StringVar(&productsSort, "sort", "", "Sort key: popularity, newest, price-low, price-high, rating")
	cmd.Flags().IntVarP(&productsPage, "page", "p", 1, "Page number (1-indexed)")
	cmd.Flags().BoolVar(&productsMine, "mine", false, "Show only your own products (requires login)")

	return cmd
}

func runProducts(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}

	sortKey := catalog.SortKey(ctx.Settings.UI.DefaultSort)
	if productsSort != "" {
		sortKey, err = cli.ValidateSortKey(productsSort)
		if err != nil {
			return err
		}
	}

	var items []models.Product
	if productsMine {
		sess, err := ctx.RequireSession()
		if err != nil {
			return err
		}
		items, err = ctx.Client.ListArtisanProducts(cmd.Context(), sess.ArtisanID)
		if err != nil {
			return fmt.Errorf("failed to fetch your products: %w", err)
		}
	} else {
		items, err = ctx.Client.ListProducts(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to fetch products: %w", err)
		}
	}

	criteria := catalog.NewCriteria(ctx.Settings.UI.PageSize).
		WithSearch(productsSearch).
		WithCategory(productsCategory).
		WithRegion(productsRegion).
		WithSort(sortKey)
	if productsMinPrice > 0 || productsMaxPrice > 0 {
		max := productsMaxPrice
		if max == 0 {
			max = math.Inf(1)
		}
		criteria = criteria.WithPriceRange(productsMinPrice, max)
	}
	criteria = criteria.WithPage(productsPage)

	page := catalog.Apply(items, criteria)
	result := ProductsResult{
		Items: page.Items,
		Count: len(page.Items),
		Total: page.Total,
		Page:  page.Page,
		Pages: page.PageCount,
	}

	outputFormat, _ := cmd.Flags().GetString("output")
	switch outputFormat {
	case "json", "yaml":
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, result)
	default:
		return outputProductsText(cmd, ctx.Settings, result)
	}
}

func outputProductsText(cmd *cobra.Command, settings *models.Settings, result ProductsResult) error {
	if result.Total == 0 {
		cli.PrintInfo("No products found")
		return nil
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("ID", "Name", "Category", "Region", "Artisan", "Price")
	for _, p := range result.Items {
		table.Row(
			fmt.Sprintf("%d", p.ID),
			cli.TruncateString(p.Name, 32),
			p.Category.Name,
			p.Region.Name,
			cli.TruncateString(p.ArtisanName(), 24),
			cli.FormatPrice(settings.UI.Currency, p.Price),
		)
	}
	table.Flush()

	fmt.Fprintf(cmd.OutOrStdout(), "\nShowing %d of %d products (page %d/%d)\n",
		result.Count, result.Total, result.Page, result.Pages)
	return nil
}
