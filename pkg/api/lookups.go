package api

import (
	"context"

	"github.com/hrayfi/hrayfi-cli/pkg/models"
)

// ListCategories fetches the category lookup table.
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	return getList[models.Category](ctx, c, "/api/categories/", false)
}

// ListRegions fetches the region lookup table.
func (c *Client) ListRegions(ctx context.Context) ([]models.Region, error) {
	return getList[models.Region](ctx, c, "/api/regions/", false)
}
