package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/hrayfi/hrayfi-cli/pkg/models"
)

// ProductInput carries the editable fields of a product. IDs reference
// backend lookup entities; ImagePath, when set, is a local file uploaded as
// the product's main image.
type ProductInput struct {
	Name                 string
	Description          string
	Materials            string
	Dimensions           string
	CulturalSignificance string
	CategoryID           int
	RegionID             int
	ArtisanID            int
	Price                models.Price
	ImagePath            string
}

func (in ProductInput) formFields() [][2]string {
	fields := [][2]string{
		{"name", in.Name},
		{"description", in.Description},
		{"materials", in.Materials},
		{"dimensions", in.Dimensions},
		{"cultural_significance", in.CulturalSignificance},
		{"category_id", strconv.Itoa(in.CategoryID)},
		{"region_id", strconv.Itoa(in.RegionID)},
		{"price", in.Price.String()},
	}
	if in.ArtisanID != 0 {
		fields = append(fields, [2]string{"artisan_id", strconv.Itoa(in.ArtisanID)})
	}
	return fields
}

// ListProducts fetches the public catalog.
func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	return getList[models.Product](ctx, c, "/api/products/", false)
}

// GetProduct fetches a single product by id.
func (c *Client) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	return getJSON[models.Product](ctx, c, fmt.Sprintf("/api/products/%d/", id), false)
}

// ListArtisanProducts fetches the products owned by one artisan. The
// dashboard calls this with the authenticated artisan's id.
func (c *Client) ListArtisanProducts(ctx context.Context, artisanID int) ([]models.Product, error) {
	return getList[models.Product](ctx, c, fmt.Sprintf("/api/artisans/%d/products/", artisanID), true)
}

// CreateProduct creates a product and returns the server's copy, including
// the assigned id.
func (c *Client) CreateProduct(ctx context.Context, in ProductInput) (*models.Product, error) {
	body, contentType, err := encodeForm(in.formFields(), "main_image", in.ImagePath)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, http.MethodPost, c.baseURL+"/api/products/", body, contentType, true)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var created models.Product
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return &created, nil
}

// UpdateProduct patches a product and returns the server's copy. A plain
// JSON PATCH is used unless a replacement image is supplied, in which case
// the whole payload goes up as multipart form data.
func (c *Client) UpdateProduct(ctx context.Context, id int, in ProductInput) (*models.Product, error) {
	path := fmt.Sprintf("/api/products/%d/", id)

	if in.ImagePath != "" {
		body, contentType, err := encodeForm(in.formFields(), "main_image", in.ImagePath)
		if err != nil {
			return nil, err
		}
		resp, err := c.do(ctx, http.MethodPatch, c.baseURL+path, body, contentType, true)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if err := checkStatus(resp); err != nil {
			return nil, err
		}
		var updated models.Product
		if err := json.NewDecoder(resp.Body).Decode(&updated); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		return &updated, nil
	}

	payload := map[string]any{
		"name":                  in.Name,
		"description":           in.Description,
		"materials":             in.Materials,
		"dimensions":            in.Dimensions,
		"cultural_significance": in.CulturalSignificance,
		"category_id":           in.CategoryID,
		"region_id":             in.RegionID,
		"price":                 in.Price.String(),
	}

	var updated models.Product
	if err := c.sendJSON(ctx, http.MethodPatch, path, payload, &updated, true); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteProduct removes a product. The backend returns no body on success;
// callers reconcile their lists only after a nil error.
func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	resp, err := c.do(ctx, http.MethodDelete, c.baseURL+fmt.Sprintf("/api/products/%d/", id), nil, "", true)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return checkStatus(resp)
}
