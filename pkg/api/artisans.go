package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hrayfi/hrayfi-cli/pkg/models"
)

// ArtisanInput carries the self-service editable profile fields.
type ArtisanInput struct {
	Name      string
	Phone     string
	Biography string
	RegionID  int
	ImagePath string
}

// CredentialsInput is the change-credentials payload. NewPassword may be
// empty to change only email/username.
type CredentialsInput struct {
	Email           string
	Username        string
	CurrentPassword string
	NewPassword     string
}

// GetArtisan fetches an artisan profile.
func (c *Client) GetArtisan(ctx context.Context, id int) (*models.Artisan, error) {
	return getJSON[models.Artisan](ctx, c, fmt.Sprintf("/api/artisans/%d/", id), true)
}

// UpdateArtisan patches the artisan's profile and returns the server's copy.
func (c *Client) UpdateArtisan(ctx context.Context, id int, in ArtisanInput) (*models.Artisan, error) {
	path := fmt.Sprintf("/api/artisans/%d/", id)

	if in.ImagePath != "" {
		fields := [][2]string{
			{"name", in.Name},
			{"phone", in.Phone},
			{"biography", in.Biography},
		}
		if in.RegionID != 0 {
			fields = append(fields, [2]string{"region_id", fmt.Sprintf("%d", in.RegionID)})
		}
		body, contentType, err := encodeForm(fields, "main_image", in.ImagePath)
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
		var updated models.Artisan
		if err := json.NewDecoder(resp.Body).Decode(&updated); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		return &updated, nil
	}

	payload := map[string]any{
		"name":      in.Name,
		"phone":     in.Phone,
		"biography": in.Biography,
	}
	if in.RegionID != 0 {
		payload["region_id"] = in.RegionID
	}

	var updated models.Artisan
	if err := c.sendJSON(ctx, http.MethodPatch, path, payload, &updated, true); err != nil {
		return nil, err
	}
	return &updated, nil
}

// ChangeCredentials updates the artisan's login email/username/password.
func (c *Client) ChangeCredentials(ctx context.Context, artisanID int, in CredentialsInput) error {
	payload := map[string]any{
		"email":            in.Email,
		"username":         in.Username,
		"current_password": in.CurrentPassword,
		"new_password":     in.NewPassword,
	}
	path := fmt.Sprintf("/api/artisans/%d/change-password/", artisanID)
	return c.sendJSON(ctx, http.MethodPost, path, payload, nil, true)
}
