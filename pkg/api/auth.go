package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/hrayfi/hrayfi-cli/pkg/models"
	"github.com/hrayfi/hrayfi-cli/pkg/session"
)

// LoginResult is the backend's login response: a token pair plus the
// authenticated artisan.
type LoginResult struct {
	Access  string         `json:"access"`
	Refresh string         `json:"refresh"`
	Artisan models.Artisan `json:"artisan"`
}

// RegisterInput is the artisan sign-up payload, submitted as multipart so an
// optional profile image can be attached.
type RegisterInput struct {
	Username  string
	Email     string
	Phone     string
	Password  string
	Name      string
	Biography string
	RegionID  int
	ImagePath string
}

// Login authenticates and persists the resulting session in the store.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	payload := map[string]string{
		"username": username,
		"password": password,
	}

	var result LoginResult
	if err := c.sendJSON(ctx, http.MethodPost, "/api/auth/login/", payload, &result, false); err != nil {
		return nil, err
	}

	sess := &session.Session{
		AccessToken:  result.Access,
		RefreshToken: result.Refresh,
		ArtisanID:    result.Artisan.ID,
		ArtisanEmail: result.Artisan.Email,
	}
	if err := c.sessions.Save(sess); err != nil {
		return nil, err
	}
	return &result, nil
}

// Register creates a new artisan account. The backend asks the user to log
// in afterwards; no session is created here.
func (c *Client) Register(ctx context.Context, in RegisterInput) error {
	fields := [][2]string{
		{"username", in.Username},
		{"email", in.Email},
		{"phone", in.Phone},
		{"password", in.Password},
		{"name", in.Name},
		{"biography", in.Biography},
	}
	if in.RegionID != 0 {
		fields = append(fields, [2]string{"region_id", strconv.Itoa(in.RegionID)})
	}

	body, contentType, err := encodeForm(fields, "main_image", in.ImagePath)
	if err != nil {
		return err
	}

	resp, err := c.do(ctx, http.MethodPost, c.baseURL+"/api/auth/register/", body, contentType, false)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return checkStatus(resp)
}

// Logout clears the persisted session. Tokens are bearer-only; there is no
// server-side revocation endpoint.
func (c *Client) Logout() error {
	return c.sessions.Clear()
}
