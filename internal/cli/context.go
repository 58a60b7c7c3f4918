package cli

import (
	"fmt"

	"github.com/hrayfi/hrayfi-cli/pkg/api"
	"github.com/hrayfi/hrayfi-cli/pkg/config"
	"github.com/hrayfi/hrayfi-cli/pkg/models"
	"github.com/hrayfi/hrayfi-cli/pkg/session"
)

// CommandContext wires the pieces every command needs: settings, the
// session store and an API client built from both.
type CommandContext struct {
	Settings *models.Settings
	Sessions session.Store
	Client   *api.Client
}

// NewCommandContext loads settings and builds the client.
func NewCommandContext() (*CommandContext, error) {
	settings, err := config.ReadSettings()
	if err != nil {
		return nil, err
	}

	sessions := session.NewFileStore(config.Dir())
	client := api.New(settings.API.BaseURL, sessions)
	if settings.API.ChatURL != "" {
		client.SetChatURL(settings.API.ChatURL)
	}

	return &CommandContext{
		Settings: settings,
		Sessions: sessions,
		Client:   client,
	}, nil
}

// RequireSession returns the stored session or an error telling the user to
// log in. Commands touching artisan-owned resources call this up front.
func (c *CommandContext) RequireSession() (*session.Session, error) {
	sess, err := c.Sessions.Load()
	if err != nil {
		return nil, err
	}
	if !sess.Authenticated() {
		return nil, fmt.Errorf("not logged in. Run 'hrayfi login' first")
	}
	return sess, nil
}
