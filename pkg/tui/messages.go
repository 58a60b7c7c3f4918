package tui

import (
	"github.com/hrayfi/hrayfi-cli/pkg/api"
	"github.com/hrayfi/hrayfi-cli/pkg/models"
)

// Messages for communication between views

// StatusMsg updates the app-wide status bar.
type StatusMsg string

// SwitchViewMsg asks the app to activate another view.
type SwitchViewMsg struct {
	view      sessionState
	productID int          // detail view target
	returnTo  sessionState // where esc goes back to
	reload    bool         // re-fetch when returning to browse
}

// Fetch results carry the sequence number of the request that produced
// them. A model only applies a result whose seq matches its latest fetch,
// so a slow stale response can never clobber a newer one.

type productsLoadedMsg struct {
	seq   int
	items []models.Product
	err   error
}

type artisanProductsLoadedMsg struct {
	seq   int
	items []models.Product
	err   error
}

type productLoadedMsg struct {
	seq     int
	product *models.Product
	err     error
}

type artisanLoadedMsg struct {
	seq     int
	artisan *models.Artisan
	err     error
}

type lookupsLoadedMsg struct {
	seq        int
	categories []models.Category
	regions    []models.Region
	err        error
}

// Mutation results. At most one mutation per control is in flight, so no
// sequence tokens are needed; the originating model keyed the request.

type loginDoneMsg struct {
	result *api.LoginResult
	err    error
}

type productSavedMsg struct {
	product *models.Product
	created bool
	err     error
}

type productDeletedMsg struct {
	id  int
	err error
}

type profileSavedMsg struct {
	artisan *models.Artisan
	err     error
}

type credentialsSavedMsg struct {
	email string
	err   error
}

// formClosedMsg is emitted by an embedded form when the user cancels it.
type formClosedMsg struct{}

type chatAnswerMsg struct {
	answer   string
	scripted bool
	err      error
}
