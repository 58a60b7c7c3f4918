package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hrayfi/hrayfi-cli/pkg/api"
	"github.com/hrayfi/hrayfi-cli/pkg/models"
	"github.com/hrayfi/hrayfi-cli/pkg/session"
)

type sessionState int

const (
	browseView sessionState = iota
	detailView
	loginView
	dashboardView
	chatView
)

// Deps are the injected collaborators every screen shares. Session state is
// only written by the login/logout flows; everything else reads it through
// the store.
type Deps struct {
	Settings *models.Settings
	Sessions session.Store
	Client   *api.Client
}

type App struct {
	deps      Deps
	state     sessionState
	browse    *BrowseModel
	detail    *DetailModel
	login     *LoginModel
	dashboard *DashboardModel
	chat      *ChatModel
	width     int
	height    int
	statusMsg string
}

func NewApp(deps Deps) *App {
	return &App{
		deps:   deps,
		state:  browseView,
		browse: NewBrowseModel(deps),
	}
}

func (a *App) Init() tea.Cmd {
	return a.browse.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Pass window size to all sub-models
		if a.browse != nil {
			a.browse.SetSize(msg.Width, msg.Height)
		}
		if a.detail != nil {
			a.detail.SetSize(msg.Width, msg.Height)
		}
		if a.login != nil {
			a.login.SetSize(msg.Width, msg.Height)
		}
		if a.dashboard != nil {
			a.dashboard.SetSize(msg.Width, msg.Height)
		}
		if a.chat != nil {
			a.chat.SetSize(msg.Width, msg.Height)
		}

	case tea.KeyMsg:
		// Global keybindings
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	case StatusMsg:
		a.statusMsg = string(msg)
		return a, nil

	case SwitchViewMsg:
		return a.switchView(msg)
	}

	// Route updates to the active view
	var cmd tea.Cmd
	switch a.state {
	case browseView:
		a.browse, cmd = a.browse.Update(msg)
	case detailView:
		a.detail, cmd = a.detail.Update(msg)
	case loginView:
		a.login, cmd = a.login.Update(msg)
	case dashboardView:
		a.dashboard, cmd = a.dashboard.Update(msg)
	case chatView:
		a.chat, cmd = a.chat.Update(msg)
	}

	return a, cmd
}

func (a *App) switchView(msg SwitchViewMsg) (tea.Model, tea.Cmd) {
	a.statusMsg = ""

	switch msg.view {
	case browseView:
		a.state = browseView
		if a.browse == nil {
			a.browse = NewBrowseModel(a.deps)
		}
		a.browse.SetSize(a.width, a.height)
		if msg.reload {
			return a, a.browse.Init()
		}
		return a, nil

	case detailView:
		a.state = detailView
		if a.detail == nil {
			a.detail = NewDetailModel(a.deps)
		}
		a.detail.SetSize(a.width, a.height)
		a.detail.SetProduct(msg.productID, msg.returnTo)
		return a, a.detail.Init()

	case loginView:
		a.state = loginView
		if a.login == nil {
			a.login = NewLoginModel(a.deps)
		}
		a.login.SetSize(a.width, a.height)
		return a, a.login.Init()

	case dashboardView:
		// The dashboard needs a session; bounce to login when there is none.
		sess, err := a.deps.Sessions.Load()
		if err != nil || !sess.Authenticated() {
			return a.switchView(SwitchViewMsg{view: loginView})
		}
		a.state = dashboardView
		if a.dashboard == nil {
			a.dashboard = NewDashboardModel(a.deps)
		}
		a.dashboard.SetSize(a.width, a.height)
		a.dashboard.SetArtisan(sess.ArtisanID)
		return a, a.dashboard.Init()

	case chatView:
		a.state = chatView
		if a.chat == nil {
			a.chat = NewChatModel(a.deps)
		}
		a.chat.SetSize(a.width, a.height)
		a.chat.SetReturnView(msg.returnTo)
		return a, a.chat.Init()
	}
	return a, nil
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	var content string
	switch a.state {
	case browseView:
		content = a.browse.View()
	case detailView:
		content = a.detail.View()
	case loginView:
		content = a.login.View()
	case dashboardView:
		content = a.dashboard.View()
	case chatView:
		content = a.chat.View()
	default:
		content = "Unknown view"
	}

	// Add status bar if there's a message
	if a.statusMsg != "" {
		statusBar := statusBarStyle.Render(a.statusMsg)
		content = lipgloss.JoinVertical(lipgloss.Top, content, statusBar)
	}

	return content
}
