package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrayfi/hrayfi-cli/pkg/api"
	"github.com/hrayfi/hrayfi-cli/pkg/chat"
	"github.com/hrayfi/hrayfi-cli/pkg/form"
	"github.com/hrayfi/hrayfi-cli/pkg/session"
)

func sizedApp(t *testing.T, deps Deps) *App {
	t.Helper()
	a := NewApp(deps)
	model, _ := a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return model.(*App)
}

func TestAppStartsOnBrowse(t *testing.T) {
	a := sizedApp(t, testDeps())
	assert.Equal(t, browseView, a.state)
	assert.NotNil(t, a.browse)
}

func TestAppDashboardRequiresSession(t *testing.T) {
	a := sizedApp(t, testDeps())

	model, _ := a.Update(SwitchViewMsg{view: dashboardView})
	a = model.(*App)
	assert.Equal(t, loginView, a.state, "anonymous users bounce to login")
}

func TestAppDashboardWithSession(t *testing.T) {
	deps := testDeps()
	require.NoError(t, deps.Sessions.Save(&session.Session{AccessToken: "t", ArtisanID: 7}))

	a := sizedApp(t, deps)
	model, _ := a.Update(SwitchViewMsg{view: dashboardView})
	a = model.(*App)
	assert.Equal(t, dashboardView, a.state)
	assert.Equal(t, 7, a.dashboard.artisanID)
}

func TestAppStatusBar(t *testing.T) {
	a := sizedApp(t, testDeps())

	model, _ := a.Update(StatusMsg("Product deleted"))
	a = model.(*App)
	assert.Contains(t, a.View(), "Product deleted")
}

func TestAppCtrlCQuits(t *testing.T) {
	a := sizedApp(t, testDeps())
	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestAppChatRemembersReturnView(t *testing.T) {
	a := sizedApp(t, testDeps())

	model, _ := a.Update(SwitchViewMsg{view: chatView, returnTo: browseView})
	a = model.(*App)
	require.Equal(t, chatView, a.state)
	assert.Contains(t, a.View(), chat.Greeting[:20])

	// Esc from chat goes back where the user came from.
	_, cmd := a.chat.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	msg, ok := cmd().(SwitchViewMsg)
	require.True(t, ok)
	assert.Equal(t, browseView, msg.view)
}

func TestLoginValidatesBeforeNetwork(t *testing.T) {
	m := NewLoginModel(testDeps())
	m.SetSize(100, 40)

	cmd := m.submit()
	assert.Nil(t, cmd, "empty credentials must not produce a request")
	assert.Equal(t, form.Editing, m.ctrl.Phase())
	assert.Contains(t, m.View(), "required")
}

func TestLoginSubmitGuard(t *testing.T) {
	m := NewLoginModel(testDeps())
	m.ctrl.Set("username", "amina")
	m.ctrl.Set("password", "s3cret")

	require.NotNil(t, m.submit())
	assert.Equal(t, form.Submitting, m.ctrl.Phase())
	assert.Nil(t, m.submit())
}

func TestLoginSuccessSwitchesToDashboard(t *testing.T) {
	m := NewLoginModel(testDeps())
	m.ctrl.Set("username", "amina")
	m.ctrl.Set("password", "s3cret")
	require.NotNil(t, m.submit())

	result := &api.LoginResult{Access: "acc"}
	result.Artisan.ID = 7
	result.Artisan.Name = "Amina"

	_, cmd := m.Update(loginDoneMsg{result: result})
	require.NotNil(t, cmd)

	// The batch carries the view switch; find it.
	found := false
	if batch, ok := cmd().(tea.BatchMsg); ok {
		for _, c := range batch {
			if msg, ok := c().(SwitchViewMsg); ok && msg.view == dashboardView {
				found = true
			}
		}
	}
	assert.True(t, found, "successful login must open the dashboard")
}

func TestLoginFailureKeepsDraft(t *testing.T) {
	m := NewLoginModel(testDeps())
	m.ctrl.Set("username", "amina")
	m.ctrl.Set("password", "wrong")
	require.NotNil(t, m.submit())

	m, _ = m.Update(loginDoneMsg{err: assert.AnError})
	assert.Equal(t, form.Editing, m.ctrl.Phase())
	assert.Equal(t, "amina", m.ctrl.Value("username"))
	assert.Contains(t, m.View(), assert.AnError.Error())
}

func TestChatScriptedFallback(t *testing.T) {
	m := NewChatModel(testDeps())
	m.SetSize(100, 40)
	m.Init()

	m.input.SetValue("do you ship internationally?")
	cmd := m.ask()
	require.NotNil(t, cmd)

	// No chat endpoint is configured, so the script answers.
	msg, ok := cmd().(chatAnswerMsg)
	require.True(t, ok)
	assert.True(t, msg.scripted)
	assert.Contains(t, msg.answer, "worldwide shipping")

	m, _ = m.Update(msg)
	assert.Contains(t, m.View(), "worldwide shipping")
	assert.False(t, m.waiting)
}

func TestChatIgnoresEmptyQuestion(t *testing.T) {
	m := NewChatModel(testDeps())
	m.SetSize(100, 40)
	m.Init()

	m.input.SetValue("   ")
	assert.Nil(t, m.ask())
}

func TestChatOneQuestionAtATime(t *testing.T) {
	m := NewChatModel(testDeps())
	m.SetSize(100, 40)
	m.Init()

	m.input.SetValue("hello")
	require.NotNil(t, m.ask())
	require.True(t, m.waiting)

	m.input.SetValue("another question")
	assert.Nil(t, m.ask(), "second question waits for the first answer")
}
