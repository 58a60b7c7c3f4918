package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hrayfi/hrayfi-cli/pkg/api"
	"github.com/hrayfi/hrayfi-cli/pkg/form"
)

// LoginModel authenticates an artisan so the dashboard can open.
type LoginModel struct {
	deps Deps

	ctrl     *form.Controller[*api.LoginResult]
	inputs   []textinput.Model
	focusIdx int

	width  int
	height int
}

func NewLoginModel(deps Deps) *LoginModel {
	ctrl := form.New[*api.LoginResult](nil,
		form.Field{Name: "username", Label: "Username", Required: true},
		form.Field{Name: "password", Label: "Password", Required: true, Secret: true},
	)
	ctrl.BeginEdit(nil)

	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 128
	password.EchoMode = textinput.EchoPassword

	return &LoginModel{
		deps:   deps,
		ctrl:   ctrl,
		inputs: []textinput.Model{username, password},
	}
}

func (m *LoginModel) Init() tea.Cmd {
	// Re-entering after a completed login starts a fresh form.
	if m.ctrl.Phase() == form.Viewing {
		m.ctrl.BeginEdit(nil)
		for i := range m.inputs {
			m.inputs[i].SetValue("")
		}
		m.setFocus(0)
	}
	return textinput.Blink
}

func (m *LoginModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *LoginModel) Update(msg tea.Msg) (*LoginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case loginDoneMsg:
		m.ctrl.Resolve(msg.result, msg.err)
		if msg.err != nil {
			return m, nil
		}
		return m, tea.Batch(
			func() tea.Msg { return SwitchViewMsg{view: dashboardView} },
			func() tea.Msg { return StatusMsg("Logged in as " + msg.result.Artisan.Name) },
		)

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return SwitchViewMsg{view: browseView} }

		case "tab", "down":
			m.setFocus((m.focusIdx + 1) % len(m.inputs))
			return m, nil

		case "shift+tab", "up":
			m.setFocus((m.focusIdx + len(m.inputs) - 1) % len(m.inputs))
			return m, nil

		case "enter":
			return m, m.submit()
		}

		if m.ctrl.Phase() == form.Submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.inputs[m.focusIdx], cmd = m.inputs[m.focusIdx].Update(msg)
		m.ctrl.Set(m.ctrl.Fields()[m.focusIdx].Name, m.inputs[m.focusIdx].Value())
		return m, cmd
	}

	return m, nil
}

func (m *LoginModel) setFocus(idx int) {
	m.inputs[m.focusIdx].Blur()
	m.focusIdx = idx
	m.inputs[m.focusIdx].Focus()
}

func (m *LoginModel) submit() tea.Cmd {
	if _, ok := m.ctrl.Submit(); !ok {
		return nil
	}

	username := m.ctrl.Value("username")
	password := m.ctrl.Value("password")
	client := m.deps.Client
	return func() tea.Msg {
		result, err := client.Login(context.Background(), username, password)
		return loginDoneMsg{result: result, err: err}
	}
}

func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Artisan login"))
	b.WriteString("\n\n")

	for i, f := range m.ctrl.Fields() {
		label := f.Label
		if i == m.focusIdx {
			label = headerStyle.Render(label)
		} else {
			label = dimStyle.Render(label)
		}
		b.WriteString("  " + label + "\n")
		b.WriteString("  " + m.inputs[i].View() + "\n\n")
	}

	if m.ctrl.Phase() == form.Submitting {
		b.WriteString(dimStyle.Render("  Signing in..."))
		b.WriteString("\n")
	} else if err := m.ctrl.Err(); err != nil {
		b.WriteString(errorStyle.Render("  " + err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  New here? Register with 'hrayfi register' from your shell."))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("tab next field · enter sign in · esc back"))
	return b.String()
}
