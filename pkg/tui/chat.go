package tui

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/hrayfi/hrayfi-cli/pkg/chat"
)

type chatTurn struct {
	question string
	answer   string
	scripted bool
}

// ChatModel is the FAQ assistant. Questions go to the remote chat endpoint
// when one is configured; otherwise, or on any failure, the built-in script
// answers so the assistant never goes silent.
type ChatModel struct {
	deps     Deps
	returnTo sessionState

	turns   []chatTurn
	waiting bool

	input    textinput.Model
	viewport viewport.Model
	width    int
	height   int
}

func NewChatModel(deps Deps) *ChatModel {
	ti := textinput.New()
	ti.Placeholder = "Ask about our crafts, shipping, prices..."
	ti.CharLimit = 300
	ti.Focus()

	return &ChatModel{
		deps:     deps,
		input:    ti,
		viewport: viewport.New(80, 20),
	}
}

func (m *ChatModel) SetReturnView(state sessionState) {
	m.returnTo = state
}

func (m *ChatModel) Init() tea.Cmd {
	if len(m.turns) == 0 {
		m.turns = append(m.turns, chatTurn{answer: chat.Greeting, scripted: true})
		m.refreshHistory()
	}
	return textinput.Blink
}

func (m *ChatModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width - 4
	m.viewport.Height = height - 10
	m.input.Width = width - 10
	m.refreshHistory()
}

func (m *ChatModel) Update(msg tea.Msg) (*ChatModel, tea.Cmd) {
	switch msg := msg.(type) {
	case chatAnswerMsg:
		m.waiting = false
		last := &m.turns[len(m.turns)-1]
		last.answer = msg.answer
		last.scripted = msg.scripted
		m.refreshHistory()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			back := m.returnTo
			return m, func() tea.Msg { return SwitchViewMsg{view: back} }

		case "enter":
			return m, m.ask()

		case "ctrl+y":
			if answer := m.lastAnswer(); answer != "" {
				if err := clipboard.WriteAll(answer); err != nil {
					return m, statusCmd("Copy failed: " + err.Error())
				}
				return m, statusCmd("Answer copied")
			}
			return m, nil

		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *ChatModel) ask() tea.Cmd {
	question := strings.TrimSpace(m.input.Value())
	if question == "" || m.waiting {
		return nil
	}
	m.input.SetValue("")
	m.waiting = true
	m.turns = append(m.turns, chatTurn{question: question})
	m.refreshHistory()

	client := m.deps.Client
	return func() tea.Msg {
		answer, err := client.Chat(context.Background(), question)
		if err != nil {
			// The scripted responder covers endpoint-less configs and
			// remote failures alike.
			return chatAnswerMsg{answer: chat.Respond(question), scripted: true}
		}
		return chatAnswerMsg{answer: answer}
	}
}

func (m *ChatModel) lastAnswer() string {
	for i := len(m.turns) - 1; i >= 0; i-- {
		if m.turns[i].answer != "" {
			return m.turns[i].answer
		}
	}
	return ""
}

func (m *ChatModel) refreshHistory() {
	wrap := m.viewport.Width - 2
	if wrap < 20 {
		wrap = 20
	}

	var b strings.Builder
	for _, t := range m.turns {
		if t.question != "" {
			b.WriteString(headerStyle.Render("You: "))
			b.WriteString(wordwrap.String(t.question, wrap))
			b.WriteString("\n")
		}
		if t.answer != "" {
			b.WriteString(priceStyle.Render("Hrayfi: "))
			b.WriteString(wordwrap.String(t.answer, wrap))
			b.WriteString("\n")
		} else if m.waiting {
			b.WriteString(dimStyle.Render("Hrayfi is typing..."))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	m.viewport.SetContent(b.String())
	m.viewport.GotoBottom()
}

func (m *ChatModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Ask Hrayfi"))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n\n")
	b.WriteString(activePaneStyle.Render(m.input.View()))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter ask · ↑/↓ scroll · ctrl+y copy answer · esc back"))
	return b.String()
}
