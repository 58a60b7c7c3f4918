package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/hrayfi/hrayfi-cli/internal/cli"
	"github.com/hrayfi/hrayfi-cli/pkg/models"
)

// DetailModel shows one product full-screen with scrollable content.
type DetailModel struct {
	deps Deps

	productID int
	returnTo  sessionState

	product  *models.Product
	loading  bool
	loadErr  error
	fetchSeq int

	viewport viewport.Model
	spin     spinner.Model
	width    int
	height   int
}

func NewDetailModel(deps Deps) *DetailModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &DetailModel{
		deps:     deps,
		viewport: viewport.New(80, 20),
		spin:     sp,
	}
}

// SetProduct targets the view at a product; Init starts the fetch.
func (m *DetailModel) SetProduct(id int, returnTo sessionState) {
	m.productID = id
	m.returnTo = returnTo
	m.product = nil
	m.loadErr = nil
}

func (m *DetailModel) Init() tea.Cmd {
	return tea.Batch(m.fetch(), m.spin.Tick)
}

func (m *DetailModel) fetch() tea.Cmd {
	m.fetchSeq++
	m.loading = true

	seq := m.fetchSeq
	id := m.productID
	client := m.deps.Client
	return func() tea.Msg {
		p, err := client.GetProduct(context.Background(), id)
		return productLoadedMsg{seq: seq, product: p, err: err}
	}
}

func (m *DetailModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width - 6
	m.viewport.Height = height - 8
	if m.product != nil {
		m.viewport.SetContent(m.renderProduct())
	}
}

func (m *DetailModel) Update(msg tea.Msg) (*DetailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case productLoadedMsg:
		if msg.seq != m.fetchSeq {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.loadErr = msg.err
			return m, nil
		}
		m.product = msg.product
		m.viewport.SetContent(m.renderProduct())
		m.viewport.GotoTop()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			back := m.returnTo
			return m, func() tea.Msg { return SwitchViewMsg{view: back} }

		case "R":
			return m, tea.Batch(m.fetch(), m.spin.Tick)

		case "y":
			if m.product != nil {
				link := fmt.Sprintf("%s/product/%d", m.deps.Settings.API.BaseURL, m.product.ID)
				if err := clipboard.WriteAll(link); err != nil {
					return m, func() tea.Msg { return StatusMsg("Copy failed: " + err.Error()) }
				}
				return m, func() tea.Msg { return StatusMsg("Product link copied") }
			}
			return m, nil

		case "C":
			return m, func() tea.Msg { return SwitchViewMsg{view: chatView, returnTo: detailView} }
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *DetailModel) renderProduct() string {
	p := m.product
	wrap := m.viewport.Width - 2
	if wrap < 20 {
		wrap = 20
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(p.Name))
	b.WriteString("\n")
	b.WriteString(priceStyle.Render(cli.FormatPrice(m.deps.Settings.UI.Currency, p.Price)))
	if p.Rating > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("   ★ %.1f (%d reviews)", p.Rating, p.ReviewCount)))
	}
	b.WriteString("\n\n")

	b.WriteString(wordwrap.String(p.Description, wrap))
	b.WriteString("\n\n")

	section := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(headerStyle.Render(label))
		b.WriteString("\n")
		b.WriteString(wordwrap.String(value, wrap))
		b.WriteString("\n\n")
	}

	section("Materials", p.Materials)
	section("Dimensions", p.Dimensions)
	section("Cultural significance", p.CulturalSignificance)

	b.WriteString(dimStyle.Render(fmt.Sprintf("Category: %s   Region: %s", p.Category.Name, p.Region.Name)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Artisan: " + p.ArtisanName()))
	if p.Artisan != nil && p.Artisan.Biography != "" {
		b.WriteString("\n\n")
		b.WriteString(headerStyle.Render("About the artisan"))
		b.WriteString("\n")
		b.WriteString(wordwrap.String(p.Artisan.Biography, wrap))
	}
	return b.String()
}

func (m *DetailModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Product details"))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(fmt.Sprintf("  %s Loading product...\n", m.spin.View()))
	case m.loadErr != nil:
		b.WriteString(errorStyle.Render("  Could not load product: " + m.loadErr.Error()))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("  Press R to retry, esc to go back."))
		b.WriteString("\n")
	default:
		b.WriteString(paneStyle.Render(m.viewport.View()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ scroll · y copy link · C chat · R reload · esc back"))
	return b.String()
}
