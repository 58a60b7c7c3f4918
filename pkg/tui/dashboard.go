package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hrayfi/hrayfi-cli/internal/cli"
	"github.com/hrayfi/hrayfi-cli/pkg/catalog"
	"github.com/hrayfi/hrayfi-cli/pkg/models"
)

type dashboardMode int

const (
	dashList dashboardMode = iota
	dashForm
	dashProfile
)

// DashboardModel is the seller workspace: the artisan's own products with
// create/edit/delete, plus profile and credential editing.
type DashboardModel struct {
	deps      Deps
	artisanID int

	items    []models.Product
	loading  bool
	loadErr  error
	fetchSeq int

	categories []models.Category
	regions    []models.Region
	lookupSeq  int

	cursor   int
	deleting map[int]bool

	mode    dashboardMode
	form    *ProductFormModel
	profile *ProfileModel
	confirm *ConfirmationModel
	spin    spinner.Model

	width  int
	height int
}

func NewDashboardModel(deps Deps) *DashboardModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &DashboardModel{
		deps:     deps,
		deleting: map[int]bool{},
		confirm:  NewConfirmation(),
		spin:     sp,
	}
}

func (m *DashboardModel) SetArtisan(id int) {
	if id != m.artisanID {
		m.artisanID = id
		m.items = nil
		m.profile = nil
	}
	m.mode = dashList
}

func (m *DashboardModel) Init() tea.Cmd {
	return tea.Batch(m.fetch(), m.fetchLookups(), m.spin.Tick)
}

// fetch reloads the artisan's products. The list clears first so a failed
// load can never leave stale rows behind the error message.
func (m *DashboardModel) fetch() tea.Cmd {
	m.fetchSeq++
	m.loading = true
	m.loadErr = nil
	m.items = nil
	m.cursor = 0

	seq := m.fetchSeq
	id := m.artisanID
	client := m.deps.Client
	return func() tea.Msg {
		items, err := client.ListArtisanProducts(context.Background(), id)
		return artisanProductsLoadedMsg{seq: seq, items: items, err: err}
	}
}

// fetchLookups loads the category and region choices used by the
// product form.
func (m *DashboardModel) fetchLookups() tea.Cmd {
	m.lookupSeq++
	seq := m.lookupSeq
	client := m.deps.Client
	return func() tea.Msg {
		categories, err := client.ListCategories(context.Background())
		if err != nil {
			return lookupsLoadedMsg{seq: seq, err: err}
		}
		regions, err := client.ListRegions(context.Background())
		return lookupsLoadedMsg{seq: seq, categories: categories, regions: regions, err: err}
	}
}

func (m *DashboardModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	if m.form != nil {
		m.form.SetSize(width, height)
	}
	if m.profile != nil {
		m.profile.SetSize(width, height)
	}
}

func (m *DashboardModel) Update(msg tea.Msg) (*DashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case artisanProductsLoadedMsg:
		if msg.seq != m.fetchSeq {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.loadErr = msg.err
			m.items = nil
			return m, nil
		}
		m.items = msg.items
		if m.cursor >= len(m.items) {
			m.cursor = 0
		}
		return m, nil

	case lookupsLoadedMsg:
		if msg.seq != m.lookupSeq {
			return m, nil
		}
		if msg.err == nil {
			m.categories = msg.categories
			m.regions = msg.regions
		}
		return m, nil

	case productSavedMsg:
		var cmd tea.Cmd
		if m.form != nil {
			m.form, cmd = m.form.Update(msg)
		}
		if msg.err != nil {
			return m, cmd
		}
		// The saved entity only enters the list after the backend
		// confirmed it.
		if msg.created {
			m.items = catalog.ReconcileCreate(m.items, *msg.product)
		} else {
			m.items = catalog.ReconcileUpdate(m.items, *msg.product)
		}
		m.mode = dashList
		verb := "updated"
		if msg.created {
			verb = "created"
		}
		return m, tea.Batch(cmd, statusCmd(fmt.Sprintf("Product %q %s", msg.product.Name, verb)))

	case productDeletedMsg:
		delete(m.deleting, msg.id)
		if msg.err != nil {
			return m, statusCmd("Delete failed: " + msg.err.Error())
		}
		m.items = catalog.ReconcileDelete(m.items, msg.id)
		if m.cursor >= len(m.items) && m.cursor > 0 {
			m.cursor--
		}
		return m, statusCmd("Product deleted")

	case profileSavedMsg, credentialsSavedMsg, artisanLoadedMsg:
		if m.profile != nil {
			var cmd tea.Cmd
			m.profile, cmd = m.profile.Update(msg)
			return m, cmd
		}
		return m, nil

	case formClosedMsg:
		m.mode = dashList
		return m, nil

	case spinner.TickMsg:
		if m.mode == dashProfile && m.profile != nil {
			var cmd tea.Cmd
			m.profile, cmd = m.profile.Update(msg)
			return m, cmd
		}
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *DashboardModel) handleKey(msg tea.KeyMsg) (*DashboardModel, tea.Cmd) {
	if m.confirm.Active() {
		return m, m.confirm.Update(msg)
	}

	switch m.mode {
	case dashForm:
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd

	case dashProfile:
		var cmd tea.Cmd
		m.profile, cmd = m.profile.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "esc", "q":
		return m, func() tea.Msg { return SwitchViewMsg{view: browseView} }

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
		return m, nil

	case "n":
		m.form = NewProductFormModel(m.deps, m.artisanID, m.categories, m.regions)
		m.form.SetSize(m.width, m.height)
		m.form.SetProduct(nil)
		m.mode = dashForm
		return m, m.form.Init()

	case "enter", "e":
		if m.cursor < len(m.items) {
			p := m.items[m.cursor]
			m.form = NewProductFormModel(m.deps, m.artisanID, m.categories, m.regions)
			m.form.SetSize(m.width, m.height)
			m.form.SetProduct(&p)
			m.mode = dashForm
			return m, m.form.Init()
		}
		return m, nil

	case "d":
		if m.cursor >= len(m.items) {
			return m, nil
		}
		p := m.items[m.cursor]
		if m.deleting[p.ID] {
			// A delete for this row is already on the wire.
			return m, nil
		}
		m.confirm.Show(ConfirmationConfig{
			Message:     fmt.Sprintf("Delete %q?", p.Name),
			Warning:     "This cannot be undone.",
			Destructive: true,
		}, func() tea.Cmd {
			return m.deleteProduct(p.ID)
		}, nil)
		return m, nil

	case "P":
		if m.profile == nil {
			m.profile = NewProfileModel(m.deps, m.artisanID)
			m.profile.SetSize(m.width, m.height)
		}
		m.mode = dashProfile
		return m, m.profile.Init()

	case "L":
		if err := m.deps.Client.Logout(); err != nil {
			return m, statusCmd("Logout failed: " + err.Error())
		}
		return m, tea.Batch(
			func() tea.Msg { return SwitchViewMsg{view: browseView} },
			statusCmd("Logged out"),
		)

	case "R":
		return m, tea.Batch(m.fetch(), m.fetchLookups(), m.spin.Tick)

	case "C":
		return m, func() tea.Msg { return SwitchViewMsg{view: chatView, returnTo: dashboardView} }
	}

	return m, nil
}

func (m *DashboardModel) deleteProduct(id int) tea.Cmd {
	m.deleting[id] = true
	client := m.deps.Client
	return func() tea.Msg {
		err := client.DeleteProduct(context.Background(), id)
		return productDeletedMsg{id: id, err: err}
	}
}

func statusCmd(s string) tea.Cmd {
	return func() tea.Msg { return StatusMsg(s) }
}

func (m *DashboardModel) View() string {
	switch m.mode {
	case dashForm:
		return m.form.View()
	case dashProfile:
		return m.profile.View()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("My workshop"))
	b.WriteString("\n\n")

	stats := catalog.Summarize(m.items)
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %d products  ·  %d categories  ·  avg %s",
		stats.Products, stats.Categories, cli.FormatPrice(m.deps.Settings.UI.Currency, models.Price(stats.AvgPrice)))))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(fmt.Sprintf("  %s Loading your products...\n", m.spin.View()))

	case m.loadErr != nil:
		b.WriteString(errorStyle.Render("  Could not load your products: " + m.loadErr.Error()))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("  Press R to retry."))
		b.WriteString("\n")

	case len(m.items) == 0:
		b.WriteString(dimStyle.Render("  No products yet. Press n to add your first one."))
		b.WriteString("\n")

	default:
		for i, p := range m.items {
			row := fmt.Sprintf("%-32s %-14s %10s",
				cli.TruncateString(p.Name, 32),
				cli.TruncateString(p.Category.Name, 14),
				cli.FormatPrice(m.deps.Settings.UI.Currency, p.Price),
			)
			if m.deleting[p.ID] {
				row += dimStyle.Render("  deleting...")
			}
			if i == m.cursor {
				b.WriteString(selectedStyle.Render("▸ " + row))
			} else {
				b.WriteString("  " + row)
			}
			b.WriteString("\n")
		}
	}

	if m.confirm.Active() {
		b.WriteString("\n")
		b.WriteString(m.confirm.ViewWithWidth(m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ select · n new · e edit · d delete · P profile · L logout · R reload · C chat · esc back"))
	return b.String()
}
