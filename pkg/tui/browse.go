package tui

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hrayfi/hrayfi-cli/internal/cli"
	"github.com/hrayfi/hrayfi-cli/pkg/catalog"
	"github.com/hrayfi/hrayfi-cli/pkg/models"
)

// priceBands are the quick price filters cycled with "p".
var priceBands = []struct {
	label    string
	min, max float64
}{
	{"all prices", 0, math.Inf(1)},
	{"under 50", 0, 50},
	{"50-150", 50, 150},
	{"150-500", 150, 500},
	{"over 500", 500, math.Inf(1)},
}

// BrowseModel is the public catalog screen: one fetched list, with the
// displayed subset derived per-render from the criteria.
type BrowseModel struct {
	deps Deps

	items    []models.Product
	criteria catalog.Criteria

	loading  bool
	loadErr  error
	fetchSeq int

	cursor       int
	searchFocus  bool
	priceBandIdx int

	searchBar *SearchBar
	spin      spinner.Model

	width  int
	height int
}

func NewBrowseModel(deps Deps) *BrowseModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &BrowseModel{
		deps:      deps,
		criteria:  catalog.NewCriteria(deps.Settings.UI.PageSize).WithSort(catalog.SortKey(deps.Settings.UI.DefaultSort)),
		searchBar: NewSearchBar(),
		spin:      sp,
	}
}

func (m *BrowseModel) Init() tea.Cmd {
	return tea.Batch(m.fetch(), m.spin.Tick)
}

// fetch starts a catalog load. Bumping fetchSeq first means any response
// still in flight from an earlier load arrives stale and is dropped.
func (m *BrowseModel) fetch() tea.Cmd {
	m.fetchSeq++
	m.loading = true
	m.loadErr = nil
	m.items = nil

	seq := m.fetchSeq
	client := m.deps.Client
	return func() tea.Msg {
		items, err := client.ListProducts(context.Background())
		return productsLoadedMsg{seq: seq, items: items, err: err}
	}
}

func (m *BrowseModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.searchBar.SetWidth(width)
}

func (m *BrowseModel) Update(msg tea.Msg) (*BrowseModel, tea.Cmd) {
	switch msg := msg.(type) {
	case productsLoadedMsg:
		if msg.seq != m.fetchSeq {
			// Superseded request; a newer fetch owns the view now.
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.loadErr = msg.err
			m.items = nil
			return m, nil
		}
		m.items = msg.items
		m.cursor = 0
		return m, nil

	case spinner.TickMsg:
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

func (m *BrowseModel) handleKey(msg tea.KeyMsg) (*BrowseModel, tea.Cmd) {
	if m.searchFocus {
		switch msg.String() {
		case "esc", "enter":
			m.searchFocus = false
			m.searchBar.SetActive(false)
			return m, nil
		default:
			var cmd tea.Cmd
			m.searchBar, cmd = m.searchBar.Update(msg)
			m.setCriteria(m.criteria.WithSearch(m.searchBar.Value()))
			return m, cmd
		}
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "/":
		m.searchFocus = true
		m.searchBar.SetActive(true)
		return m, nil

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if page := catalog.Apply(m.items, m.criteria); m.cursor < len(page.Items)-1 {
			m.cursor++
		}
		return m, nil

	case "left", "h":
		if m.criteria.Page > 1 {
			m.criteria = m.criteria.WithPage(m.criteria.Page - 1)
			m.cursor = 0
		}
		return m, nil

	case "right", "l":
		if page := catalog.Apply(m.items, m.criteria); m.criteria.Page < page.PageCount {
			m.criteria = m.criteria.WithPage(m.criteria.Page + 1)
			m.cursor = 0
		}
		return m, nil

	case "c":
		categories, _ := catalog.Facets(m.items)
		m.setCriteria(m.criteria.WithCategory(cycleFacet(m.criteria.Category, catalog.AllCategories, categories)))
		return m, nil

	case "r":
		_, regions := catalog.Facets(m.items)
		m.setCriteria(m.criteria.WithRegion(cycleFacet(m.criteria.Region, catalog.AllRegions, regions)))
		return m, nil

	case "s":
		m.setCriteria(m.criteria.WithSort(nextSortKey(m.criteria.Sort)))
		return m, nil

	case "p":
		m.priceBandIdx = (m.priceBandIdx + 1) % len(priceBands)
		band := priceBands[m.priceBandIdx]
		m.setCriteria(m.criteria.WithPriceRange(band.min, band.max))
		return m, nil

	case "x":
		m.priceBandIdx = 0
		m.searchBar.Reset()
		m.setCriteria(catalog.NewCriteria(m.deps.Settings.UI.PageSize).WithSort(m.criteria.Sort))
		return m, nil

	case "R":
		return m, tea.Batch(m.fetch(), m.spin.Tick)

	case "enter":
		page := catalog.Apply(m.items, m.criteria)
		if m.cursor < len(page.Items) {
			p := page.Items[m.cursor]
			return m, func() tea.Msg {
				return SwitchViewMsg{view: detailView, productID: p.ID, returnTo: browseView}
			}
		}
		return m, nil

	case "D":
		return m, func() tea.Msg { return SwitchViewMsg{view: dashboardView} }

	case "C":
		return m, func() tea.Msg { return SwitchViewMsg{view: chatView, returnTo: browseView} }
	}

	return m, nil
}

func (m *BrowseModel) setCriteria(c catalog.Criteria) {
	m.criteria = c
	m.cursor = 0
}

// cycleFacet steps all -> first -> ... -> last -> all.
func cycleFacet(current, sentinel string, names []string) string {
	if len(names) == 0 {
		return sentinel
	}
	if current == sentinel || current == "" {
		return names[0]
	}
	for i, name := range names {
		if name == current {
			if i == len(names)-1 {
				return sentinel
			}
			return names[i+1]
		}
	}
	return sentinel
}

func nextSortKey(current catalog.SortKey) catalog.SortKey {
	for i, key := range catalog.ValidSortKeys {
		if key == current {
			return catalog.ValidSortKeys[(i+1)%len(catalog.ValidSortKeys)]
		}
	}
	return catalog.ValidSortKeys[0]
}

func (m *BrowseModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Hrayfi · Moroccan Artisan Marketplace"))
	b.WriteString("\n\n")
	b.WriteString(m.searchBar.View())
	b.WriteString("\n")
	b.WriteString(m.filterLine())
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(fmt.Sprintf("  %s Loading products...\n", m.spin.View()))

	case m.loadErr != nil:
		b.WriteString(errorStyle.Render("  Could not load products: " + m.loadErr.Error()))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("  Press R to retry."))
		b.WriteString("\n")

	default:
		b.WriteString(m.listView())
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ select · ←/→ page · enter details · / search · c category · r region · p price · s sort · x clear · D dashboard · C chat · R reload · q quit"))
	return b.String()
}

func (m *BrowseModel) filterLine() string {
	parts := []string{
		"category: " + m.criteria.Category,
		"region: " + m.criteria.Region,
		"price: " + priceBands[m.priceBandIdx].label,
		"sort: " + string(m.criteria.Sort),
	}
	line := dimStyle.Render("  " + strings.Join(parts, "  ·  "))
	if m.criteria.Filtered() {
		line += dimStyle.Render("  ·  ") + headerStyle.Render("filtered")
	}
	return line
}

func (m *BrowseModel) listView() string {
	page := catalog.Apply(m.items, m.criteria)
	if page.Total == 0 {
		if m.criteria.Filtered() {
			return dimStyle.Render("  No products match your filters. Press x to clear them.") + "\n"
		}
		return dimStyle.Render("  No products available.") + "\n"
	}

	var b strings.Builder
	for i, p := range page.Items {
		row := fmt.Sprintf("%-32s %-14s %-14s %10s",
			cli.TruncateString(p.Name, 32),
			cli.TruncateString(p.Category.Name, 14),
			cli.TruncateString(p.Region.Name, 14),
			cli.FormatPrice(m.deps.Settings.UI.Currency, p.Price),
		)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("▸ " + row))
		} else {
			b.WriteString("  " + row)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("  Showing %d of %d products · page %d/%d",
		len(page.Items), page.Total, page.Page, page.PageCount)))
	b.WriteString("\n")
	return b.String()
}
