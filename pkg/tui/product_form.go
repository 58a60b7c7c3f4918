package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hrayfi/hrayfi-cli/pkg/api"
	"github.com/hrayfi/hrayfi-cli/pkg/form"
	"github.com/hrayfi/hrayfi-cli/pkg/models"
)

type entryKind int

const (
	entryText entryKind = iota
	entryArea
	entryCategory
	entryRegion
)

type formEntry struct {
	field form.Field
	kind  entryKind
	input textinput.Model
	area  textarea.Model
}

// ProductFormModel edits one product, new or existing. All input lands in
// the form controller's draft; the product list is only touched once the
// backend confirms the save.
type ProductFormModel struct {
	deps      Deps
	artisanID int

	categories []models.Category
	regions    []models.Region

	ctrl     *form.Controller[*models.Product]
	entries  []formEntry
	focusIdx int
	editing  *models.Product // nil when creating
	localErr string

	width  int
	height int
}

func NewProductFormModel(deps Deps, artisanID int, categories []models.Category, regions []models.Region) *ProductFormModel {
	fields := []form.Field{
		{Name: "name", Label: "Name", Required: true},
		{Name: "description", Label: "Description", Required: true, Multi: true},
		{Name: "price", Label: "Price", Required: true},
		{Name: "category", Label: "Category", Required: true},
		{Name: "region", Label: "Region", Required: true},
		{Name: "materials", Label: "Materials"},
		{Name: "dimensions", Label: "Dimensions"},
		{Name: "cultural_significance", Label: "Cultural significance", Multi: true},
		{Name: "image", Label: "Image path"},
	}

	m := &ProductFormModel{
		deps:       deps,
		artisanID:  artisanID,
		categories: categories,
		regions:    regions,
		ctrl:       form.New[*models.Product](nil, fields...),
	}

	for _, f := range fields {
		e := formEntry{field: f}
		switch {
		case f.Name == "category":
			e.kind = entryCategory
		case f.Name == "region":
			e.kind = entryRegion
		case f.Multi:
			e.kind = entryArea
			ta := textarea.New()
			ta.SetHeight(3)
			ta.CharLimit = 2000
			ta.ShowLineNumbers = false
			e.area = ta
		default:
			e.kind = entryText
			ti := textinput.New()
			ti.CharLimit = 200
			e.input = ti
		}
		m.entries = append(m.entries, e)
	}
	return m
}

// SetProduct seeds the form. A nil product starts a blank create form.
func (m *ProductFormModel) SetProduct(p *models.Product) {
	m.editing = p
	m.localErr = ""

	initial := map[string]string{}
	if p != nil {
		initial["name"] = p.Name
		initial["description"] = p.Description
		initial["price"] = p.Price.String()
		initial["category"] = strconv.Itoa(p.Category.ID)
		initial["region"] = strconv.Itoa(p.Region.ID)
		initial["materials"] = p.Materials
		initial["dimensions"] = p.Dimensions
		initial["cultural_significance"] = p.CulturalSignificance
	} else {
		if len(m.categories) > 0 {
			initial["category"] = strconv.Itoa(m.categories[0].ID)
		}
		if len(m.regions) > 0 {
			initial["region"] = strconv.Itoa(m.regions[0].ID)
		}
	}

	m.ctrl = form.New[*models.Product](p, m.ctrl.Fields()...)
	m.ctrl.BeginEdit(initial)

	for i := range m.entries {
		switch m.entries[i].kind {
		case entryText:
			m.entries[i].input.SetValue(initial[m.entries[i].field.Name])
		case entryArea:
			m.entries[i].area.SetValue(initial[m.entries[i].field.Name])
		}
	}
	m.setFocus(0)
}

func (m *ProductFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ProductFormModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	for i := range m.entries {
		switch m.entries[i].kind {
		case entryText:
			m.entries[i].input.Width = min(60, width-10)
		case entryArea:
			m.entries[i].area.SetWidth(min(60, width-10))
		}
	}
}

func (m *ProductFormModel) setFocus(idx int) {
	for i := range m.entries {
		m.entries[i].input.Blur()
		m.entries[i].area.Blur()
	}
	m.focusIdx = idx
	switch m.entries[idx].kind {
	case entryText:
		m.entries[idx].input.Focus()
	case entryArea:
		m.entries[idx].area.Focus()
	}
}

func (m *ProductFormModel) Update(msg tea.Msg) (*ProductFormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case productSavedMsg:
		m.ctrl.Resolve(msg.product, msg.err)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.ctrl.Cancel()
			return m, func() tea.Msg { return formClosedMsg{} }

		case "tab":
			m.setFocus((m.focusIdx + 1) % len(m.entries))
			return m, nil

		case "shift+tab":
			m.setFocus((m.focusIdx + len(m.entries) - 1) % len(m.entries))
			return m, nil

		case "ctrl+s":
			return m, m.submit()
		}

		if m.ctrl.Phase() == form.Submitting {
			return m, nil
		}

		entry := &m.entries[m.focusIdx]
		switch entry.kind {
		case entryCategory:
			if k := msg.String(); k == "left" || k == "right" || k == " " || k == "enter" {
				m.cyclePick(entry, k == "left")
			}
			return m, nil

		case entryRegion:
			if k := msg.String(); k == "left" || k == "right" || k == " " || k == "enter" {
				m.cyclePick(entry, k == "left")
			}
			return m, nil

		case entryText:
			var cmd tea.Cmd
			entry.input, cmd = entry.input.Update(msg)
			m.ctrl.Set(entry.field.Name, entry.input.Value())
			return m, cmd

		case entryArea:
			var cmd tea.Cmd
			entry.area, cmd = entry.area.Update(msg)
			m.ctrl.Set(entry.field.Name, entry.area.Value())
			return m, cmd
		}
	}

	return m, nil
}

func (m *ProductFormModel) cyclePick(entry *formEntry, backwards bool) {
	var ids []int
	if entry.kind == entryCategory {
		for _, c := range m.categories {
			ids = append(ids, c.ID)
		}
	} else {
		for _, r := range m.regions {
			ids = append(ids, r.ID)
		}
	}
	if len(ids) == 0 {
		return
	}

	current, _ := strconv.Atoi(m.ctrl.Value(entry.field.Name))
	idx := 0
	for i, id := range ids {
		if id == current {
			idx = i
			break
		}
	}
	if backwards {
		idx = (idx + len(ids) - 1) % len(ids)
	} else {
		idx = (idx + 1) % len(ids)
	}
	m.ctrl.Set(entry.field.Name, strconv.Itoa(ids[idx]))
}

func (m *ProductFormModel) submit() tea.Cmd {
	price, err := strconv.ParseFloat(strings.TrimSpace(m.ctrl.Value("price")), 64)
	if m.ctrl.Value("price") != "" && (err != nil || price < 0) {
		m.localErr = "price must be a non-negative number"
		return nil
	}
	m.localErr = ""

	if _, ok := m.ctrl.Submit(); !ok {
		return nil
	}

	categoryID, _ := strconv.Atoi(m.ctrl.Value("category"))
	regionID, _ := strconv.Atoi(m.ctrl.Value("region"))
	in := api.ProductInput{
		Name:                 strings.TrimSpace(m.ctrl.Value("name")),
		Description:          m.ctrl.Value("description"),
		Materials:            m.ctrl.Value("materials"),
		Dimensions:           m.ctrl.Value("dimensions"),
		CulturalSignificance: m.ctrl.Value("cultural_significance"),
		CategoryID:           categoryID,
		RegionID:             regionID,
		ArtisanID:            m.artisanID,
		Price:                models.Price(price),
		ImagePath:            strings.TrimSpace(m.ctrl.Value("image")),
	}

	client := m.deps.Client
	editing := m.editing
	return func() tea.Msg {
		if editing == nil {
			p, err := client.CreateProduct(context.Background(), in)
			return productSavedMsg{product: p, created: true, err: err}
		}
		p, err := client.UpdateProduct(context.Background(), editing.ID, in)
		return productSavedMsg{product: p, created: false, err: err}
	}
}

func (m *ProductFormModel) pickLabel(entry formEntry) string {
	id, _ := strconv.Atoi(m.ctrl.Value(entry.field.Name))
	if entry.kind == entryCategory {
		for _, c := range m.categories {
			if c.ID == id {
				return c.Name
			}
		}
	} else {
		for _, r := range m.regions {
			if r.ID == id {
				return r.Name
			}
		}
	}
	return "(none)"
}

func (m *ProductFormModel) View() string {
	var b strings.Builder
	title := "New product"
	if m.editing != nil {
		title = "Edit product"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	for i, entry := range m.entries {
		label := entry.field.Label
		if i == m.focusIdx {
			label = headerStyle.Render(label)
		} else {
			label = dimStyle.Render(label)
		}
		b.WriteString("  " + label + "\n")

		switch entry.kind {
		case entryCategory, entryRegion:
			pick := "◂ " + m.pickLabel(entry) + " ▸"
			if i == m.focusIdx {
				pick = selectedStyle.Render(pick)
			}
			b.WriteString("  " + pick + "\n")
		case entryArea:
			b.WriteString(entry.area.View() + "\n")
		default:
			b.WriteString("  " + entry.input.View() + "\n")
		}
		b.WriteString("\n")
	}

	if m.ctrl.Phase() == form.Submitting {
		b.WriteString(dimStyle.Render("  Saving..."))
		b.WriteString("\n")
	} else if m.localErr != "" {
		b.WriteString(errorStyle.Render("  " + m.localErr))
		b.WriteString("\n")
	} else if err := m.ctrl.Err(); err != nil {
		b.WriteString(errorStyle.Render("  " + err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab next field · ←/→ pick · ctrl+s save · esc cancel"))
	return b.String()
}
