package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hrayfi/hrayfi-cli/pkg/api"
	"github.com/hrayfi/hrayfi-cli/pkg/form"
	"github.com/hrayfi/hrayfi-cli/pkg/models"
)

type profileMode int

const (
	profileInfo profileMode = iota
	profileEdit
	profileCreds
)

// ProfileModel shows and edits the authenticated artisan's profile and
// login credentials. The two editors are independent forms; the profile one
// commits the artisan entity, the credential one commits nothing visible
// except the session email.
type ProfileModel struct {
	deps      Deps
	artisanID int

	artisan  *models.Artisan
	loading  bool
	loadErr  error
	fetchSeq int

	mode profileMode

	editCtrl  *form.Controller[*models.Artisan]
	credsCtrl *form.Controller[struct{}]

	editInputs []textinput.Model
	bioArea    textarea.Model
	credInputs []textinput.Model
	focusIdx   int

	spin   spinner.Model
	width  int
	height int
}

var profileEditFields = []form.Field{
	{Name: "name", Label: "Display name", Required: true},
	{Name: "phone", Label: "Phone"},
	{Name: "biography", Label: "Biography", Multi: true},
	{Name: "image", Label: "Profile image path"},
}

var credentialFields = []form.Field{
	{Name: "email", Label: "Email", Required: true},
	{Name: "username", Label: "Username", Required: true},
	{Name: "current_password", Label: "Current password", Required: true, Secret: true},
	{Name: "new_password", Label: "New password", Secret: true},
	{Name: "confirm_password", Label: "Confirm new password", Secret: true},
}

func NewProfileModel(deps Deps, artisanID int) *ProfileModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	credsCtrl := form.New[struct{}](struct{}{}, credentialFields...)
	credsCtrl.RequireMatch("new_password", "confirm_password", "passwords do not match")

	return &ProfileModel{
		deps:      deps,
		artisanID: artisanID,
		bioArea:   textarea.New(),
		editCtrl:  form.New[*models.Artisan](nil, profileEditFields...),
		credsCtrl: credsCtrl,
		spin:      sp,
	}
}

func (m *ProfileModel) Init() tea.Cmd {
	if m.artisan == nil {
		return tea.Batch(m.fetch(), m.spin.Tick)
	}
	return nil
}

func (m *ProfileModel) fetch() tea.Cmd {
	m.fetchSeq++
	m.loading = true
	m.loadErr = nil

	seq := m.fetchSeq
	id := m.artisanID
	client := m.deps.Client
	return func() tea.Msg {
		a, err := client.GetArtisan(context.Background(), id)
		return artisanLoadedMsg{seq: seq, artisan: a, err: err}
	}
}

func (m *ProfileModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	for i := range m.editInputs {
		m.editInputs[i].Width = min(60, width-10)
	}
	for i := range m.credInputs {
		m.credInputs[i].Width = min(60, width-10)
	}
	m.bioArea.SetWidth(min(60, width-10))
}

func (m *ProfileModel) Update(msg tea.Msg) (*ProfileModel, tea.Cmd) {
	switch msg := msg.(type) {
	case artisanLoadedMsg:
		if msg.seq != m.fetchSeq {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.loadErr = msg.err
			return m, nil
		}
		m.artisan = msg.artisan
		m.editCtrl = form.New[*models.Artisan](msg.artisan, profileEditFields...)
		return m, nil

	case profileSavedMsg:
		m.editCtrl.Resolve(msg.artisan, msg.err)
		if msg.err != nil {
			return m, nil
		}
		m.artisan = msg.artisan
		m.mode = profileInfo
		return m, statusCmd("Profile updated")

	case credentialsSavedMsg:
		m.credsCtrl.Resolve(struct{}{}, msg.err)
		if msg.err != nil {
			return m, nil
		}
		m.mode = profileInfo
		return m, statusCmd("Credentials updated for " + msg.email)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch m.mode {
		case profileEdit:
			return m.updateEdit(msg)
		case profileCreds:
			return m.updateCreds(msg)
		default:
			return m.updateInfo(msg)
		}
	}

	return m, nil
}

func (m *ProfileModel) updateInfo(msg tea.KeyMsg) (*ProfileModel, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		return m, func() tea.Msg { return formClosedMsg{} }

	case "e":
		if m.artisan == nil {
			return m, nil
		}
		m.beginEdit()
		return m, textinput.Blink

	case "w":
		m.beginCreds()
		return m, textinput.Blink

	case "R":
		return m, tea.Batch(m.fetch(), m.spin.Tick)
	}
	return m, nil
}

func (m *ProfileModel) beginEdit() {
	a := m.artisan
	m.editCtrl.BeginEdit(map[string]string{
		"name":      a.Name,
		"phone":     a.Phone,
		"biography": a.Biography,
	})

	m.editInputs = nil
	for _, f := range profileEditFields {
		if f.Multi {
			continue
		}
		ti := textinput.New()
		ti.CharLimit = 200
		ti.SetValue(m.editCtrl.Value(f.Name))
		m.editInputs = append(m.editInputs, ti)
	}
	ta := textarea.New()
	ta.SetHeight(4)
	ta.CharLimit = 2000
	ta.ShowLineNumbers = false
	ta.SetValue(a.Biography)
	m.bioArea = ta

	m.focusIdx = 0
	m.editInputs[0].Focus()
	m.mode = profileEdit
	m.SetSize(m.width, m.height)
}

func (m *ProfileModel) beginCreds() {
	initial := map[string]string{}
	if m.artisan != nil {
		initial["email"] = m.artisan.Email
	}
	m.credsCtrl.BeginEdit(initial)

	m.credInputs = nil
	for _, f := range credentialFields {
		ti := textinput.New()
		ti.CharLimit = 128
		if f.Secret {
			ti.EchoMode = textinput.EchoPassword
		}
		ti.SetValue(m.credsCtrl.Value(f.Name))
		m.credInputs = append(m.credInputs, ti)
	}
	m.focusIdx = 0
	m.credInputs[0].Focus()
	m.mode = profileCreds
	m.SetSize(m.width, m.height)
}

// editEntryCount counts the edit form's focusable slots: the single-line
// inputs plus the biography textarea in field order.
func (m *ProfileModel) editEntryCount() int {
	return len(m.editInputs) + 1
}

func (m *ProfileModel) updateEdit(msg tea.KeyMsg) (*ProfileModel, tea.Cmd) {
	bioIdx := 2 // after name, phone; image input follows

	switch msg.String() {
	case "esc":
		m.editCtrl.Cancel()
		m.mode = profileInfo
		return m, nil

	case "tab":
		m.focusEdit((m.focusIdx + 1) % m.editEntryCount())
		return m, nil

	case "shift+tab":
		m.focusEdit((m.focusIdx + m.editEntryCount() - 1) % m.editEntryCount())
		return m, nil

	case "ctrl+s":
		return m, m.submitEdit()
	}

	if m.editCtrl.Phase() == form.Submitting {
		return m, nil
	}

	var cmd tea.Cmd
	if m.focusIdx == bioIdx {
		m.bioArea, cmd = m.bioArea.Update(msg)
		m.editCtrl.Set("biography", m.bioArea.Value())
		return m, cmd
	}

	inputIdx := m.focusIdx
	if m.focusIdx > bioIdx {
		inputIdx--
	}
	m.editInputs[inputIdx], cmd = m.editInputs[inputIdx].Update(msg)
	names := []string{"name", "phone", "image"}
	m.editCtrl.Set(names[inputIdx], m.editInputs[inputIdx].Value())
	return m, cmd
}

func (m *ProfileModel) focusEdit(idx int) {
	for i := range m.editInputs {
		m.editInputs[i].Blur()
	}
	m.bioArea.Blur()

	m.focusIdx = idx
	bioIdx := 2
	if idx == bioIdx {
		m.bioArea.Focus()
		return
	}
	inputIdx := idx
	if idx > bioIdx {
		inputIdx--
	}
	m.editInputs[inputIdx].Focus()
}

func (m *ProfileModel) submitEdit() tea.Cmd {
	if _, ok := m.editCtrl.Submit(); !ok {
		return nil
	}

	in := api.ArtisanInput{
		Name:      strings.TrimSpace(m.editCtrl.Value("name")),
		Phone:     strings.TrimSpace(m.editCtrl.Value("phone")),
		Biography: m.editCtrl.Value("biography"),
		ImagePath: strings.TrimSpace(m.editCtrl.Value("image")),
	}

	id := m.artisanID
	client := m.deps.Client
	return func() tea.Msg {
		a, err := client.UpdateArtisan(context.Background(), id, in)
		return profileSavedMsg{artisan: a, err: err}
	}
}

func (m *ProfileModel) updateCreds(msg tea.KeyMsg) (*ProfileModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.credsCtrl.Cancel()
		m.mode = profileInfo
		return m, nil

	case "tab", "down":
		m.focusCreds((m.focusIdx + 1) % len(m.credInputs))
		return m, nil

	case "shift+tab", "up":
		m.focusCreds((m.focusIdx + len(m.credInputs) - 1) % len(m.credInputs))
		return m, nil

	case "ctrl+s", "enter":
		return m, m.submitCreds()
	}

	if m.credsCtrl.Phase() == form.Submitting {
		return m, nil
	}

	var cmd tea.Cmd
	m.credInputs[m.focusIdx], cmd = m.credInputs[m.focusIdx].Update(msg)
	m.credsCtrl.Set(credentialFields[m.focusIdx].Name, m.credInputs[m.focusIdx].Value())
	return m, cmd
}

func (m *ProfileModel) focusCreds(idx int) {
	for i := range m.credInputs {
		m.credInputs[i].Blur()
	}
	m.focusIdx = idx
	m.credInputs[idx].Focus()
}

func (m *ProfileModel) submitCreds() tea.Cmd {
	if _, ok := m.credsCtrl.Submit(); !ok {
		return nil
	}

	in := api.CredentialsInput{
		Email:           strings.TrimSpace(m.credsCtrl.Value("email")),
		Username:        strings.TrimSpace(m.credsCtrl.Value("username")),
		CurrentPassword: m.credsCtrl.Value("current_password"),
		NewPassword:     m.credsCtrl.Value("new_password"),
	}

	id := m.artisanID
	client := m.deps.Client
	return func() tea.Msg {
		err := client.ChangeCredentials(context.Background(), id, in)
		return credentialsSavedMsg{email: in.Email, err: err}
	}
}

func (m *ProfileModel) View() string {
	switch m.mode {
	case profileEdit:
		return m.viewEdit()
	case profileCreds:
		return m.viewCreds()
	}
	return m.viewInfo()
}

func (m *ProfileModel) viewInfo() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Artisan profile"))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString("  " + m.spin.View() + " Loading profile...\n")

	case m.loadErr != nil:
		b.WriteString(errorStyle.Render("  Could not load profile: " + m.loadErr.Error()))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("  Press R to retry."))
		b.WriteString("\n")

	case m.artisan != nil:
		a := m.artisan
		row := func(label, value string) {
			if value == "" {
				value = dimStyle.Render("(not set)")
			}
			b.WriteString("  " + headerStyle.Render(label) + "  " + value + "\n")
		}
		row("Name     ", a.Name)
		row("Email    ", a.Email)
		row("Phone    ", a.Phone)
		row("Region   ", a.Region.Name)
		b.WriteString("\n")
		if a.Biography != "" {
			b.WriteString("  " + a.Biography + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("e edit profile · w change credentials · R reload · esc back"))
	return b.String()
}

func (m *ProfileModel) viewEdit() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Edit profile"))
	b.WriteString("\n\n")

	labels := []string{"Display name", "Phone", "Biography", "Profile image path"}
	for i, label := range labels {
		rendered := dimStyle.Render(label)
		if i == m.focusIdx {
			rendered = headerStyle.Render(label)
		}
		b.WriteString("  " + rendered + "\n")
		if i == 2 {
			b.WriteString(m.bioArea.View() + "\n")
		} else {
			inputIdx := i
			if i > 2 {
				inputIdx--
			}
			b.WriteString("  " + m.editInputs[inputIdx].View() + "\n")
		}
		b.WriteString("\n")
	}

	if m.editCtrl.Phase() == form.Submitting {
		b.WriteString(dimStyle.Render("  Saving..."))
		b.WriteString("\n")
	} else if err := m.editCtrl.Err(); err != nil {
		b.WriteString(errorStyle.Render("  " + err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab next field · ctrl+s save · esc cancel"))
	return b.String()
}

func (m *ProfileModel) viewCreds() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Change credentials"))
	b.WriteString("\n\n")

	for i, f := range credentialFields {
		label := dimStyle.Render(f.Label)
		if i == m.focusIdx {
			label = headerStyle.Render(f.Label)
		}
		b.WriteString("  " + label + "\n")
		b.WriteString("  " + m.credInputs[i].View() + "\n\n")
	}

	if m.credsCtrl.Phase() == form.Submitting {
		b.WriteString(dimStyle.Render("  Saving..."))
		b.WriteString("\n")
	} else if err := m.credsCtrl.Err(); err != nil {
		b.WriteString(errorStyle.Render("  " + err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab next field · enter save · esc cancel"))
	return b.String()
}
