package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrayfi/hrayfi-cli/pkg/form"
	"github.com/hrayfi/hrayfi-cli/pkg/models"
)

func newTestProductForm() *ProductFormModel {
	categories := []models.Category{{ID: 1, Name: "Rugs"}, {ID: 2, Name: "Pottery"}}
	regions := []models.Region{{ID: 5, Name: "Fès"}, {ID: 6, Name: "Azilal"}}
	m := NewProductFormModel(testDeps(), 7, categories, regions)
	m.SetSize(100, 40)
	return m
}

func TestProductFormCreateDefaults(t *testing.T) {
	m := newTestProductForm()
	m.SetProduct(nil)

	assert.Equal(t, form.Editing, m.ctrl.Phase())
	assert.Equal(t, "1", m.ctrl.Value("category"), "first category preselected")
	assert.Equal(t, "5", m.ctrl.Value("region"))
	assert.Empty(t, m.ctrl.Value("name"))
}

func TestProductFormValidationBlocksSave(t *testing.T) {
	m := newTestProductForm()
	m.SetProduct(nil)

	cmd := m.submit()
	assert.Nil(t, cmd, "missing required fields must not reach the network")
	assert.Equal(t, form.Editing, m.ctrl.Phase())
	assert.Error(t, m.ctrl.Err())
}

func TestProductFormRejectsBadPrice(t *testing.T) {
	m := newTestProductForm()
	m.SetProduct(nil)
	m.ctrl.Set("name", "Tray")
	m.ctrl.Set("description", "A tray")
	m.ctrl.Set("price", "not a number")

	cmd := m.submit()
	assert.Nil(t, cmd)
	assert.Contains(t, m.localErr, "price")
	assert.Equal(t, form.Editing, m.ctrl.Phase())
}

func TestProductFormSubmitGuard(t *testing.T) {
	m := newTestProductForm()
	m.SetProduct(nil)
	m.ctrl.Set("name", "Tray")
	m.ctrl.Set("description", "A tray")
	m.ctrl.Set("price", "85")

	require.NotNil(t, m.submit())
	assert.Equal(t, form.Submitting, m.ctrl.Phase())

	assert.Nil(t, m.submit(), "double submit must not issue a second request")
}

func TestProductFormPickCycle(t *testing.T) {
	m := newTestProductForm()
	m.SetProduct(nil)

	var catEntry *formEntry
	for i := range m.entries {
		if m.entries[i].kind == entryCategory {
			catEntry = &m.entries[i]
		}
	}
	require.NotNil(t, catEntry)

	m.cyclePick(catEntry, false)
	assert.Equal(t, "2", m.ctrl.Value("category"))
	m.cyclePick(catEntry, false)
	assert.Equal(t, "1", m.ctrl.Value("category"), "wraps around")
	m.cyclePick(catEntry, true)
	assert.Equal(t, "2", m.ctrl.Value("category"), "backwards from the first wraps to the last")
}

func TestProductFormEditSeedsDraft(t *testing.T) {
	m := newTestProductForm()
	p := browseItems()[0]
	m.SetProduct(&p)

	assert.Equal(t, "Azilal Rug", m.ctrl.Value("name"))
	assert.Equal(t, "299.00", m.ctrl.Value("price"))
	assert.Equal(t, "1", m.ctrl.Value("category"))
}

func TestProductFormResolveFailureKeepsDraft(t *testing.T) {
	m := newTestProductForm()
	m.SetProduct(nil)
	m.ctrl.Set("name", "Tray")
	m.ctrl.Set("description", "A tray")
	m.ctrl.Set("price", "85")
	require.NotNil(t, m.submit())

	m, _ = m.Update(productSavedMsg{err: assert.AnError})
	assert.Equal(t, form.Editing, m.ctrl.Phase())
	assert.Equal(t, "Tray", m.ctrl.Value("name"), "draft survives the failed save")
	assert.Contains(t, m.View(), assert.AnError.Error())
}
