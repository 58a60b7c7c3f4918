package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrayfi/hrayfi-cli/pkg/models"
)

func TestReconcileCreate(t *testing.T) {
	items := sampleProducts()
	created := models.Product{ID: 9, Name: "Thuya Wood Box"}

	got := ReconcileCreate(items, created)

	require.Len(t, got, len(items)+1)
	assert.Equal(t, created, got[len(got)-1])
	assert.Equal(t, sampleProducts(), items, "input slice must stay untouched")
}

func TestReconcileUpdate(t *testing.T) {
	t.Run("replaces matching id in place", func(t *testing.T) {
		items := sampleProducts()
		updated := models.Product{ID: 3, Name: "Leather Pouf XL", Price: 150}

		got := ReconcileUpdate(items, updated)

		require.Len(t, got, len(items))
		assert.Equal(t, updated, got[2])
		assert.Equal(t, "Leather Pouf", items[2].Name, "input slice must stay untouched")
	})

	t.Run("appends when the id is absent", func(t *testing.T) {
		items := sampleProducts()
		updated := models.Product{ID: 42, Name: "Saffron Jar"}

		got := ReconcileUpdate(items, updated)

		require.Len(t, got, len(items)+1)
		assert.Equal(t, updated, got[len(got)-1])
	})
}

func TestReconcileDelete(t *testing.T) {
	t.Run("removes matching id, keeps order", func(t *testing.T) {
		items := sampleProducts()

		got := ReconcileDelete(items, 3)

		ids := make([]int, 0, len(got))
		for _, p := range got {
			ids = append(ids, p.ID)
		}
		assert.Equal(t, []int{1, 2, 4, 5}, ids)
		assert.Len(t, items, 5, "input slice must stay untouched")
	})

	t.Run("absent id leaves the list unchanged", func(t *testing.T) {
		items := sampleProducts()

		got := ReconcileDelete(items, 99)

		assert.Equal(t, items, got)
	})
}

func TestFacets(t *testing.T) {
	categories, regions := Facets(sampleProducts())

	assert.Equal(t, []string{"Rugs", "Pottery", "Leather", "Tiles"}, categories)
	assert.Equal(t, []string{"Azilal", "Tamegroute", "Marrakech", "Middle Atlas", "Fès"}, regions)
}

func TestFacetsEmpty(t *testing.T) {
	categories, regions := Facets(nil)
	assert.Empty(t, categories)
	assert.Empty(t, regions)
}

func TestSummarize(t *testing.T) {
	stats := Summarize(sampleProducts())

	assert.Equal(t, 5, stats.Products)
	assert.Equal(t, 4, stats.Categories)
	assert.InDelta(t, 239.8, stats.AvgPrice, 0.001)
}

func TestSummarizeEmpty(t *testing.T) {
	stats := Summarize(nil)

	assert.Zero(t, stats.Products)
	assert.Zero(t, stats.Categories)
	assert.Zero(t, stats.AvgPrice)
}
