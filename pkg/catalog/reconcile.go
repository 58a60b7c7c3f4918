package catalog

import "github.com/hrayfi/hrayfi-cli/pkg/models"

// Reconciliation folds a confirmed mutation back into the in-memory list so
// the UI reflects it without a re-fetch. Callers apply these only after the
// backend reported success; a failed mutation leaves the list untouched.
// All three return a new slice.

// ReconcileCreate appends the server's copy of a newly created product.
func ReconcileCreate(items []models.Product, created models.Product) []models.Product {
	out := make([]models.Product, len(items), len(items)+1)
	copy(out, items)
	return append(out, created)
}

// ReconcileUpdate replaces the product with the updated one's id. When no
// match exists the product is appended: an update can land before the
// initial list fetch completed, and dropping it would lose the row.
func ReconcileUpdate(items []models.Product, updated models.Product) []models.Product {
	out := make([]models.Product, len(items))
	copy(out, items)
	for i := range out {
		if out[i].ID == updated.ID {
			out[i] = updated
			return out
		}
	}
	return append(out, updated)
}

// ReconcileDelete removes the product with the given id. Deletions return
// no body, so only the id is available. An absent id leaves the list
// unchanged.
func ReconcileDelete(items []models.Product, id int) []models.Product {
	out := make([]models.Product, 0, len(items))
	for _, p := range items {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}
