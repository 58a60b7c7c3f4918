package catalog

import "github.com/hrayfi/hrayfi-cli/pkg/models"

// Facets returns the distinct category and region names present in the
// list, in first-seen order. Filter options are derived from the fetched
// products rather than a separate lookup fetch.
func Facets(items []models.Product) (categories, regions []string) {
	seenCat := make(map[string]bool)
	seenReg := make(map[string]bool)
	for _, p := range items {
		if name := p.Category.Name; name != "" && !seenCat[name] {
			seenCat[name] = true
			categories = append(categories, name)
		}
		if name := p.Region.Name; name != "" && !seenReg[name] {
			seenReg[name] = true
			regions = append(regions, name)
		}
	}
	return categories, regions
}

// Stats summarizes a product list for the dashboard header.
type Stats struct {
	Products   int
	Categories int
	AvgPrice   float64
}

// Summarize computes dashboard stats over the given products.
func Summarize(items []models.Product) Stats {
	s := Stats{Products: len(items)}

	seen := make(map[string]bool)
	var total float64
	for _, p := range items {
		if !seen[p.Category.Name] {
			seen[p.Category.Name] = true
			s.Categories++
		}
		total += float64(p.Price)
	}
	if len(items) > 0 {
		s.AvgPrice = total / float64(len(items))
	}
	return s
}
