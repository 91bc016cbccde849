package engine

import "github.com/outfitlab/ensemble/internal/catalog"

// candidates holds the filtered item pool per category for one request. An
// empty list is a valid outcome; generation degrades instead of failing.
type candidates map[catalog.Category][]*catalog.Product

// budgetSlack loosens the per-item budget cutoff. Filtering admits items the
// scorer may later penalize; the filter is a rough gate, not a guarantee of
// staying under budget.
const budgetSlack = 1.5

// filterCandidates narrows each category to items satisfying the request's
// constraints relative to the base product. Filters compose by intersection,
// applied in order: occasion, season, style, budget.
func filterCandidates(cat *catalog.Catalog, base *catalog.Product, req Request) candidates {
	filtered := make(candidates, len(catalog.Categories))

	for _, category := range catalog.Categories {
		pool := cat.ByCategory(category)
		keep := make([]*catalog.Product, 0, len(pool))

		for _, p := range pool {
			if req.Occasion != nil && !p.SuitsOccasion(*req.Occasion) {
				continue
			}
			if req.Season != nil && !p.Season.Matches(*req.Season) {
				continue
			}
			// A style preference admits both the preferred style and the
			// base product's own style.
			if req.StylePreference != nil &&
				p.Style != *req.StylePreference && p.Style != base.Style {
				continue
			}
			if req.MaxBudget != nil {
				remaining := *req.MaxBudget - base.Price
				if p.Price > remaining*budgetSlack {
					continue
				}
			}
			keep = append(keep, p)
		}

		filtered[category] = keep
	}

	return filtered
}
