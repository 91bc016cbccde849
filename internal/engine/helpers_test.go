package engine

import "github.com/outfitlab/ensemble/internal/catalog"

// testProduct builds a minimal valid product for synthetic catalogs. Season
// defaults to all-season and the occasion list to everyday; tests that care
// about those fields override them on the returned value.
func testProduct(id string, cat catalog.Category, style catalog.Style, color catalog.Color, price float64) catalog.Product {
	return catalog.Product{
		ID:        id,
		Name:      id,
		Category:  cat,
		Style:     style,
		Color:     color,
		Price:     price,
		Season:    catalog.SeasonAll,
		Occasions: []catalog.Occasion{catalog.OccasionEveryday},
	}
}

func ptr[T any](v T) *T {
	return &v
}
