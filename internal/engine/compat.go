package engine

import (
	"math"

	"github.com/outfitlab/ensemble/internal/catalog"
)

// neutralCompatibility is returned for pairs that were never indexed, e.g.
// when an id from outside the indexed snapshot is looked up.
const neutralCompatibility = 0.5

// hueDistance returns the circular distance between two hues, normalized to
// [0, 180] degrees.
func hueDistance(a, b float64) float64 {
	d := math.Abs(a - b)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// pairHarmony is the coarse color-pair score used when building the
// compatibility index. The scorer uses a separate, finer band table
// (anchorHarmony); the two are intentionally kept apart because unifying
// them would change generation and scoring behavior.
func pairHarmony(c1, c2 catalog.Color) float64 {
	h1, _, _ := c1.HSV()
	h2, _, _ := c2.HSV()
	d := hueDistance(h1, h2)

	switch {
	case d < 30: // analogous or same hue
		return 0.9
	case d > 150 && d < 180: // complementary
		return 0.85
	case d > 115 && d < 125: // triadic
		return 0.75
	default:
		return 0.6
	}
}

type pairKey struct {
	a, b string
}

// canonicalPair orders two product ids lexicographically so that lookups are
// symmetric.
func canonicalPair(idA, idB string) pairKey {
	if idA > idB {
		idA, idB = idB, idA
	}
	return pairKey{a: idA, b: idB}
}

// Index holds precomputed pairwise compatibility scores for a catalog
// snapshot. It is built once and read-only afterwards, so concurrent lookups
// need no locking.
type Index struct {
	scores map[pairKey]float64
}

// BuildIndex computes a compatibility score for every unordered pair of
// distinct products. O(n^2) in catalog size, done once at startup.
func BuildIndex(cat *catalog.Catalog) *Index {
	products := cat.Products()
	ix := &Index{
		scores: make(map[pairKey]float64, len(products)*(len(products)-1)/2),
	}

	for i := range products {
		for j := i + 1; j < len(products); j++ {
			key := canonicalPair(products[i].ID, products[j].ID)
			ix.scores[key] = pairHarmony(products[i].Color, products[j].Color)
		}
	}

	return ix
}

// Compatibility returns the precomputed score for a product pair, or a
// neutral default when the pair was never indexed.
func (ix *Index) Compatibility(idA, idB string) float64 {
	if score, ok := ix.scores[canonicalPair(idA, idB)]; ok {
		return score
	}
	return neutralCompatibility
}

// Size returns the number of indexed pairs.
func (ix *Index) Size() int {
	return len(ix.scores)
}
