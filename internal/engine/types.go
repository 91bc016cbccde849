package engine

import (
	"fmt"

	"github.com/outfitlab/ensemble/internal/catalog"
)

// Request describes a single recommendation call. Optional constraints are
// nil when absent.
type Request struct {
	BaseProductID      string
	Occasion           *catalog.Occasion
	Season             *catalog.Season
	MaxBudget          *float64
	StylePreference    *catalog.Style
	NumRecommendations int
}

// DefaultNumRecommendations is used when a request does not specify a count.
const DefaultNumRecommendations = 5

// Outfit is a complete combination: one top, one bottom, one footwear item
// and 1-3 distinct accessories. Outfits are assembled fresh per call and
// reference products from the catalog snapshot the recommender was built on.
type Outfit struct {
	Top         *catalog.Product
	Bottom      *catalog.Product
	Footwear    *catalog.Product
	Accessories []*catalog.Product
	MatchScore  float64
	Reasoning   string
	TotalPrice  float64
}

// Items returns every product in the outfit, top first. The top's color and
// style anchor the scoring dimensions.
func (o *Outfit) Items() []*catalog.Product {
	items := make([]*catalog.Product, 0, 3+len(o.Accessories))
	items = append(items, o.Top, o.Bottom, o.Footwear)
	return append(items, o.Accessories...)
}

// NotFoundError is returned when a request's base product id does not
// resolve in the catalog.
type NotFoundError struct {
	ProductID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("product %s not found", e.ProductID)
}

// errNoCandidates signals a single selection attempt that found no eligible
// item. It is recovered inside the generation loop and never escapes.
var errNoCandidates = fmt.Errorf("no candidates available")
