package types

import (
	"math"

	"github.com/outfitlab/ensemble/internal/catalog"
	"github.com/outfitlab/ensemble/internal/engine"
)

// RecommendRequest is the wire format for POST /recommendations.
type RecommendRequest struct {
	BaseProductID      string            `json:"base_product_id" binding:"required"`
	Occasion           *catalog.Occasion `json:"occasion,omitempty"`
	Season             *catalog.Season   `json:"season,omitempty"`
	MaxBudget          *float64          `json:"max_budget,omitempty"`
	StylePreference    *catalog.Style    `json:"style_preference,omitempty"`
	NumRecommendations int               `json:"num_recommendations,omitempty"`
}

// Normalized returns a copy with defaults applied, used both for request
// handling and for cache fingerprinting so that equivalent requests share a
// cache entry.
func (r RecommendRequest) Normalized() RecommendRequest {
	if r.NumRecommendations <= 0 {
		r.NumRecommendations = engine.DefaultNumRecommendations
	}
	return r
}

// ProductResponse mirrors the catalog product wire format.
type ProductResponse struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Category    string        `json:"category"`
	Style       string        `json:"style"`
	Color       catalog.Color `json:"color"`
	Price       float64       `json:"price"`
	Season      string        `json:"season"`
	Occasion    []string      `json:"occasion"`
	Brand       string        `json:"brand,omitempty"`
	Description string        `json:"description,omitempty"`
}

// OutfitResponse is a single recommended outfit.
type OutfitResponse struct {
	Top         ProductResponse   `json:"top"`
	Bottom      ProductResponse   `json:"bottom"`
	Footwear    ProductResponse   `json:"footwear"`
	Accessories []ProductResponse `json:"accessories"`
	MatchScore  float64           `json:"match_score"`
	Reasoning   string            `json:"reasoning"`
	TotalPrice  float64           `json:"total_price"`
}

// NewProductResponse converts a catalog product to its wire format.
func NewProductResponse(p *catalog.Product) ProductResponse {
	occasions := make([]string, len(p.Occasions))
	for i, o := range p.Occasions {
		occasions[i] = string(o)
	}
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    string(p.Category),
		Style:       string(p.Style),
		Color:       p.Color,
		Price:       p.Price,
		Season:      string(p.Season),
		Occasion:    occasions,
		Brand:       p.Brand,
		Description: p.Description,
	}
}

// NewOutfitResponse converts an engine outfit to its wire format, rounding
// the score and price the way the API documents them.
func NewOutfitResponse(o *engine.Outfit) OutfitResponse {
	accessories := make([]ProductResponse, len(o.Accessories))
	for i, acc := range o.Accessories {
		accessories[i] = NewProductResponse(acc)
	}
	return OutfitResponse{
		Top:         NewProductResponse(o.Top),
		Bottom:      NewProductResponse(o.Bottom),
		Footwear:    NewProductResponse(o.Footwear),
		Accessories: accessories,
		MatchScore:  roundTo(o.MatchScore, 3),
		Reasoning:   o.Reasoning,
		TotalPrice:  roundTo(o.TotalPrice, 2),
	}
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
