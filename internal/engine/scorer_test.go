package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/outfitlab/ensemble/internal/catalog"
)

func TestWeightsSumToOne(t *testing.T) {
	sum := colorWeight + styleWeight + occasionWeight + seasonWeight + budgetWeight
	assert.InDelta(t, 1.0, sum, 1e-12)
}

func TestAnchorHarmony(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		expected float64
	}{
		{"near identical", 5, 0.95},
		{"analogous", 20, 0.85},
		{"triadic", 120, 0.75},
		{"complementary", 170, 0.80},
		{"split complementary", 45, 0.70},
		{"moderate", 90, 0.50},
		{"exact 180 falls to moderate", 180, 0.50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, reason := anchorHarmony(tt.distance)
			assert.InDelta(t, tt.expected, score, 1e-9)
			assert.NotEmpty(t, reason)
		})
	}
}

// monochromeOutfit builds an outfit whose items all share the top's hue and
// style, so color and style sub-scores are pinned at known values.
func monochromeOutfit(prices ...float64) Outfit {
	red := catalog.Color{R: 220, G: 20, B: 60}
	top := testProduct("top_1", catalog.CategoryTop, catalog.StyleCasual, red, prices[0])
	bottom := testProduct("bottom_1", catalog.CategoryBottom, catalog.StyleCasual, red, prices[1])
	footwear := testProduct("footwear_1", catalog.CategoryFootwear, catalog.StyleCasual, red, prices[2])
	acc := testProduct("acc_1", catalog.CategoryAccessory, catalog.StyleCasual, red, prices[3])

	total := 0.0
	for _, p := range prices {
		total += p
	}

	return Outfit{
		Top:         &top,
		Bottom:      &bottom,
		Footwear:    &footwear,
		Accessories: []*catalog.Product{&acc},
		TotalPrice:  total,
	}
}

func TestScore_KnownSubScoresReproduceWeightedSum(t *testing.T) {
	// All items monochromatic and saturated: color 0.95, style 1.0. No
	// occasion/season target: 0.7 each. No budget: 0.7.
	outfit := monochromeOutfit(10, 10, 10, 10)
	scorer := NewScorer(nil, nil, nil)

	score, reasoning := scorer.Score(&outfit)

	expected := 0.95*colorWeight + 1.0*styleWeight + 0.7*occasionWeight + 0.7*seasonWeight + 0.7*budgetWeight
	assert.InDelta(t, expected, score, 1e-9)
	assert.Contains(t, reasoning, "Excellent color harmony")
	assert.Contains(t, reasoning, "All items share casual style")
}

func TestScore_AlwaysWithinUnitInterval(t *testing.T) {
	outfits := []Outfit{
		monochromeOutfit(10, 10, 10, 10),
		monochromeOutfit(500, 500, 500, 500),
	}
	scorers := []*Scorer{
		NewScorer(nil, nil, nil),
		NewScorer(ptr(catalog.OccasionParty), ptr(catalog.SeasonWinter), ptr(50.0)),
	}

	for _, outfit := range outfits {
		for _, scorer := range scorers {
			score, _ := scorer.Score(&outfit)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)
		}
	}
}

func TestScoreBudget(t *testing.T) {
	tests := []struct {
		name     string
		total    float64
		budget   float64
		expected float64
	}{
		{"exactly at budget scores 1.0", 200, 200, 1.0},
		{"half of budget scores 0.9", 100, 200, 0.9},
		{"just under 70 percent scores 0.9", 139, 200, 0.9},
		{"above 70 percent scores 1.0", 160, 200, 1.0},
		{"20 percent over budget", 240, 200, 0.3},
		{"far over budget floors at 0.1", 1000, 200, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outfit := monochromeOutfit(tt.total, 0, 0, 0)
			scorer := NewScorer(nil, nil, ptr(tt.budget))

			score, _ := scorer.scoreBudget(&outfit)
			assert.InDelta(t, tt.expected, score, 1e-9)
		})
	}
}

func TestScoreBudget_NoBudgetIsNeutral(t *testing.T) {
	outfit := monochromeOutfit(100, 100, 100, 100)
	scorer := NewScorer(nil, nil, nil)

	score, reason := scorer.scoreBudget(&outfit)
	assert.Equal(t, 0.7, score)
	assert.Equal(t, "No budget constraint", reason)
}

func TestScoreStyleConsistency(t *testing.T) {
	red := catalog.Color{R: 220, G: 20, B: 60}
	newOutfit := func(styles ...catalog.Style) Outfit {
		top := testProduct("top_1", catalog.CategoryTop, styles[0], red, 10)
		bottom := testProduct("bottom_1", catalog.CategoryBottom, styles[1], red, 10)
		footwear := testProduct("footwear_1", catalog.CategoryFootwear, styles[2], red, 10)
		acc := testProduct("acc_1", catalog.CategoryAccessory, styles[3], red, 10)
		return Outfit{Top: &top, Bottom: &bottom, Footwear: &footwear,
			Accessories: []*catalog.Product{&acc}, TotalPrice: 40}
	}

	tests := []struct {
		name     string
		outfit   Outfit
		expected float64
	}{
		{
			name:     "all items share the top's style",
			outfit:   newOutfit(catalog.StyleCasual, catalog.StyleCasual, catalog.StyleCasual, catalog.StyleCasual),
			expected: 1.0,
		},
		{
			name:     "majority match",
			outfit:   newOutfit(catalog.StyleCasual, catalog.StyleCasual, catalog.StyleCasual, catalog.StyleFormal),
			expected: 0.75,
		},
		{
			name:     "mixed styles",
			outfit:   newOutfit(catalog.StyleCasual, catalog.StyleFormal, catalog.StyleSporty, catalog.StyleVintage),
			expected: 0.55,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scorer := NewScorer(nil, nil, nil)
			score, _ := scorer.scoreStyleConsistency(&tt.outfit)
			assert.InDelta(t, tt.expected, score, 1e-9)
		})
	}
}

func TestScoreOccasionFit(t *testing.T) {
	red := catalog.Color{R: 220, G: 20, B: 60}
	newOutfit := func(workItems int) Outfit {
		// Four items; the first workItems of them list the work occasion.
		products := []catalog.Product{
			testProduct("top_1", catalog.CategoryTop, catalog.StyleCasual, red, 10),
			testProduct("bottom_1", catalog.CategoryBottom, catalog.StyleCasual, red, 10),
			testProduct("footwear_1", catalog.CategoryFootwear, catalog.StyleCasual, red, 10),
			testProduct("acc_1", catalog.CategoryAccessory, catalog.StyleCasual, red, 10),
		}
		for i := 0; i < workItems; i++ {
			products[i].Occasions = []catalog.Occasion{catalog.OccasionWork}
		}
		return Outfit{Top: &products[0], Bottom: &products[1], Footwear: &products[2],
			Accessories: []*catalog.Product{&products[3]}, TotalPrice: 40}
	}

	tests := []struct {
		name      string
		workItems int
		expected  float64
	}{
		{"all items match", 4, 1.0},
		{"three of four match", 3, 0.8},
		{"half match", 2, 0.6},
		{"one of four matches", 1, 0.4},
		{"none match", 0, 0.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outfit := newOutfit(tt.workItems)
			scorer := NewScorer(ptr(catalog.OccasionWork), nil, nil)
			score, _ := scorer.scoreOccasionFit(&outfit)
			assert.InDelta(t, tt.expected, score, 1e-9)
		})
	}
}

func TestScoreSeasonFit_AllSeasonCountsAsMatch(t *testing.T) {
	// monochromeOutfit items are all-season, so any target season matches.
	outfit := monochromeOutfit(10, 10, 10, 10)
	scorer := NewScorer(nil, ptr(catalog.SeasonWinter), nil)

	score, reason := scorer.scoreSeasonFit(&outfit)
	assert.Equal(t, 1.0, score)
	assert.Contains(t, reason, "winter")
}

func TestScoreColorHarmony_NeutralBonus(t *testing.T) {
	// White and near-black items have saturation 0; four neutral items cap
	// the bonus at 0.1 and the final score at 1.0.
	white := catalog.Color{R: 255, G: 255, B: 255}
	top := testProduct("top_1", catalog.CategoryTop, catalog.StyleCasual, white, 10)
	bottom := testProduct("bottom_1", catalog.CategoryBottom, catalog.StyleCasual, white, 10)
	footwear := testProduct("footwear_1", catalog.CategoryFootwear, catalog.StyleCasual, white, 10)
	acc := testProduct("acc_1", catalog.CategoryAccessory, catalog.StyleCasual, white, 10)
	outfit := Outfit{Top: &top, Bottom: &bottom, Footwear: &footwear,
		Accessories: []*catalog.Product{&acc}, TotalPrice: 40}

	scorer := NewScorer(nil, nil, nil)
	score, reason := scorer.scoreColorHarmony(&outfit)

	assert.Equal(t, 1.0, score) // 0.95 average + capped bonus, clamped
	assert.Contains(t, reason, "matches base color")
}

func TestScoreColorHarmony_NeutralReasonSurfacesOnShortOutfits(t *testing.T) {
	// With only two non-top items the neutral clause survives the
	// three-reason cap.
	white := catalog.Color{R: 255, G: 255, B: 255}
	top := testProduct("top_1", catalog.CategoryTop, catalog.StyleCasual, white, 10)
	bottom := testProduct("bottom_1", catalog.CategoryBottom, catalog.StyleCasual, white, 10)
	footwear := testProduct("footwear_1", catalog.CategoryFootwear, catalog.StyleCasual, white, 10)
	outfit := Outfit{Top: &top, Bottom: &bottom, Footwear: &footwear, TotalPrice: 30}

	scorer := NewScorer(nil, nil, nil)
	_, reason := scorer.scoreColorHarmony(&outfit)
	assert.Contains(t, reason, "3 neutral item(s) add versatility")
}

func TestAssembleReasoning_SkipsDimensionsBelowThreshold(t *testing.T) {
	scorer := NewScorer(ptr(catalog.OccasionWork), nil, nil)

	reasoning := scorer.assembleReasoning(
		0.5, "clashing palette",
		0.55, "eclectic",
		0.4, "not suited",
		0.7, "ignored without target",
		"ignored without budget",
	)

	assert.Contains(t, reasoning, "Color harmony: clashing palette")
	assert.NotContains(t, reasoning, "Style:")
	assert.NotContains(t, reasoning, "Occasion:")
	assert.NotContains(t, reasoning, "Season:")
	assert.NotContains(t, reasoning, "Budget:")
}
