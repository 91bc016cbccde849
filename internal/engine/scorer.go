package engine

import (
	"fmt"
	"strings"

	"github.com/outfitlab/ensemble/internal/catalog"
)

// Scoring weights per dimension. They sum to exactly 1.0 and are not
// configurable per call.
const (
	colorWeight    = 0.30
	styleWeight    = 0.25
	occasionWeight = 0.20
	seasonWeight   = 0.15
	budgetWeight   = 0.10
)

// lowSaturation is the HSV saturation cutoff below which a color counts as
// neutral for the versatility bonus.
const lowSaturation = 0.2

// anchorHarmony is the fine-grained band table used by the scorer to
// classify an item's hue distance to the outfit's anchor (the top). It is a
// distinct function from the index's pairHarmony table and must stay so.
func anchorHarmony(d float64) (float64, string) {
	switch {
	case d < 15: // monochromatic / very similar
		return 0.95, "matches base color"
	case d < 30: // analogous
		return 0.85, "is analogous to base"
	case d > 115 && d < 125: // triadic
		return 0.75, "creates triadic harmony"
	case d > 150 && d < 180: // complementary
		return 0.80, "complements base color"
	case d > 30 && d < 60: // split complementary
		return 0.70, "creates split complementary harmony"
	default:
		return 0.50, "has moderate color harmony"
	}
}

// Scorer evaluates finished outfits against a request's targets. It is
// stateless per outfit; one scorer is created per recommendation call.
type Scorer struct {
	targetOccasion *catalog.Occasion
	targetSeason   *catalog.Season
	maxBudget      *float64
}

// NewScorer creates a scorer parameterized by the request's optional
// occasion, season and budget targets.
func NewScorer(occasion *catalog.Occasion, season *catalog.Season, maxBudget *float64) *Scorer {
	return &Scorer{
		targetOccasion: occasion,
		targetSeason:   season,
		maxBudget:      maxBudget,
	}
}

// Score computes the weighted match score in [0, 1] and a human-readable
// reasoning string for the outfit.
func (s *Scorer) Score(outfit *Outfit) (float64, string) {
	colorScore, colorReason := s.scoreColorHarmony(outfit)
	styleScore, styleReason := s.scoreStyleConsistency(outfit)
	occasionScore, occasionReason := s.scoreOccasionFit(outfit)
	seasonScore, seasonReason := s.scoreSeasonFit(outfit)
	budgetScore, budgetReason := s.scoreBudget(outfit)

	total := colorScore*colorWeight +
		styleScore*styleWeight +
		occasionScore*occasionWeight +
		seasonScore*seasonWeight +
		budgetScore*budgetWeight

	reasoning := s.assembleReasoning(
		colorScore, colorReason,
		styleScore, styleReason,
		occasionScore, occasionReason,
		seasonScore, seasonReason,
		budgetReason,
	)

	return total, reasoning
}

// scoreColorHarmony anchors on the top's hue, classifies every other item
// against it with the fine band table, averages the per-item scores and adds
// a bonus for neutral (low saturation) items.
func (s *Scorer) scoreColorHarmony(outfit *Outfit) (float64, string) {
	items := outfit.Items()
	anchorHue := items[0].Color.Hue()

	var sum float64
	reasons := make([]string, 0, len(items))

	for _, item := range items[1:] {
		d := hueDistance(item.Color.Hue(), anchorHue)
		itemScore, band := anchorHarmony(d)
		sum += itemScore
		reasons = append(reasons, item.Name+" "+band)
	}

	avg := 0.5
	if len(items) > 1 {
		avg = sum / float64(len(items)-1)
	}

	neutralCount := 0
	for _, item := range items {
		if item.Color.Saturation() < lowSaturation {
			neutralCount++
		}
	}
	if neutralCount > 0 {
		bonus := 0.03 * float64(neutralCount)
		if bonus > 0.1 {
			bonus = 0.1
		}
		avg += bonus
		reasons = append(reasons, fmt.Sprintf("%d neutral item(s) add versatility", neutralCount))
	}

	if avg > 1.0 {
		avg = 1.0
	}

	if len(reasons) > 3 {
		reasons = reasons[:3]
	}
	reason := strings.Join(reasons, "; ")
	if reason == "" {
		reason = "Color harmony evaluated"
	}

	return avg, reason
}

// scoreStyleConsistency scores the fraction of non-top items sharing the
// top's style.
func (s *Scorer) scoreStyleConsistency(outfit *Outfit) (float64, string) {
	items := outfit.Items()
	baseStyle := items[0].Style

	total := len(items) - 1
	if total == 0 {
		return 1.0, "Single item"
	}

	matches := 0
	for _, item := range items[1:] {
		if item.Style == baseStyle {
			matches++
		}
	}
	ratio := float64(matches) / float64(total)

	switch {
	case ratio == 1.0:
		return 1.0, fmt.Sprintf("All items share %s style", baseStyle)
	case ratio >= 0.5:
		return 0.75, fmt.Sprintf("Mostly %s style with some variation", baseStyle)
	default:
		return 0.55, "Mixed styles create eclectic look"
	}
}

// scoreOccasionFit scores the fraction of items listing the target occasion.
// Without a target the dimension is a flat neutral.
func (s *Scorer) scoreOccasionFit(outfit *Outfit) (float64, string) {
	if s.targetOccasion == nil {
		return 0.7, "No specific occasion specified"
	}
	occ := *s.targetOccasion

	items := outfit.Items()
	matching := 0
	for _, item := range items {
		if item.SuitsOccasion(occ) {
			matching++
		}
	}
	ratio := float64(matching) / float64(len(items))

	switch {
	case ratio >= 0.8:
		return 1.0, fmt.Sprintf("Perfect for %s occasion", occ)
	case ratio >= 0.6:
		return 0.8, fmt.Sprintf("Good fit for %s", occ)
	case ratio >= 0.4:
		return 0.6, fmt.Sprintf("Moderately suitable for %s", occ)
	default:
		return 0.4, fmt.Sprintf("May not be ideal for %s", occ)
	}
}

// scoreSeasonFit mirrors the occasion dimension using season-or-all-season
// matching.
func (s *Scorer) scoreSeasonFit(outfit *Outfit) (float64, string) {
	if s.targetSeason == nil {
		return 0.7, "No specific season specified"
	}
	season := *s.targetSeason

	items := outfit.Items()
	matching := 0
	for _, item := range items {
		if item.Season.Matches(season) {
			matching++
		}
	}
	ratio := float64(matching) / float64(len(items))

	switch {
	case ratio >= 0.8:
		return 1.0, fmt.Sprintf("Perfect for %s season", season)
	case ratio >= 0.6:
		return 0.8, fmt.Sprintf("Good for %s season", season)
	case ratio >= 0.4:
		return 0.6, fmt.Sprintf("Moderately suitable for %s", season)
	default:
		return 0.4, fmt.Sprintf("May not be ideal for %s", season)
	}
}

// scoreBudget rewards outfits that use most of the budget without exceeding
// it and penalizes overage proportionally, floored at 0.1.
func (s *Scorer) scoreBudget(outfit *Outfit) (float64, string) {
	if s.maxBudget == nil {
		return 0.7, "No budget constraint"
	}
	budget := *s.maxBudget
	total := outfit.TotalPrice

	if total <= budget {
		if total/budget < 0.7 {
			return 0.9, fmt.Sprintf("Within budget ($%.2f of $%.2f)", total, budget)
		}
		return 1.0, fmt.Sprintf("Optimal budget usage ($%.2f of $%.2f)", total, budget)
	}

	overage := total - budget
	penalty := overage / budget
	if penalty > 0.5 {
		penalty = 0.5
	}
	score := 0.5 - penalty
	if score < 0.1 {
		score = 0.1
	}
	return score, fmt.Sprintf("Exceeds budget by $%.2f", overage)
}

// assembleReasoning joins the per-dimension clauses that cross their
// relevance thresholds into a single sentence-like string.
func (s *Scorer) assembleReasoning(
	colorScore float64, colorReason string,
	styleScore float64, styleReason string,
	occasionScore float64, occasionReason string,
	seasonScore float64, seasonReason string,
	budgetReason string,
) string {
	parts := make([]string, 0, 5)

	switch {
	case colorScore >= 0.8:
		parts = append(parts, "Excellent color harmony: "+colorReason)
	case colorScore >= 0.6:
		parts = append(parts, "Good color coordination: "+colorReason)
	default:
		parts = append(parts, "Color harmony: "+colorReason)
	}

	if styleScore >= 0.8 {
		parts = append(parts, "Style: "+styleReason)
	}
	if s.targetOccasion != nil && occasionScore >= 0.7 {
		parts = append(parts, "Occasion: "+occasionReason)
	}
	if s.targetSeason != nil && seasonScore >= 0.7 {
		parts = append(parts, "Season: "+seasonReason)
	}
	if s.maxBudget != nil {
		parts = append(parts, "Budget: "+budgetReason)
	}

	if len(parts) == 0 {
		return "Well-coordinated outfit"
	}
	return strings.Join(parts, ". ")
}
