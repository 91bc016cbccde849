package catalog

// Category identifies which outfit slot a product occupies.
type Category string

const (
	CategoryTop       Category = "top"
	CategoryBottom    Category = "bottom"
	CategoryFootwear  Category = "footwear"
	CategoryAccessory Category = "accessory"
)

// Categories lists all product categories in slot order.
var Categories = []Category{CategoryTop, CategoryBottom, CategoryFootwear, CategoryAccessory}

// Valid reports whether the category is one of the known values.
func (c Category) Valid() bool {
	switch c {
	case CategoryTop, CategoryBottom, CategoryFootwear, CategoryAccessory:
		return true
	}
	return false
}

// Style is a fashion style tag.
type Style string

const (
	StyleCasual     Style = "casual"
	StyleFormal     Style = "formal"
	StyleSporty     Style = "sporty"
	StyleBohemian   Style = "bohemian"
	StyleMinimalist Style = "minimalist"
	StyleVintage    Style = "vintage"
	StyleStreetwear Style = "streetwear"
	StyleBusiness   Style = "business"
)

// Valid reports whether the style is one of the known values.
func (s Style) Valid() bool {
	switch s {
	case StyleCasual, StyleFormal, StyleSporty, StyleBohemian,
		StyleMinimalist, StyleVintage, StyleStreetwear, StyleBusiness:
		return true
	}
	return false
}

// Season is a seasonal applicability tag. SeasonAll matches every target season.
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
	SeasonWinter Season = "winter"
	SeasonAll    Season = "all_season"
)

// Valid reports whether the season is one of the known values.
func (s Season) Valid() bool {
	switch s {
	case SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter, SeasonAll:
		return true
	}
	return false
}

// Matches reports whether an item tagged with season s is wearable in target.
func (s Season) Matches(target Season) bool {
	return s == target || s == SeasonAll
}

// Occasion is an occasion a product is suitable for.
type Occasion string

const (
	OccasionEveryday    Occasion = "everyday"
	OccasionWork        Occasion = "work"
	OccasionParty       Occasion = "party"
	OccasionDate        Occasion = "date"
	OccasionSports      Occasion = "sports"
	OccasionFormalEvent Occasion = "formal_event"
	OccasionTravel      Occasion = "travel"
)

// Valid reports whether the occasion is one of the known values.
func (o Occasion) Valid() bool {
	switch o {
	case OccasionEveryday, OccasionWork, OccasionParty, OccasionDate,
		OccasionSports, OccasionFormalEvent, OccasionTravel:
		return true
	}
	return false
}

// Product is a single catalog item. Products are immutable after catalog load.
type Product struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Category    Category   `json:"category"`
	Style       Style      `json:"style"`
	Color       Color      `json:"color"`
	Price       float64    `json:"price"`
	Season      Season     `json:"season"`
	Occasions   []Occasion `json:"occasion"`
	Brand       string     `json:"brand,omitempty"`
	Description string     `json:"description,omitempty"`
}

// SuitsOccasion reports whether the product lists the given occasion.
func (p *Product) SuitsOccasion(occ Occasion) bool {
	for _, o := range p.Occasions {
		if o == occ {
			return true
		}
	}
	return false
}
