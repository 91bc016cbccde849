package catalog

// Seed returns the built-in demo inventory, used when no catalog file is
// configured. In production the catalog would come from a merchandising feed.
func Seed() *Catalog {
	c, err := New(seedProducts())
	if err != nil {
		// The seed data is compiled in; failing validation is a programming error.
		panic("catalog: invalid seed data: " + err.Error())
	}
	return c
}

func seedProducts() []Product {
	return []Product{
		// Tops
		{
			ID:        "top_001",
			Name:      "Classic White T-Shirt",
			Category:  CategoryTop,
			Style:     StyleCasual,
			Color:     Color{R: 255, G: 255, B: 255},
			Price:     29.99,
			Season:    SeasonAll,
			Occasions: []Occasion{OccasionEveryday, OccasionSports, OccasionTravel},
			Brand:     "Basics Co",
		},
		{
			ID:        "top_002",
			Name:      "Navy Blue Blazer",
			Category:  CategoryTop,
			Style:     StyleFormal,
			Color:     Color{R: 0, G: 32, B: 96},
			Price:     199.99,
			Season:    SeasonAll,
			Occasions: []Occasion{OccasionWork, OccasionFormalEvent, OccasionDate},
			Brand:     "Formal Wear",
		},
		{
			ID:        "top_003",
			Name:      "Black Leather Jacket",
			Category:  CategoryTop,
			Style:     StyleStreetwear,
			Color:     Color{R: 20, G: 20, B: 20},
			Price:     299.99,
			Season:    SeasonFall,
			Occasions: []Occasion{OccasionEveryday, OccasionParty, OccasionDate},
			Brand:     "Urban Edge",
		},
		{
			ID:        "top_004",
			Name:      "Floral Summer Blouse",
			Category:  CategoryTop,
			Style:     StyleBohemian,
			Color:     Color{R: 255, G: 182, B: 193},
			Price:     49.99,
			Season:    SeasonSpring,
			Occasions: []Occasion{OccasionEveryday, OccasionDate, OccasionParty},
			Brand:     "Boho Chic",
		},
		{
			ID:        "top_005",
			Name:      "Gray Hoodie",
			Category:  CategoryTop,
			Style:     StyleCasual,
			Color:     Color{R: 128, G: 128, B: 128},
			Price:     59.99,
			Season:    SeasonFall,
			Occasions: []Occasion{OccasionEveryday, OccasionSports, OccasionTravel},
			Brand:     "Comfort Wear",
		},
		{
			ID:        "top_006",
			Name:      "White Button-Down Shirt",
			Category:  CategoryTop,
			Style:     StyleBusiness,
			Color:     Color{R: 250, G: 250, B: 250},
			Price:     79.99,
			Season:    SeasonAll,
			Occasions: []Occasion{OccasionWork, OccasionFormalEvent},
			Brand:     "Professional",
		},
		{
			ID:        "top_007",
			Name:      "Red Sweater",
			Category:  CategoryTop,
			Style:     StyleCasual,
			Color:     Color{R: 220, G: 20, B: 60},
			Price:     69.99,
			Season:    SeasonWinter,
			Occasions: []Occasion{OccasionEveryday, OccasionDate},
			Brand:     "Cozy Wear",
		},
		{
			ID:        "top_008",
			Name:      "Denim Jacket",
			Category:  CategoryTop,
			Style:     StyleCasual,
			Color:     Color{R: 59, G: 89, B: 152},
			Price:     89.99,
			Season:    SeasonSpring,
			Occasions: []Occasion{OccasionEveryday, OccasionTravel},
			Brand:     "Classic Denim",
		},

		// Bottoms
		{
			ID:        "bottom_001",
			Name:      "Dark Blue Jeans",
			Category:  CategoryBottom,
			Style:     StyleCasual,
			Color:     Color{R: 25, G: 25, B: 112},
			Price:     79.99,
			Season:    SeasonAll,
			Occasions: []Occasion{OccasionEveryday, OccasionDate, OccasionTravel},
			Brand:     "Denim Co",
		},
		{
			ID:        "bottom_002",
			Name:      "Black Dress Pants",
			Category:  CategoryBottom,
			Style:     StyleFormal,
			Color:     Color{R: 0, G: 0, B: 0},
			Price:     129.99,
			Season:    SeasonAll,
			Occasions: []Occasion{OccasionWork, OccasionFormalEvent},
			Brand:     "Formal Wear",
		},
		{
			ID:        "bottom_003",
			Name:      "Khaki Chinos",
			Category:  CategoryBottom,
			Style:     StyleCasual,
			Color:     Color{R: 240, G: 230, B: 140},
			Price:     69.99,
			Season:    SeasonAll,
			Occasions: []Occasion{OccasionEveryday, OccasionWork, OccasionTravel},
			Brand:     "Casual Co",
		},
		{
			ID:        "bottom_004",
			Name:      "Gray Sweatpants",
			Category:  CategoryBottom,
			Style:     StyleSporty,
			Color:     Color{R: 105, G: 105, B: 105},
			Price:     49.99,
			Season:    SeasonAll,
			Occasions: []Occasion{OccasionSports, OccasionEveryday},
			Brand:     "Athletic",
		},
		{
			ID:        "bottom_005",
			Name:      "White Linen Pants",
			Category:  CategoryBottom,
			Style:     StyleBohemian,
			Color:     Color{R: 255, G: 255, B: 255},
			Price:     89.99,
			Season:    SeasonSummer,
			Occasions: []Occasion{OccasionEveryday, OccasionDate, OccasionParty},
			Brand:     "Summer Style",
		},
		{
			ID:        "bottom_006",
			Name:      "Navy Blue Trousers",
			Category:  CategoryBottom,
			Style:     StyleBusiness,
			Color:     Color{R: 0, G: 0, B: 128},
			Price:     99.99,
			Season:    SeasonAll,
			Occasions: []Occasion{OccasionWork, OccasionFormalEvent},
			Brand:     "Professional",
		},
		{
			ID:        "bottom_007",
			Name:      "Black Leather Pants",
			Category:  CategoryBottom,
			Style:     StyleStreetwear,
			Color:     Color{R: 20, G: 20, B: 20},
			Price:     199.99,
			Season:    SeasonFall,
			Occasions: []Occasion{OccasionParty, OccasionDate},
			Brand:     "Urban Edge",
		},
		{
			ID:        "bottom_008",
			Name:      "Beige Cargo Pants",
			Category:  CategoryBottom,
			Style:     StyleCasual,
			Color:     Color{R: 245, G: 245, B: 220},
			Price:     79.99,
			Season:    SeasonAll,
			Occasions: []Occasion{OccasionEveryday, OccasionTravel},
			Brand:     "Adventure",
		},

		// Footwear
		{
			ID:        "footwear_001",
			Name:      "White Sneakers",
			Category:  CategoryFootwear,
			Style:     StyleCasual,
			Color:     Color{R: 255, G: 255, B: 255},
			Price:     99.99,
			Season:    SeasonAll,
			Occasions: []Occasion{OccasionEveryday, OccasionSports, OccasionTravel},
			Brand:     "Sport Co",
		},
		{
			ID:        "footwear_002",
			Name:      "Black Oxford Shoes",
			Category:  CategoryFootwear,
			Style:     StyleFormal,
			Color:     Color{R: 0, G: 0, B: 0},
			Price:     199.99,
			Season:    SeasonAll,
			Occasions: []Occasion{OccasionWork, OccasionFormalEvent},
			Brand:     "Formal Wear",
		},
		{
			ID:        "footwear_003",
			Name:      "Brown Leather Boots",
			Category:  CategoryFootwear,
			Style:     StyleCasual,
			Color:     Color{R: 139, G: 69, B: 19},
			Price:     249.99,
			Season:    SeasonFall,
			Occasions: []Occasion{OccasionEveryday, OccasionTravel},
			Brand:     "Outdoor Co",
		},
		{
			ID:        "footwear_004",
			Name:      "Black Ankle Boots",
			Category:  CategoryFootwear,
			Style:     StyleStreetwear,
			Color:     Color{R: 20, G: 20, B: 20},
			Price:     179.99,
			Season:    SeasonFall,
			Occasions: []Occasion{OccasionEveryday, OccasionParty, OccasionDate},
			Brand:     "Urban Edge",
		},
		{
			ID:        "footwear_005",
			Name:      "Tan Loafers",
			Category:  CategoryFootwear,
			Style:     StyleBusiness,
			Color:     Color{R: 210, G: 180, B: 140},
			Price:     149.99,
			Season:    SeasonAll,
			Occasions: []Occasion{OccasionWork, OccasionEveryday},
			Brand:     "Professional",
		},
		{
			ID:        "footwear_006",
			Name:      "Red High-Tops",
			Category:  CategoryFootwear,
			Style:     StyleSporty,
			Color:     Color{R: 220, G: 20, B: 60},
			Price:     119.99,
			Season:    SeasonAll,
			Occasions: []Occasion{OccasionSports, OccasionEveryday},
			Brand:     "Athletic",
		},
		{
			ID:        "footwear_007",
			Name:      "Navy Blue Boat Shoes",
			Category:  CategoryFootwear,
			Style:     StyleCasual,
			Color:     Color{R: 0, G: 32, B: 96},
			Price:     89.99,
			Season:    SeasonSummer,
			Occasions: []Occasion{OccasionEveryday, OccasionTravel},
			Brand:     "Summer Style",
		},
		{
			ID:        "footwear_008",
			Name:      "Gray Running Shoes",
			Category:  CategoryFootwear,
			Style:     StyleSporty,
			Color:     Color{R: 128, G: 128, B: 128},
			Price:     129.99,
			Season:    SeasonAll,
			Occasions: []Occasion{OccasionSports, OccasionEveryday},
			Brand:     "Athletic",
		},

		// Accessories
		{
			ID:        "acc_001",
			Name:      "Black Leather Belt",
			Category:  CategoryAccessory,
			Style:     StyleFormal,
			Color:     Color{R: 0, G: 0, B: 0},
			Price:     49.99,
			Season:    SeasonAll,
			Occasions: []Occasion{OccasionWork, OccasionFormalEvent, OccasionEveryday},
			Brand:     "Accessories Co",
		},
		{
			ID:        "acc_002",
			Name:      "Silver Watch",
			Category:  CategoryAccessory,
			Style:     StyleFormal,
			Color:     Color{R: 192, G: 192, B: 192},
			Price:     299.99,
			Season:    SeasonAll,
			Occasions: []Occasion{OccasionWork, OccasionFormalEvent, OccasionDate},
			Brand:     "Timepieces",
		},
		{
			ID:        "acc_003",
			Name:      "Brown Leather Wallet",
			Category:  CategoryAccessory,
			Style:     StyleCasual,
			Color:     Color{R: 139, G: 69, B: 19},
			Price:     79.99,
			Season:    SeasonAll,
			Occasions: []Occasion{OccasionEveryday, OccasionWork},
			Brand:     "Leather Goods",
		},
		{
			ID:        "acc_004",
			Name:      "Black Sunglasses",
			Category:  CategoryAccessory,
			Style:     StyleCasual,
			Color:     Color{R: 20, G: 20, B: 20},
			Price:     89.99,
			Season:    SeasonSummer,
			Occasions: []Occasion{OccasionEveryday, OccasionTravel},
			Brand:     "Sun Protection",
		},
		{
			ID:        "acc_005",
			Name:      "Navy Blue Scarf",
			Category:  CategoryAccessory,
			Style:     StyleCasual,
			Color:     Color{R: 0, G: 32, B: 96},
			Price:     39.99,
			Season:    SeasonWinter,
			Occasions: []Occasion{OccasionEveryday, OccasionTravel},
			Brand:     "Winter Co",
		},
		{
			ID:        "acc_006",
			Name:      "Gold Chain Necklace",
			Category:  CategoryAccessory,
			Style:     StyleStreetwear,
			Color:     Color{R: 255, G: 215, B: 0},
			Price:     149.99,
			Season:    SeasonAll,
			Occasions: []Occasion{OccasionParty, OccasionDate},
			Brand:     "Jewelry Co",
		},
		{
			ID:        "acc_007",
			Name:      "Beige Canvas Hat",
			Category:  CategoryAccessory,
			Style:     StyleCasual,
			Color:     Color{R: 245, G: 245, B: 220},
			Price:     29.99,
			Season:    SeasonSummer,
			Occasions: []Occasion{OccasionEveryday, OccasionTravel, OccasionSports},
			Brand:     "Outdoor Co",
		},
		{
			ID:        "acc_008",
			Name:      "Red Baseball Cap",
			Category:  CategoryAccessory,
			Style:     StyleSporty,
			Color:     Color{R: 220, G: 20, B: 60},
			Price:     24.99,
			Season:    SeasonAll,
			Occasions: []Occasion{OccasionSports, OccasionEveryday},
			Brand:     "Athletic",
		},
		{
			ID:        "acc_009",
			Name:      "Black Backpack",
			Category:  CategoryAccessory,
			Style:     StyleCasual,
			Color:     Color{R: 0, G: 0, B: 0},
			Price:     79.99,
			Season:    SeasonAll,
			Occasions: []Occasion{OccasionEveryday, OccasionWork, OccasionTravel},
			Brand:     "Travel Co",
		},
		{
			ID:        "acc_010",
			Name:      "White Pearl Earrings",
			Category:  CategoryAccessory,
			Style:     StyleFormal,
			Color:     Color{R: 255, G: 255, B: 255},
			Price:     199.99,
			Season:    SeasonAll,
			Occasions: []Occasion{OccasionFormalEvent, OccasionDate},
			Brand:     "Jewelry Co",
		},
	}
}
