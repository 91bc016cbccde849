package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Catalog is an immutable snapshot of the product inventory with lookup
// indexes built at load time. Safe for concurrent reads.
type Catalog struct {
	products   []Product
	byID       map[string]*Product
	byCategory map[Category][]*Product
}

// New builds a catalog from the given products. It validates every entry and
// fails loudly on malformed data; recommendation-time code may assume a valid
// catalog.
func New(products []Product) (*Catalog, error) {
	c := &Catalog{
		products:   products,
		byID:       make(map[string]*Product, len(products)),
		byCategory: make(map[Category][]*Product, len(Categories)),
	}

	for i := range products {
		p := &c.products[i]
		if err := validateProduct(p); err != nil {
			return nil, fmt.Errorf("catalog entry %d (%q): %w", i, p.ID, err)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("catalog entry %d: duplicate product id %q", i, p.ID)
		}
		c.byID[p.ID] = p
		c.byCategory[p.Category] = append(c.byCategory[p.Category], p)
	}

	return c, nil
}

// Load reads a JSON catalog file (an array of products) and builds a catalog.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var products []Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", path, err)
	}

	return New(products)
}

func validateProduct(p *Product) error {
	if p.ID == "" {
		return fmt.Errorf("empty product id")
	}
	if p.Name == "" {
		return fmt.Errorf("empty product name")
	}
	if !p.Category.Valid() {
		return fmt.Errorf("unknown category %q", p.Category)
	}
	if !p.Style.Valid() {
		return fmt.Errorf("unknown style %q", p.Style)
	}
	if !p.Season.Valid() {
		return fmt.Errorf("unknown season %q", p.Season)
	}
	if p.Price < 0 {
		return fmt.Errorf("negative price %.2f", p.Price)
	}
	if len(p.Occasions) == 0 {
		return fmt.Errorf("empty occasion list")
	}
	for _, o := range p.Occasions {
		if !o.Valid() {
			return fmt.Errorf("unknown occasion %q", o)
		}
	}
	return nil
}

// Products returns all products in catalog order.
func (c *Catalog) Products() []Product {
	return c.products
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}

// ByID returns the product with the given identifier, or nil.
func (c *Catalog) ByID(id string) *Product {
	return c.byID[id]
}

// ByCategory returns all products in the given category. The returned slice
// is shared; callers must not mutate it.
func (c *Catalog) ByCategory(cat Category) []*Product {
	return c.byCategory[cat]
}

// CountByCategory returns the number of products per category.
func (c *Catalog) CountByCategory() map[Category]int {
	counts := make(map[Category]int, len(Categories))
	for _, cat := range Categories {
		counts[cat] = len(c.byCategory[cat])
	}
	return counts
}
