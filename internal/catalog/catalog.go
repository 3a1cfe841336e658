// Package catalog holds the fixed coffee catalog shown in the carousel and
// the static copy rendered by the content pages.
package catalog

import (
	_ "embed"
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// CoffeeItem is one entry of the carousel. Colors are presentation only.
type CoffeeItem struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Image       string `yaml:"image" json:"image"`
	BgColor     string `yaml:"bg_color" json:"bg_color"`
	AccentColor string `yaml:"accent_color" json:"accent_color"`
	TextColor   string `yaml:"text_color" json:"text_color"`
}

// Catalog is the ordered, read-only list of coffee items.
// Order defines carousel traversal and the position label.
type Catalog struct {
	items []CoffeeItem
}

type catalogFile struct {
	Coffees []CoffeeItem `yaml:"coffees"`
}

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Parse decodes and validates a catalog YAML document.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(f.Coffees) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}
	seen := make(map[string]bool, len(f.Coffees))
	for i, c := range f.Coffees {
		if c.ID == "" {
			return nil, fmt.Errorf("coffee %d: id is required", i)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("coffee %d: duplicate id %q", i, c.ID)
		}
		seen[c.ID] = true
		if c.Name == "" {
			return nil, fmt.Errorf("coffee %q: name is required", c.ID)
		}
		for field, v := range map[string]string{
			"bg_color":     c.BgColor,
			"accent_color": c.AccentColor,
			"text_color":   c.TextColor,
		} {
			if !hexColor.MatchString(v) {
				return nil, fmt.Errorf("coffee %q: %s %q is not #RRGGBB", c.ID, field, v)
			}
		}
	}
	return &Catalog{items: f.Coffees}, nil
}

// Default returns the embedded five-item catalog.
// Panics if the embedded document is invalid, which is a build defect.
func Default() *Catalog {
	c, err := Parse(embeddedCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}

// New builds a catalog from items without YAML decoding. Used by tests.
func New(items ...CoffeeItem) *Catalog {
	out := make([]CoffeeItem, len(items))
	copy(out, items)
	return &Catalog{items: out}
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// At returns the item at index i and whether i was in range.
func (c *Catalog) At(i int) (CoffeeItem, bool) {
	if i < 0 || i >= len(c.items) {
		return CoffeeItem{}, false
	}
	return c.items[i], true
}

// IndexOf returns the position of the item with the given id, or -1.
func (c *Catalog) IndexOf(id string) int {
	for i, item := range c.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Items returns a copy of all items in carousel order.
func (c *Catalog) Items() []CoffeeItem {
	out := make([]CoffeeItem, len(c.items))
	copy(out, c.items)
	return out
}

// Head returns up to n items from the front of the catalog.
func (c *Catalog) Head(n int) []CoffeeItem {
	if n > len(c.items) {
		n = len(c.items)
	}
	if n < 0 {
		n = 0
	}
	out := make([]CoffeeItem, n)
	copy(out, c.items[:n])
	return out
}
