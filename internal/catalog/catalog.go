package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spec-kit/food-order-service/internal/domain"
)

// Catalog is the immutable menu: product id to entry. It is built once at
// process start and shared read-only across requests.
type Catalog map[string]domain.MenuEntry

type menuFileEntry struct {
	Name  string                `json:"name"`
	Price map[domain.Size]int64 `json:"price"`
}

// Load reads a menu JSON file keyed by product id. An empty path yields the
// built-in default menu.
func Load(path string) (Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu file: %w", err)
	}

	var entries map[string]menuFileEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse menu file: %w", err)
	}

	catalog := make(Catalog, len(entries))
	for id, entry := range entries {
		catalog[id] = domain.MenuEntry{ProductID: id, Name: entry.Name, Prices: entry.Price}
	}
	return catalog, nil
}

// Default returns the built-in menu used when no menu file is configured.
func Default() Catalog {
	return Catalog{
		"p1": {ProductID: "p1", Name: "Margherita Pizza", Prices: map[domain.Size]int64{
			domain.SizeSmall: 350, domain.SizeMedium: 500, domain.SizeLarge: 700,
		}},
		"p2": {ProductID: "p2", Name: "Pepperoni Pizza", Prices: map[domain.Size]int64{
			domain.SizeSmall: 450, domain.SizeMedium: 600, domain.SizeLarge: 800,
		}},
		"p3": {ProductID: "p3", Name: "Hawaiian Pizza", Prices: map[domain.Size]int64{
			domain.SizeSmall: 400, domain.SizeMedium: 550, domain.SizeLarge: 750,
		}},
		"d1": {ProductID: "d1", Name: "Soda", Prices: map[domain.Size]int64{
			domain.SizeSmall: 80, domain.SizeLarge: 150,
		}},
	}
}

// Lookup returns the entry for a product id.
func (c Catalog) Lookup(productID string) (domain.MenuEntry, bool) {
	entry, ok := c[productID]
	return entry, ok
}

// Entries lists the menu sorted by product id for stable API output.
func (c Catalog) Entries() []domain.MenuEntry {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	entries := make([]domain.MenuEntry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, c[id])
	}
	return entries
}
