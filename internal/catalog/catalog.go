// Package catalog holds the read-only Apple product reference data and the
// cascading selection used to create products from it. The dataset is loaded
// once at startup and never mutated, so all queries are safe for concurrent use.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"vitrine/internal/domain"
)

var ErrItemNotFound = errors.New("item não encontrado no catálogo")

type Item struct {
	Name     string   `json:"name"`
	Storages []string `json:"storages"`
	Colors   []string `json:"colors"`
}

type Entry struct {
	Category string `json:"category"`
	Year     int    `json:"year"`
	Items    []Item `json:"items"`
}

type Catalog struct {
	entries []Entry
}

// Load reads and validates the catalog dataset from a JSON file.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	var entries []Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}
	return New(entries)
}

// New validates the entries: categories must be known, (category, year) pairs
// unique, and item names unique within their bucket.
func New(entries []Entry) (*Catalog, error) {
	seenBucket := map[string]bool{}
	for _, e := range entries {
		if !domain.ValidCategory(e.Category) {
			return nil, fmt.Errorf("catalog: unknown category %q", e.Category)
		}
		bucket := fmt.Sprintf("%s/%d", e.Category, e.Year)
		if seenBucket[bucket] {
			return nil, fmt.Errorf("catalog: duplicate bucket %s", bucket)
		}
		seenBucket[bucket] = true

		seenName := map[string]bool{}
		for _, it := range e.Items {
			if it.Name == "" {
				return nil, fmt.Errorf("catalog: empty item name in %s", bucket)
			}
			if seenName[it.Name] {
				return nil, fmt.Errorf("catalog: duplicate item %q in %s", it.Name, bucket)
			}
			seenName[it.Name] = true
		}
	}
	return &Catalog{entries: entries}, nil
}

// Entries returns the raw dataset, e.g. for the catalog API.
func (c *Catalog) Entries() []Entry { return c.entries }

// Categories returns the distinct categories present, in catalog order.
func (c *Catalog) Categories() []string {
	var out []string
	seen := map[string]bool{}
	for _, e := range c.entries {
		if !seen[e.Category] {
			seen[e.Category] = true
			out = append(out, e.Category)
		}
	}
	return out
}

// Years returns the years available for a category, descending.
func (c *Catalog) Years(category string) []int {
	var out []int
	for _, e := range c.entries {
		if e.Category == category {
			out = append(out, e.Year)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

// Items returns the items for a (category, year) bucket in catalog order.
// A bucket that does not exist yields an empty slice, not an error.
func (c *Catalog) Items(category string, year int) []Item {
	for _, e := range c.entries {
		if e.Category == category && e.Year == year {
			return e.Items
		}
	}
	return nil
}

// ItemByName looks an item up inside its (category, year) bucket.
func (c *Catalog) ItemByName(category string, year int, name string) (Item, error) {
	for _, it := range c.Items(category, year) {
		if it.Name == name {
			return it, nil
		}
	}
	return Item{}, ErrItemNotFound
}
