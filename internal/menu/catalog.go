// What2Eat - Menu Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/what2eat

package menu

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
)

//go:embed catalog.json
var embeddedCatalog []byte

// Catalog validation errors.
var (
	ErrEmptyCatalog = errors.New("catalog has no items")
	ErrDuplicateID  = errors.New("duplicate item id")
	ErrMissingField = errors.New("missing required field")
	ErrInvalidTag   = errors.New("tag outside controlled vocabulary")
)

// catalogFile is the on-disk representation of a catalog.
type catalogFile struct {
	Version int    `json:"version"`
	Items   []Item `json:"items"`
}

// Catalog is a read-only, validated collection of menu items. It is safe for
// concurrent use because nothing mutates it after construction.
type Catalog struct {
	version int
	items   []Item
	byID    map[string]int
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(embeddedCatalog)
}

// MustDefault is Default for package initialisation and tests.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}

// Load reads a catalog from a JSON file. An empty path yields the embedded
// catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(f.Version, f.Items)
}

// New builds a catalog from items after validating them.
func New(version int, items []Item) (*Catalog, error) {
	c := &Catalog{
		version: version,
		items:   make([]Item, len(items)),
		byID:    make(map[string]int, len(items)),
	}
	copy(c.items, items)
	for i := range c.items {
		c.byID[c.items[i].ID] = i
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks catalog-wide invariants and returns every violation found.
func (c *Catalog) Validate() error {
	if len(c.items) == 0 {
		return ErrEmptyCatalog
	}

	var errs []error
	seen := make(map[string]bool, len(c.items))
	for i := range c.items {
		it := &c.items[i]
		if it.ID == "" {
			errs = append(errs, fmt.Errorf("item %d: %w: id", i, ErrMissingField))
			continue
		}
		if seen[it.ID] {
			errs = append(errs, fmt.Errorf("item %s: %w", it.ID, ErrDuplicateID))
		}
		seen[it.ID] = true
		errs = append(errs, validateItem(it)...)
	}
	return errors.Join(errs...)
}

func validateItem(it *Item) []error {
	var errs []error
	if it.Name == "" {
		errs = append(errs, fmt.Errorf("item %s: %w: name", it.ID, ErrMissingField))
	}
	for _, f := range []Facet{FacetMealTime, FacetCuisine, FacetDishType} {
		if len(it.Tags.Values(f)) == 0 {
			errs = append(errs, fmt.Errorf("item %s: %w: tags.%s", it.ID, ErrMissingField, f))
		}
	}
	if it.SpicyLevel < 0 || it.SpicyLevel > 3 {
		errs = append(errs, fmt.Errorf("item %s: spicyLevel must be between 0 and 3, got %d", it.ID, it.SpicyLevel))
	}
	if it.Calories != "" && !Contains(calorieClasses, it.Calories) {
		errs = append(errs, fmt.Errorf("item %s: %w: calories=%q", it.ID, ErrInvalidTag, it.Calories))
	}
	for _, f := range taggedFacets {
		for _, v := range it.Tags.Values(f) {
			if !InVocabulary(f, v) {
				errs = append(errs, fmt.Errorf("item %s: %w: %s=%q", it.ID, ErrInvalidTag, f, v))
			}
		}
	}
	return errs
}

// Version returns the catalog document version.
func (c *Catalog) Version() int {
	return c.version
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Items returns the items in catalog order. The returned slice is a copy but
// the tag slices are shared and must be treated as read-only.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Get looks up an item by id.
func (c *Catalog) Get(id string) (Item, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Item{}, false
	}
	return c.items[i], true
}

// Filter returns the items for which keep returns true, in catalog order.
func (c *Catalog) Filter(keep func(*Item) bool) []Item {
	var out []Item
	for i := range c.items {
		if keep(&c.items[i]) {
			out = append(out, c.items[i])
		}
	}
	return out
}
