// Package catalog serves the built-in SKU list the add picker offers.
// The data ships compiled into the binary; favorites-based ranking comes
// from the store's counters at call time.
package catalog

import (
	_ "embed"
	"encoding/json"
	"sort"

	"github.com/drinkwise/bac-cli/internal/model"
)

//go:embed skus.json
var rawCatalog []byte

// document accepts both catalog file shapes: a flat searchIndex or
// category-keyed groups whose key overrides each entry's category.
type document struct {
	SearchIndex    []model.Sku            `json:"searchIndex"`
	CategoryGroups map[string][]model.Sku `json:"categoryGroups"`
}

func normalizeSku(sku model.Sku) model.Sku {
	if sku.ABV < 0 {
		sku.ABV = 0
	}
	if sku.VolumeML < 0 {
		sku.VolumeML = 0
	}
	return sku
}

// Skus returns the flattened catalog, dropping entries without an ID or
// name.
func Skus() []model.Sku {
	var doc document
	if err := json.Unmarshal(rawCatalog, &doc); err != nil {
		return nil
	}
	var flat []model.Sku
	if len(doc.SearchIndex) > 0 {
		flat = append(flat, doc.SearchIndex...)
	} else {
		categories := make([]string, 0, len(doc.CategoryGroups))
		for category := range doc.CategoryGroups {
			categories = append(categories, category)
		}
		sort.Strings(categories)
		for _, category := range categories {
			for _, sku := range doc.CategoryGroups[category] {
				sku.Category = category
				flat = append(flat, sku)
			}
		}
	}
	out := make([]model.Sku, 0, len(flat))
	for _, sku := range flat {
		if sku.ID == "" || sku.Name == "" {
			continue
		}
		out = append(out, normalizeSku(sku))
	}
	return out
}

// Ranked sorts a copy of skus most-used first, breaking ties by name.
func Ranked(skus []model.Sku, favorites map[string]int) []model.Sku {
	out := make([]model.Sku, len(skus))
	copy(out, skus)
	sort.SliceStable(out, func(i, j int) bool {
		fi, fj := favorites[out[i].ID], favorites[out[j].ID]
		if fi != fj {
			return fi > fj
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Find looks a SKU up by ID.
func Find(skus []model.Sku, id string) (model.Sku, bool) {
	for _, sku := range skus {
		if sku.ID == id {
			return sku, true
		}
	}
	return model.Sku{}, false
}

// Categories lists the distinct categories in catalog order of first
// appearance.
func Categories(skus []model.Sku) []string {
	seen := make(map[string]bool)
	var out []string
	for _, sku := range skus {
		if sku.Category == "" || seen[sku.Category] {
			continue
		}
		seen[sku.Category] = true
		out = append(out, sku.Category)
	}
	return out
}

// Brands lists the distinct brands within a category.
func Brands(skus []model.Sku, category string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, sku := range skus {
		if sku.Category != category || sku.Brand == "" || seen[sku.Brand] {
			continue
		}
		seen[sku.Brand] = true
		out = append(out, sku.Brand)
	}
	return out
}
