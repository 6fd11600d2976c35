package catalog_test

import (
	"testing"

	"github.com/drinkwise/bac-cli/internal/catalog"
	"github.com/drinkwise/bac-cli/internal/model"
)

func TestSkusFlatten(t *testing.T) {
	t.Parallel()
	skus := catalog.Skus()
	if len(skus) == 0 {
		t.Fatalf("embedded catalog is empty")
	}
	for _, sku := range skus {
		if sku.ID == "" || sku.Name == "" || sku.Category == "" {
			t.Fatalf("incomplete sku: %+v", sku)
		}
		if sku.ABV < 0 || sku.VolumeML < 0 {
			t.Fatalf("negative numeric field: %+v", sku)
		}
	}
}

func TestFind(t *testing.T) {
	t.Parallel()
	skus := catalog.Skus()
	sku, ok := catalog.Find(skus, "beer_lager_330")
	if !ok {
		t.Fatalf("expected beer_lager_330 in catalog")
	}
	if sku.Category != "beer" {
		t.Fatalf("expected category beer, got %q", sku.Category)
	}
	if _, ok := catalog.Find(skus, "no_such_sku"); ok {
		t.Fatalf("unexpected match for unknown id")
	}
}

func TestRankedPrefersFavorites(t *testing.T) {
	t.Parallel()
	skus := []model.Sku{
		{ID: "a", Name: "Zeta"},
		{ID: "b", Name: "Alpha"},
		{ID: "c", Name: "Midway"},
	}
	ranked := catalog.Ranked(skus, map[string]int{"c": 5, "a": 2})
	if ranked[0].ID != "c" || ranked[1].ID != "a" {
		t.Fatalf("expected favorites first, got %v", ranked)
	}
	if ranked[2].ID != "b" {
		t.Fatalf("expected unused sku last, got %v", ranked)
	}
	// ties fall back to name order
	tied := catalog.Ranked(skus, nil)
	if tied[0].Name != "Alpha" || tied[2].Name != "Zeta" {
		t.Fatalf("expected name order on ties, got %v", tied)
	}
}

func TestCategoriesAndBrands(t *testing.T) {
	t.Parallel()
	skus := catalog.Skus()
	categories := catalog.Categories(skus)
	if len(categories) == 0 {
		t.Fatalf("expected categories")
	}
	brands := catalog.Brands(skus, "beer")
	if len(brands) == 0 {
		t.Fatalf("expected beer brands")
	}
	for _, b := range brands {
		if b == "" {
			t.Fatalf("empty brand in %v", brands)
		}
	}
}
