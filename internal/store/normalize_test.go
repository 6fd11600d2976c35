package store_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/drinkwise/bac-cli/internal/model"
	"github.com/drinkwise/bac-cli/internal/store"
)

var testNow = time.Date(2024, 1, 2, 20, 30, 0, 0, time.UTC)

func TestNormalizeItemDefaults(t *testing.T) {
	t.Parallel()
	it := store.NormalizeItem(model.DrinkItem{}, testNow)
	if it.ID == "" {
		t.Fatalf("expected generated id")
	}
	if it.TS != "2024-01-02T20:30:00Z" {
		t.Fatalf("expected timestamp backfilled with now, got %q", it.TS)
	}
	if it.Type != model.ItemTypeSku {
		t.Fatalf("expected default type sku, got %q", it.Type)
	}
	if it.Qty != 1 {
		t.Fatalf("expected qty floored at 1, got %d", it.Qty)
	}
}

func TestNormalizeItemClamps(t *testing.T) {
	t.Parallel()
	it := store.NormalizeItem(model.DrinkItem{
		Type:     "weird",
		VolumeML: -500,
		ABV:      -5,
		Qty:      -3,
		EthanolG: -20,
		Cups:     -2,
	}, testNow)
	if it.VolumeML != 0 || it.ABV != 0 || it.EthanolG != 0 || it.Cups != 0 {
		t.Fatalf("negative numerics not clamped: %+v", it)
	}
	if it.Qty != 1 {
		t.Fatalf("expected qty 1, got %d", it.Qty)
	}
	if it.Type != model.ItemTypeSku {
		t.Fatalf("unknown type should fall back to sku, got %q", it.Type)
	}
}

func TestNormalizeItemIdempotent(t *testing.T) {
	t.Parallel()
	once := store.NormalizeItem(model.DrinkItem{
		TS:       "2024-01-02T18:00:00.000Z",
		Type:     model.ItemTypeCustom,
		Name:     "Highball",
		VolumeML: 200,
		ABV:      8,
		Qty:      2,
		EthanolG: 25.2,
		Cups:     2.52,
	}, testNow)
	twice := store.NormalizeItem(once, testNow.Add(3*time.Hour))
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("normalize not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestNormalizeSessionIdempotent(t *testing.T) {
	t.Parallel()
	once := store.NormalizeSession(model.Session{
		StartTime: "2024-01-02T18:00:00Z",
		EndTime:   "not a timestamp",
		IsActive:  true,
		Items: []model.DrinkItem{
			{Name: "Lager", VolumeML: 330, ABV: 4.7, Qty: 1, EthanolG: 12.2, Cups: 1.22},
		},
	}, testNow)
	if once.EndTime != "" {
		t.Fatalf("unparsable end time should clear, got %q", once.EndTime)
	}
	twice := store.NormalizeSession(once, testNow.Add(time.Hour))
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("normalize not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestNormalizeSettingsEnums(t *testing.T) {
	t.Parallel()
	got := store.NormalizeSettings(model.Settings{
		StandardDrinkGrams: 12,
		WeightKg:           -4,
		Sex:                "robot",
		BACLimitPercent:    0.2,
		PlanHours:          -1,
	})
	want := model.Settings{
		StandardDrinkGrams: 10,
		WeightKg:           0,
		Sex:                model.SexUnknown,
		BACLimitPercent:    0.05,
		PlanHours:          0,
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}

	valid := model.Settings{
		StandardDrinkGrams: 14,
		WeightKg:           70,
		Sex:                model.SexFemale,
		BACLimitPercent:    0.08,
		PlanHours:          4,
	}
	if store.NormalizeSettings(valid) != valid {
		t.Fatalf("valid settings should pass through unchanged")
	}
}
