package store_test

import (
	"testing"

	"github.com/drinkwise/bac-cli/internal/model"
	"github.com/drinkwise/bac-cli/internal/store"
)

func TestSettingsDefaultsOnEmptyStore(t *testing.T) {
	t.Parallel()
	st, _ := newTestStore(t, testNow)
	got, err := st.Settings()
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	if got != store.DefaultSettings() {
		t.Fatalf("expected defaults, got %+v", got)
	}
}

func TestSettingsSelfHealCorruptBlob(t *testing.T) {
	t.Parallel()
	cases := map[string][]byte{
		"not json":     []byte(`{{{`),
		"wrong type":   []byte(`"just a string"`),
		"wrong fields": []byte(`{"standard_drink_grams":"lots","weight_kg":"heavy","sex":42,"bac_limit_percent":true,"plan_hours":null}`),
		"out of enum":  []byte(`{"standard_drink_grams":12,"weight_kg":-80,"sex":"robot","bac_limit_percent":0.5,"plan_hours":-2}`),
	}
	for name, blob := range cases {
		st, backend := newTestStore(t, testNow)
		backend.m[store.KeySettings] = blob
		got, err := st.Settings()
		if err != nil {
			t.Fatalf("%s: settings returned error: %v", name, err)
		}
		if got != store.NormalizeSettings(got) {
			t.Fatalf("%s: result not normalized: %+v", name, got)
		}
		if got.Sex != model.SexUnknown {
			t.Fatalf("%s: expected sex defaulted to unknown, got %q", name, got.Sex)
		}
	}
}

func TestSettingsPartialBlobKeepsValidFields(t *testing.T) {
	t.Parallel()
	st, backend := newTestStore(t, testNow)
	backend.m[store.KeySettings] = []byte(`{"weight_kg":72.5,"sex":"male"}`)
	got, err := st.Settings()
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	if got.WeightKg != 72.5 || got.Sex != model.SexMale {
		t.Fatalf("valid fields lost: %+v", got)
	}
	if got.StandardDrinkGrams != 10 || got.BACLimitPercent != 0.05 || got.PlanHours != 6 {
		t.Fatalf("missing fields not defaulted: %+v", got)
	}
}

func TestSaveSettingsMergesPatch(t *testing.T) {
	t.Parallel()
	st, _ := newTestStore(t, testNow)
	weight := 68.0
	if _, err := st.SaveSettings(store.SettingsPatch{WeightKg: &weight}); err != nil {
		t.Fatalf("save weight: %v", err)
	}
	std := 14.0
	sex := model.SexFemale
	got, err := st.SaveSettings(store.SettingsPatch{StandardDrinkGrams: &std, Sex: &sex})
	if err != nil {
		t.Fatalf("save std/sex: %v", err)
	}
	if got.WeightKg != 68 {
		t.Fatalf("earlier patch lost: %+v", got)
	}
	if got.StandardDrinkGrams != 14 || got.Sex != model.SexFemale {
		t.Fatalf("patch not applied: %+v", got)
	}
}

func TestSaveSettingsInvalidValueFallsBack(t *testing.T) {
	t.Parallel()
	st, _ := newTestStore(t, testNow)
	std := 12.0
	got, err := st.SaveSettings(store.SettingsPatch{StandardDrinkGrams: &std})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if got.StandardDrinkGrams != 10 {
		t.Fatalf("out-of-enum standard drink should fall back to 10, got %v", got.StandardDrinkGrams)
	}
}
