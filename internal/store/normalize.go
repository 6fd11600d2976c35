package store

import (
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/drinkwise/bac-cli/internal/model"
)

// Decoding is two-layered: the as*/to* coercers turn unknown-shaped slot
// data into typed entities field by field, and the Normalize* functions
// enforce the entity invariants on the typed value. Normalize* is
// idempotent, so re-reading an already-normalized record is a no-op.

func asMap(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

func asSlice(v any) []any {
	if s, ok := v.([]any); ok {
		return s
	}
	return nil
}

func toNumber(v any, fallback float64) float64 {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return fallback
		}
		return n
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return fallback
		}
		return f
	default:
		return fallback
	}
}

func toString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return ""
	}
}

func toBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case float64:
		return b != 0
	case string:
		return b != ""
	default:
		return false
	}
}

func clampNonNegative(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// normalizeTimestamp reformats ts as RFC 3339 UTC, falling back to now
// when ts is absent or unparsable.
func normalizeTimestamp(ts string, now time.Time) string {
	if t, err := time.Parse(time.RFC3339, ts); err == nil {
		return isoTime(t)
	}
	return isoTime(now)
}

// normalizeEndTime is like normalizeTimestamp but an absent or unparsable
// end time means "still open" and stays empty.
func normalizeEndTime(ts string) string {
	if t, err := time.Parse(time.RFC3339, ts); err == nil {
		return isoTime(t)
	}
	return ""
}

// DefaultSettings returns the settings used before the user has configured
// anything.
func DefaultSettings() model.Settings {
	return model.Settings{
		StandardDrinkGrams: 10,
		WeightKg:           0,
		Sex:                model.SexUnknown,
		BACLimitPercent:    0.05,
		PlanHours:          6,
	}
}

func decodeSettings(v any) model.Settings {
	src := asMap(v)
	def := DefaultSettings()
	return model.Settings{
		StandardDrinkGrams: toNumber(src["standard_drink_grams"], def.StandardDrinkGrams),
		WeightKg:           toNumber(src["weight_kg"], def.WeightKg),
		Sex:                toString(src["sex"]),
		BACLimitPercent:    toNumber(src["bac_limit_percent"], def.BACLimitPercent),
		PlanHours:          toNumber(src["plan_hours"], def.PlanHours),
	}
}

// NormalizeSettings replaces out-of-enum values with their defaults and
// clamps the open-ended ones. There is no invalid-settings outcome.
func NormalizeSettings(st model.Settings) model.Settings {
	def := DefaultSettings()
	if st.StandardDrinkGrams != 10 && st.StandardDrinkGrams != 14 {
		st.StandardDrinkGrams = def.StandardDrinkGrams
	}
	st.WeightKg = clampNonNegative(st.WeightKg)
	switch st.Sex {
	case model.SexMale, model.SexFemale, model.SexUnknown:
	default:
		st.Sex = def.Sex
	}
	if st.BACLimitPercent != 0.03 && st.BACLimitPercent != 0.05 && st.BACLimitPercent != 0.08 {
		st.BACLimitPercent = def.BACLimitPercent
	}
	st.PlanHours = clampNonNegative(st.PlanHours)
	return st
}

func decodeItem(v any) model.DrinkItem {
	src := asMap(v)
	return model.DrinkItem{
		ID:       toString(src["id"]),
		TS:       toString(src["ts"]),
		Type:     toString(src["type"]),
		SkuID:    toString(src["sku_id"]),
		Name:     toString(src["name"]),
		Category: toString(src["category"]),
		Brand:    toString(src["brand"]),
		VolumeML: toNumber(src["volume_ml"], 0),
		ABV:      toNumber(src["abv"], 0),
		Qty:      int(math.Round(toNumber(src["qty"], 1))),
		EthanolG: toNumber(src["ethanol_g"], 0),
		Cups:     toNumber(src["cups"], 0),
	}
}

// NormalizeItem clamps every numeric field non-negative, floors the
// quantity at one, backfills a generated ID and stamps a missing timestamp
// with now.
func NormalizeItem(it model.DrinkItem, now time.Time) model.DrinkItem {
	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	it.TS = normalizeTimestamp(it.TS, now)
	if it.Type != model.ItemTypeCustom {
		it.Type = model.ItemTypeSku
	}
	it.VolumeML = clampNonNegative(it.VolumeML)
	it.ABV = clampNonNegative(it.ABV)
	if it.Qty < 1 {
		it.Qty = 1
	}
	it.EthanolG = clampNonNegative(it.EthanolG)
	it.Cups = clampNonNegative(it.Cups)
	return it
}

func decodeSession(v any) model.Session {
	src := asMap(v)
	var items []model.DrinkItem
	for _, raw := range asSlice(src["items"]) {
		items = append(items, decodeItem(raw))
	}
	return model.Session{
		StartTime: toString(src["start_time"]),
		EndTime:   toString(src["end_time"]),
		IsActive:  toBool(src["is_active"]),
		Items:     items,
	}
}

// NormalizeSession anchors a missing start time at now, drops an
// unparsable end time and normalizes every item.
func NormalizeSession(sess model.Session, now time.Time) model.Session {
	sess.StartTime = normalizeTimestamp(sess.StartTime, now)
	sess.EndTime = normalizeEndTime(sess.EndTime)
	items := make([]model.DrinkItem, 0, len(sess.Items))
	for _, it := range sess.Items {
		items = append(items, NormalizeItem(it, now))
	}
	sess.Items = items
	return sess
}

func decodeHistoryEntry(v any) model.HistoryEntry {
	src := asMap(v)
	var items []model.DrinkItem
	for _, raw := range asSlice(src["items"]) {
		items = append(items, decodeItem(raw))
	}
	return model.HistoryEntry{
		Date:          toString(src["date"]),
		StartTime:     toString(src["start_time"]),
		EndTime:       toString(src["end_time"]),
		Count:         int(math.Round(toNumber(src["count"], 0))),
		TotalCups:     clampNonNegative(toNumber(src["total_cups"], 0)),
		TotalEthanolG: clampNonNegative(toNumber(src["total_ethanol_g"], 0)),
		Items:         items,
	}
}

func decodeFavorites(v any) map[string]int {
	src := asMap(v)
	out := make(map[string]int, len(src))
	for id, raw := range src {
		if id == "" {
			continue
		}
		n := int(math.Round(toNumber(raw, 0)))
		if n < 0 {
			n = 0
		}
		out[id] = n
	}
	return out
}
