package model

// Field names in the JSON tags match the persisted blob layout, which is
// shared with earlier builds of the app; changing a tag is a storage
// migration.

const (
	ItemTypeSku    = "sku"
	ItemTypeCustom = "custom"

	SexMale    = "male"
	SexFemale  = "female"
	SexUnknown = "unknown"
)

// Settings is the user profile consumed by the BAC estimator. WeightKg of
// zero means "not set yet".
type Settings struct {
	StandardDrinkGrams float64 `json:"standard_drink_grams"`
	WeightKg           float64 `json:"weight_kg"`
	Sex                string  `json:"sex"`
	BACLimitPercent    float64 `json:"bac_limit_percent"`
	PlanHours          float64 `json:"plan_hours"`
}

// DrinkItem is one logged pour. EthanolG and Cups are precomputed at log
// time for the full quantity, never rederived on read.
type DrinkItem struct {
	ID       string  `json:"id"`
	TS       string  `json:"ts"`
	Type     string  `json:"type"`
	SkuID    string  `json:"sku_id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Brand    string  `json:"brand"`
	VolumeML float64 `json:"volume_ml"`
	ABV      float64 `json:"abv"`
	Qty      int     `json:"qty"`
	EthanolG float64 `json:"ethanol_g"`
	Cups     float64 `json:"cups"`
}

// Session is the current day's drinking episode. An empty EndTime means
// the session is still open. Items keep insertion order.
type Session struct {
	StartTime string      `json:"start_time"`
	EndTime   string      `json:"end_time"`
	IsActive  bool        `json:"is_active"`
	Items     []DrinkItem `json:"items"`
}

// HistoryEntry is the immutable summary of a past day, produced once at
// archival time. Items are retained for drill-down.
type HistoryEntry struct {
	Date          string      `json:"date"`
	StartTime     string      `json:"start_time"`
	EndTime       string      `json:"end_time"`
	Count         int         `json:"count"`
	TotalCups     float64     `json:"total_cups"`
	TotalEthanolG float64     `json:"total_ethanol_g"`
	Items         []DrinkItem `json:"items"`
}

// Sku is one catalog beverage.
type Sku struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Brand    string  `json:"brand"`
	ABV      float64 `json:"abv"`
	VolumeML float64 `json:"volume_ml"`
}
