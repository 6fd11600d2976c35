// Package alc implements a simplified Widmark-model estimator for blood
// alcohol concentration. All functions are pure; invalid inputs produce
// tagged zero results instead of errors. Estimates are for risk awareness
// only and are not a substitute for a breathalyzer or medical testing.
package alc

import "math"

const (
	// EthanolDensityGPerML is the density of pure ethanol.
	EthanolDensityGPerML = 0.789

	// DefaultStandardDrinkGrams is the grams of ethanol in one standard
	// drink (10 g in most WHO-aligned guidelines, 14 g in the US).
	DefaultStandardDrinkGrams = 10.0

	// DefaultBetaPercentPerHour is the elimination rate used when the
	// caller does not supply one.
	DefaultBetaPercentPerHour = 0.015

	// BetaMinPercentPerHour and BetaMaxPercentPerHour bound the
	// physiologically plausible elimination rate. Caller-supplied rates
	// are clamped into this interval.
	BetaMinPercentPerHour = 0.01
	BetaMaxPercentPerHour = 0.02
)

// Reason codes returned on invalid results.
const (
	ReasonInvalidWeight                = "INVALID_WEIGHT"
	ReasonInvalidWeightOrStandardDrink = "INVALID_WEIGHT_OR_STANDARD_DRINK"
)

// rRange is the Widmark distribution-ratio interval for a sex. A lower r
// yields a higher BAC, so the unknown case reuses the female interval as
// the conservative choice.
type rRange struct {
	low  float64
	high float64
}

var rBySex = map[string]rRange{
	"male":    {low: 0.65, high: 0.73},
	"female":  {low: 0.52, high: 0.60},
	"unknown": {low: 0.52, high: 0.60},
}

func rangeForSex(sex string) rRange {
	if r, ok := rBySex[sex]; ok {
		return r
	}
	return rBySex["unknown"]
}

func finiteOr(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

func nonNegative(v float64) float64 {
	return math.Max(0, finiteOr(v, 0))
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

func round(v float64, digits int) float64 {
	p := math.Pow(10, float64(digits))
	return math.Round(v*p) / p
}

// EthanolFromDrink returns grams of pure ethanol in a pour:
// volume_ml * (abv/100) * 0.789. Negative inputs count as zero and ABV is
// capped at 100%.
func EthanolFromDrink(volumeML, abvPercent float64) float64 {
	volume := nonNegative(volumeML)
	ratio := clamp(nonNegative(abvPercent)/100, 0, 1)
	return volume * ratio * EthanolDensityGPerML
}

// CupsFromEthanol converts ethanol grams to standard-drink count. A
// non-positive divisor yields 0.
func CupsFromEthanol(ethanolG, standardDrinkGrams float64) float64 {
	std := finiteOr(standardDrinkGrams, DefaultStandardDrinkGrams)
	if std <= 0 {
		return 0
	}
	return nonNegative(ethanolG) / std
}

// BACRangeInput carries the physiology parameters for BACRange. Sex is one
// of "male", "female" or "unknown"; anything else falls back to the
// conservative unknown interval. A BetaPercentPerHour of zero (or any
// non-positive or non-finite value) selects the default rate.
type BACRangeInput struct {
	EthanolG           float64
	WeightKg           float64
	Sex                string
	ElapsedHours       float64
	BetaPercentPerHour float64
}

// BACRangeResult is a min/max BAC estimate in percent. When Valid is false
// the bounds are zero and Reason explains why (currently only
// ReasonInvalidWeight). BetaUsed and RLow/RHigh record the assumptions the
// estimate was computed under.
type BACRangeResult struct {
	BACMinPercent          float64
	BACMaxPercent          float64
	Valid                  bool
	Reason                 string
	BetaUsedPercentPerHour float64
	RLow                   float64
	RHigh                  float64
}

// BACRange evaluates BAC% = ethanol_g / (weight_kg * 1000 * r) * 100 -
// beta * hours at both ends of the sex-dependent r interval. The bounds are
// floored at zero and min/max-sorted after the time subtraction, since the
// subtraction can make the raw bounds cross.
func BACRange(in BACRangeInput) BACRangeResult {
	ethanol := nonNegative(in.EthanolG)
	weight := nonNegative(in.WeightKg)
	hours := nonNegative(in.ElapsedHours)
	r := rangeForSex(in.Sex)

	if weight <= 0 {
		return BACRangeResult{Valid: false, Reason: ReasonInvalidWeight}
	}

	beta := finiteOr(in.BetaPercentPerHour, DefaultBetaPercentPerHour)
	if beta <= 0 {
		beta = DefaultBetaPercentPerHour
	}
	beta = clamp(beta, BetaMinPercentPerHour, BetaMaxPercentPerHour)

	rawHigh := ethanol / (weight * 1000 * r.low) * 100
	rawLow := ethanol / (weight * 1000 * r.high) * 100

	lo := math.Max(0, rawLow-beta*hours)
	hi := math.Max(0, rawHigh-beta*hours)

	return BACRangeResult{
		BACMinPercent:          round(math.Min(lo, hi), 4),
		BACMaxPercent:          round(math.Max(lo, hi), 4),
		Valid:                  true,
		BetaUsedPercentPerHour: beta,
		RLow:                   r.low,
		RHigh:                  r.high,
	}
}

// SoberRange bounds the hours until BAC returns to zero.
type SoberRange struct {
	MinHours float64
	MaxHours float64
}

// SoberTimeRange projects a BAC range forward to zero. The fast bound
// pairs the lower BAC with the fastest elimination rate, the slow bound
// pairs the upper BAC with the slowest rate.
func SoberTimeRange(bacMinPercent, bacMaxPercent float64) SoberRange {
	lo := nonNegative(bacMinPercent)
	hi := nonNegative(bacMaxPercent)
	return SoberRange{
		MinHours: round(lo/BetaMaxPercentPerHour, 2),
		MaxHours: round(hi/BetaMinPercentPerHour, 2),
	}
}

// LimitCupsInput carries the parameters for LimitCupsRange. A
// StandardDrinkGrams of zero or less is invalid, not defaulted.
type LimitCupsInput struct {
	BACLimitPercent    float64
	PlanHours          float64
	WeightKg           float64
	Sex                string
	StandardDrinkGrams float64
	CurrentCups        float64
}

// LimitCupsResult is the suggested standard-drink ceiling and how much of
// it the current count already uses. The ratio range is deliberately
// reported widest-to-narrowest: UsageRatioMin divides by the larger
// ceiling and UsageRatioMax by the smaller one.
type LimitCupsResult struct {
	CupsLimitMin  float64
	CupsLimitMax  float64
	UsageRatioMin float64
	UsageRatioMax float64
	Valid         bool
	Reason        string
	RLow          float64
	RHigh         float64
}

// LimitCupsRange back-solves the maximum standard-drink count that keeps
// the projected BAC at plan_hours from now under the given limit. The
// allowed BAC budget at time zero is limit + beta*plan_hours at both beta
// extremes, converted to ethanol via both ends of the r interval.
func LimitCupsRange(in LimitCupsInput) LimitCupsResult {
	bacLimit := nonNegative(in.BACLimitPercent)
	planHours := nonNegative(in.PlanHours)
	weight := nonNegative(in.WeightKg)
	std := finiteOr(in.StandardDrinkGrams, DefaultStandardDrinkGrams)
	used := nonNegative(in.CurrentCups)

	if weight <= 0 || std <= 0 {
		return LimitCupsResult{Valid: false, Reason: ReasonInvalidWeightOrStandardDrink}
	}

	r := rangeForSex(in.Sex)

	allowedBACMin := bacLimit + BetaMinPercentPerHour*planHours
	allowedBACMax := bacLimit + BetaMaxPercentPerHour*planHours

	// ethanol = BAC%/100 * weight * 1000 * r
	ethanolMin := allowedBACMin / 100 * weight * 1000 * r.low
	ethanolMax := allowedBACMax / 100 * weight * 1000 * r.high

	cupsMin := math.Max(0, ethanolMin/std)
	cupsMax := math.Max(cupsMin, ethanolMax/std)

	var ratioMin, ratioMax float64
	if cupsMax > 0 {
		ratioMin = used / cupsMax
	}
	if cupsMin > 0 {
		ratioMax = used / cupsMin
	}

	return LimitCupsResult{
		CupsLimitMin:  round(cupsMin, 2),
		CupsLimitMax:  round(cupsMax, 2),
		UsageRatioMin: round(ratioMin, 3),
		UsageRatioMax: round(ratioMax, 3),
		Valid:         true,
		RLow:          r.low,
		RHigh:         r.high,
	}
}
