package store

import "github.com/drinkwise/bac-cli/internal/model"

// SettingsPatch is a partial settings update; nil fields keep the current
// value.
type SettingsPatch struct {
	StandardDrinkGrams *float64
	WeightKg           *float64
	Sex                *string
	BACLimitPercent    *float64
	PlanHours          *float64
}

// Settings returns the stored settings, self-healed: missing or malformed
// fields come back as their defaults.
func (s *Store) Settings() (model.Settings, error) {
	v, err := s.readSlot(KeySettings)
	if err != nil {
		return model.Settings{}, err
	}
	return NormalizeSettings(decodeSettings(v)), nil
}

// SaveSettings merges the patch over the current settings, persists the
// result and returns it re-normalized. An out-of-enum patched value is
// silently replaced by its default, same as on read.
func (s *Store) SaveSettings(patch SettingsPatch) (model.Settings, error) {
	cur, err := s.Settings()
	if err != nil {
		return model.Settings{}, err
	}
	if patch.StandardDrinkGrams != nil {
		cur.StandardDrinkGrams = *patch.StandardDrinkGrams
	}
	if patch.WeightKg != nil {
		cur.WeightKg = *patch.WeightKg
	}
	if patch.Sex != nil {
		cur.Sex = *patch.Sex
	}
	if patch.BACLimitPercent != nil {
		cur.BACLimitPercent = *patch.BACLimitPercent
	}
	if patch.PlanHours != nil {
		cur.PlanHours = *patch.PlanHours
	}
	cur = NormalizeSettings(cur)
	if err := s.writeSlot(KeySettings, cur); err != nil {
		return model.Settings{}, err
	}
	return cur, nil
}
