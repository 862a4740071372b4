package domain

import "time"

// MatchConfig is the persisted, admin-tunable scoring configuration.
// SimilarTypes is stored as jsonb (SimilarTypesRaw) and decoded by the
// repository, mirroring how feature flags are stored elsewhere.
type MatchConfig struct {
	Name string `json:"name" gorm:"primaryKey;column:name"`

	BudgetWeight float64 `json:"budget_weight" gorm:"column:budget_weight"`
	TypeWeight   float64 `json:"type_weight" gorm:"column:type_weight"`
	RangeWeight  float64 `json:"range_weight" gorm:"column:range_weight"`
	TechWeight   float64 `json:"tech_weight" gorm:"column:tech_weight"`
	EcoWeight    float64 `json:"eco_weight" gorm:"column:eco_weight"`

	BudgetFlexibility   float64 `json:"budget_flexibility" gorm:"column:budget_flexibility"`
	OverBudgetTolerance float64 `json:"over_budget_tolerance" gorm:"column:over_budget_tolerance"`
	RangeBaseline       float64 `json:"range_baseline" gorm:"column:range_baseline"`

	ExcellentRangeThreshold float64 `json:"excellent_range_threshold" gorm:"column:excellent_range_threshold"`
	AdvancedTechThreshold   float64 `json:"advanced_tech_threshold" gorm:"column:advanced_tech_threshold"`
	EcoFriendlyThreshold    float64 `json:"eco_friendly_threshold" gorm:"column:eco_friendly_threshold"`
	FastChargingThreshold   float64 `json:"fast_charging_threshold" gorm:"column:fast_charging_threshold"`

	SimilarTypesRaw []byte              `json:"-" gorm:"column:similar_types;type:jsonb"`
	SimilarTypes    map[string][]string `json:"similar_types" gorm:"-"`

	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (MatchConfig) TableName() string {
	return "match_configs"
}
