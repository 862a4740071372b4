package domain

import (
	"time"
)

// BudgetRange is the price window a user is shopping in.
type BudgetRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// UserPreferences is the scoring input consumed by business/matching.
// A nil Budget means the user never stated one; zero importance values
// mean the corresponding factor contributes nothing.
type UserPreferences struct {
	Budget           *BudgetRange `json:"budget,omitempty"`
	VehicleType      string       `json:"vehicle_type"`
	RangeImportance  int          `json:"range_importance"`
	TechImportance   int          `json:"tech_importance"`
	ChargingFeatures []string     `json:"charging_features"`
	EcoFeatures      []string     `json:"eco_features"`
}

// PreferenceRecord is the persisted form of UserPreferences, one row per user.
type PreferenceRecord struct {
	UserID           uint      `gorm:"primaryKey;column:user_id" json:"user_id"`
	BudgetMin        *float64  `gorm:"column:budget_min;type:numeric" json:"budget_min,omitempty"`
	BudgetMax        *float64  `gorm:"column:budget_max;type:numeric" json:"budget_max,omitempty"`
	VehicleType      string    `gorm:"column:vehicle_type;type:text" json:"vehicle_type"`
	RangeImportance  int       `gorm:"column:range_importance" json:"range_importance"`
	TechImportance   int       `gorm:"column:tech_importance" json:"tech_importance"`
	ChargingFeatures []string  `gorm:"column:charging_features;type:jsonb;serializer:json" json:"charging_features"`
	EcoFeatures      []string  `gorm:"column:eco_features;type:jsonb;serializer:json" json:"eco_features"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PreferenceRecord) TableName() string {
	return "user_preferences"
}

// ToPreferences converts the stored row into the scoring input shape.
func (r PreferenceRecord) ToPreferences() UserPreferences {
	prefs := UserPreferences{
		VehicleType:      r.VehicleType,
		RangeImportance:  r.RangeImportance,
		TechImportance:   r.TechImportance,
		ChargingFeatures: r.ChargingFeatures,
		EcoFeatures:      r.EcoFeatures,
	}

	// both bounds or none; a half-set row would otherwise filter against
	// a zero max and match nothing
	if r.BudgetMin != nil && r.BudgetMax != nil {
		prefs.Budget = &BudgetRange{Min: *r.BudgetMin, Max: *r.BudgetMax}
	}

	return prefs
}
