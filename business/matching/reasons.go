package matching

import (
	"github.com/SaiPranav00/EVMATCHFINAL/domain"
)

// A reasonRule pairs a human-readable label with the predicate that
// produces it. The rules form a closed, ordered list: every matching label
// is emitted, in this order, and each label has exactly one producing
// condition, so duplicates cannot occur.
type reasonRule struct {
	label string
	match func(vehicle *domain.Vehicle, prefs *domain.UserPreferences, effectivePrice float64, cfg Config) bool
}

var reasonRules = []reasonRule{
	{
		label: "Within budget",
		match: func(v *domain.Vehicle, p *domain.UserPreferences, price float64, cfg Config) bool {
			return p.Budget != nil && price <= p.Budget.Max
		},
	},
	{
		label: "Great value",
		match: func(v *domain.Vehicle, p *domain.UserPreferences, price float64, cfg Config) bool {
			return p.Budget != nil && price < p.Budget.Min
		},
	},
	{
		label: "Perfect size match",
		match: func(v *domain.Vehicle, p *domain.UserPreferences, price float64, cfg Config) bool {
			return p.VehicleType != "" && v.BodyType == p.VehicleType
		},
	},
	{
		label: "Excellent range",
		match: func(v *domain.Vehicle, p *domain.UserPreferences, price float64, cfg Config) bool {
			return float64(v.Specifications.EPARange) > cfg.Thresholds.ExcellentRange
		},
	},
	{
		label: "Advanced technology",
		match: func(v *domain.Vehicle, p *domain.UserPreferences, price float64, cfg Config) bool {
			return float64(v.TechScore) > cfg.Thresholds.AdvancedTech
		},
	},
	{
		label: "Eco-friendly",
		match: func(v *domain.Vehicle, p *domain.UserPreferences, price float64, cfg Config) bool {
			return float64(v.EcoScore) > cfg.Thresholds.EcoFriendly
		},
	},
	{
		label: "Fast charging",
		match: func(v *domain.Vehicle, p *domain.UserPreferences, price float64, cfg Config) bool {
			return hasFeature(p.ChargingFeatures, "fast-charging") &&
				v.Specifications.DCMaxKW >= cfg.Thresholds.FastCharging
		},
	},
}

// buildReasons evaluates every rule independently; the conditions are not
// mutually exclusive ("Within budget" and "Great value" can both hold).
func buildReasons(vehicle *domain.Vehicle, prefs *domain.UserPreferences, effectivePrice float64, cfg Config) []string {
	reasons := make([]string, 0, len(reasonRules))
	for _, rule := range reasonRules {
		if rule.match(vehicle, prefs, effectivePrice, cfg) {
			reasons = append(reasons, rule.label)
		}
	}
	return reasons
}

func hasFeature(features []string, want string) bool {
	for _, f := range features {
		if f == want {
			return true
		}
	}
	return false
}
