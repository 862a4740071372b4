package matching

import (
	"errors"
	"fmt"
	"math"

	"github.com/SaiPranav00/EVMATCHFINAL/domain"
)

// ErrInvalidArgument is returned when a required scoring input is missing.
// Missing optional preference fields are not errors; they simply contribute
// nothing to the total.
var ErrInvalidArgument = errors.New("invalid argument")

// Result is one vehicle's compatibility verdict: a rounded score and the
// qualitative reasons, in a fixed order.
type Result struct {
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}

// EffectivePrice is MSRP minus all applicable incentives, clamped at zero.
func EffectivePrice(vehicle domain.Vehicle) float64 {
	inc := vehicle.Price.Incentives
	price := vehicle.Price.MSRP - (inc.Federal + inc.State + inc.Local)
	if price < 0 {
		return 0
	}
	return price
}

// Score computes the weighted compatibility between a vehicle and a user's
// stated preferences. It is deterministic for identical inputs: no
// randomness, no I/O, no shared state.
func Score(vehicle *domain.Vehicle, prefs *domain.UserPreferences, cfg Config) (Result, error) {
	if vehicle == nil {
		return Result{}, fmt.Errorf("%w: vehicle is required", ErrInvalidArgument)
	}
	if prefs == nil {
		return Result{}, fmt.Errorf("%w: preferences are required", ErrInvalidArgument)
	}

	price := EffectivePrice(*vehicle)

	total := budgetScore(price, prefs.Budget, cfg) +
		typeScore(vehicle.BodyType, prefs.VehicleType, cfg) +
		rangeScore(vehicle.Specifications.EPARange, prefs.RangeImportance, cfg) +
		techScore(vehicle.TechScore, prefs.TechImportance, cfg) +
		ecoScore(vehicle.EcoScore, cfg)

	return Result{
		Score:   roundHalfUp(total),
		Reasons: buildReasons(vehicle, prefs, price, cfg),
	}, nil
}

func budgetScore(price float64, budget *domain.BudgetRange, cfg Config) float64 {
	if budget == nil {
		return 0
	}

	switch {
	case price >= budget.Min && price <= budget.Max:
		return cfg.BudgetWeight
	case price < budget.Min:
		// cheaper than the stated minimum: rewarded, but not fully, since it
		// may signal a lower-tier vehicle
		return cfg.BudgetWeight * greatValueFactor
	case price <= budget.Max*cfg.OverBudgetTolerance:
		return cfg.BudgetWeight * overBudgetFactor
	default:
		return 0
	}
}

func typeScore(bodyType, preferredType string, cfg Config) float64 {
	if preferredType == "" {
		return 0
	}
	if bodyType == preferredType {
		return cfg.TypeWeight
	}
	for _, similar := range cfg.SimilarTypes[preferredType] {
		if bodyType == similar {
			return cfg.TypeWeight * similarTypeFactor
		}
	}
	return 0
}

// rangeScore scales with both how the vehicle's range compares to the
// baseline and how much the user cares, hard-capped at RangeWeight so no
// single factor can exceed its budgeted share.
func rangeScore(epaRange, importance int, cfg Config) float64 {
	if importance <= 0 {
		return 0
	}

	baseline := cfg.RangeBaseline
	if baseline <= 0 {
		baseline = defaultRangeBaseline
	}

	raw := (float64(epaRange) / baseline) * float64(importance) * (cfg.RangeWeight / 10)
	return math.Min(raw, cfg.RangeWeight)
}

// techScore carries no cap analogous to rangeScore: an importance above 10
// can push the contribution past TechWeight. Input validation is the
// caller's concern, not corrected here.
func techScore(vehicleTechScore, importance int, cfg Config) float64 {
	if importance <= 0 {
		return 0
	}
	return (float64(vehicleTechScore) / 100) * float64(importance) * (cfg.TechWeight / 10)
}

// ecoScore is unconditional: eco-friendliness is treated as a universal
// positive rather than a matched preference.
func ecoScore(vehicleEcoScore int, cfg Config) float64 {
	return (float64(vehicleEcoScore) / 100) * cfg.EcoWeight
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
