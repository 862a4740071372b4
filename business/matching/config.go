package matching

// Thresholds are the cutoffs that trigger qualitative match reasons.
type Thresholds struct {
	ExcellentRange float64 `json:"excellent_range"`
	AdvancedTech   float64 `json:"advanced_tech"`
	EcoFriendly    float64 `json:"eco_friendly"`
	FastCharging   float64 `json:"fast_charging"`
}

// Config is the full scoring configuration. It is an immutable value
// passed into every Score/Rank call; nothing in this package keeps
// package-level scoring state.
type Config struct {
	BudgetWeight float64 `json:"budget_weight"`
	TypeWeight   float64 `json:"type_weight"`
	RangeWeight  float64 `json:"range_weight"`
	TechWeight   float64 `json:"tech_weight"`
	EcoWeight    float64 `json:"eco_weight"`

	// BudgetFlexibility widens budget.Max when pre-filtering candidates;
	// OverBudgetTolerance is the stricter cutoff used for partial budget credit.
	BudgetFlexibility   float64 `json:"budget_flexibility"`
	OverBudgetTolerance float64 `json:"over_budget_tolerance"`

	// RangeBaseline is the reference EPA range the range sub-score is
	// normalized against.
	RangeBaseline float64 `json:"range_baseline"`

	// SimilarTypes maps a preferred vehicle type to body types that earn
	// partial credit.
	SimilarTypes map[string][]string `json:"similar_types"`

	Thresholds Thresholds `json:"thresholds"`
}

const (
	defaultBudgetWeight = 40.0
	defaultTypeWeight   = 20.0
	defaultRangeWeight  = 20.0
	defaultTechWeight   = 10.0
	defaultEcoWeight    = 10.0

	defaultBudgetFlexibility   = 1.2
	defaultOverBudgetTolerance = 1.1
	defaultRangeBaseline       = 300.0

	defaultExcellentRange = 300.0
	defaultAdvancedTech   = 80.0
	defaultEcoFriendly    = 80.0
	defaultFastCharging   = 150.0

	// sub-score multipliers
	greatValueFactor  = 0.67
	overBudgetFactor  = 0.5
	similarTypeFactor = 0.6
)

func DefaultConfig() Config {
	return Config{
		BudgetWeight: defaultBudgetWeight,
		TypeWeight:   defaultTypeWeight,
		RangeWeight:  defaultRangeWeight,
		TechWeight:   defaultTechWeight,
		EcoWeight:    defaultEcoWeight,

		BudgetFlexibility:   defaultBudgetFlexibility,
		OverBudgetTolerance: defaultOverBudgetTolerance,
		RangeBaseline:       defaultRangeBaseline,

		SimilarTypes: map[string][]string{
			"sedan":       {"hatchback", "wagon"},
			"suv":         {"wagon", "truck"},
			"hatchback":   {"sedan", "wagon"},
			"wagon":       {"hatchback", "suv"},
			"truck":       {"suv"},
			"coupe":       {"sedan", "convertible"},
			"convertible": {"coupe"},
		},

		Thresholds: Thresholds{
			ExcellentRange: defaultExcellentRange,
			AdvancedTech:   defaultAdvancedTech,
			EcoFriendly:    defaultEcoFriendly,
			FastCharging:   defaultFastCharging,
		},
	}
}
