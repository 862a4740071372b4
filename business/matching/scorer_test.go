//go:build !integration

package matching

import (
	"errors"
	"reflect"
	"testing"

	"github.com/SaiPranav00/EVMATCHFINAL/domain"
)

func budgetOf(min, max float64) *domain.BudgetRange {
	return &domain.BudgetRange{Min: min, Max: max}
}

// vehicle with a given effective price and nothing else going for it, so
// budget is the only contributing sub-score.
func priceOnlyVehicle(msrp float64) domain.Vehicle {
	return domain.Vehicle{
		BodyType: "truck",
		Price:    domain.VehiclePrice{MSRP: msrp},
	}
}

func TestScoreNilInputs(t *testing.T) {
	cfg := DefaultConfig()
	v := priceOnlyVehicle(40000)
	prefs := domain.UserPreferences{}

	if _, err := Score(nil, &prefs, cfg); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("nil vehicle: got err=%v, want ErrInvalidArgument", err)
	}
	if _, err := Score(&v, nil, cfg); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("nil preferences: got err=%v, want ErrInvalidArgument", err)
	}
}

func TestScoreDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	v := domain.Vehicle{
		BodyType: "suv",
		Price: domain.VehiclePrice{
			MSRP:       52000,
			Incentives: domain.VehicleIncentives{Federal: 7500, State: 2000},
		},
		Specifications: domain.VehicleSpecifications{EPARange: 310, DCMaxKW: 250},
		TechScore:      88,
		EcoScore:       91,
	}
	prefs := domain.UserPreferences{
		Budget:           budgetOf(35000, 55000),
		VehicleType:      "suv",
		RangeImportance:  8,
		TechImportance:   6,
		ChargingFeatures: []string{"fast-charging"},
	}

	first, err := Score(&v, &prefs, cfg)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	for i := 0; i < 50; i++ {
		again, err := Score(&v, &prefs, cfg)
		if err != nil {
			t.Fatalf("Score (repeat %d): %v", i, err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("repeat %d: got %+v, want %+v", i, again, first)
		}
	}
}

func TestEffectivePriceClampedAtZero(t *testing.T) {
	v := domain.Vehicle{
		Price: domain.VehiclePrice{
			MSRP:       10000,
			Incentives: domain.VehicleIncentives{Federal: 7500, State: 3000, Local: 500},
		},
	}
	if got := EffectivePrice(v); got != 0 {
		t.Fatalf("EffectivePrice = %v, want 0", got)
	}
}

func TestBudgetSubScore(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name   string
		price  float64
		budget *domain.BudgetRange
		want   float64
	}{
		{"no budget stated", 45000, nil, 0},
		{"within budget", 45000, budgetOf(30000, 50000), cfg.BudgetWeight},
		{"at max boundary", 50000, budgetOf(30000, 50000), cfg.BudgetWeight},
		{"at min boundary", 30000, budgetOf(30000, 50000), cfg.BudgetWeight},
		{"below min is great value", 25000, budgetOf(30000, 50000), cfg.BudgetWeight * 0.67},
		{"slightly over budget", 54000, budgetOf(30000, 50000), cfg.BudgetWeight * 0.5},
		{"at tolerance boundary", 55000, budgetOf(30000, 50000), cfg.BudgetWeight * 0.5},
		{"far over budget", 60000, budgetOf(30000, 50000), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := budgetScore(tt.price, tt.budget, cfg); got != tt.want {
				t.Fatalf("budgetScore(%v) = %v, want %v", tt.price, got, tt.want)
			}
		})
	}
}

func TestWithinBudgetScenario(t *testing.T) {
	cfg := DefaultConfig()
	v := priceOnlyVehicle(45000)
	prefs := domain.UserPreferences{Budget: budgetOf(30000, 50000)}

	res, err := Score(&v, &prefs, cfg)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if res.Score != int(cfg.BudgetWeight) {
		t.Fatalf("score = %d, want %d", res.Score, int(cfg.BudgetWeight))
	}
	if !hasFeature(res.Reasons, "Within budget") {
		t.Fatalf("reasons = %v, want to include %q", res.Reasons, "Within budget")
	}
}

func TestGreatValueScenario(t *testing.T) {
	cfg := DefaultConfig()
	v := priceOnlyVehicle(25000)
	prefs := domain.UserPreferences{Budget: budgetOf(30000, 50000)}

	res, err := Score(&v, &prefs, cfg)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}

	// 40 * 0.67 = 26.8, rounded half-up to 27
	if res.Score != 27 {
		t.Fatalf("score = %d, want 27", res.Score)
	}

	// 25000 is both below min AND below max, so both reasons apply; the
	// conditions are independent, not mutually exclusive.
	want := []string{"Within budget", "Great value"}
	if !reflect.DeepEqual(res.Reasons, want) {
		t.Fatalf("reasons = %v, want %v", res.Reasons, want)
	}
}

func TestTypeSubScore(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SimilarTypes = map[string][]string{"sedan": {"hatchback"}}

	tests := []struct {
		name      string
		bodyType  string
		preferred string
		want      float64
	}{
		{"exact match", "sedan", "sedan", cfg.TypeWeight},
		{"similar type", "hatchback", "sedan", cfg.TypeWeight * 0.6},
		{"no match no similar", "suv", "sedan", 0},
		{"no preference", "sedan", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := typeScore(tt.bodyType, tt.preferred, cfg); got != tt.want {
				t.Fatalf("typeScore(%q, %q) = %v, want %v", tt.bodyType, tt.preferred, got, tt.want)
			}
		})
	}
}

func TestRangeSubScoreCappedExactly(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RangeWeight = 20
	cfg.RangeBaseline = 300

	// min((400/300) * 10 * (20/10), 20) = min(26.67, 20) = 20
	if got := rangeScore(400, 10, cfg); got != 20 {
		t.Fatalf("rangeScore(400, 10) = %v, want exactly 20", got)
	}
}

func TestRangeSubScoreNeverExceedsWeight(t *testing.T) {
	cfg := DefaultConfig()

	for epa := 0; epa <= 1200; epa += 25 {
		for imp := 1; imp <= 15; imp++ {
			if got := rangeScore(epa, imp, cfg); got > cfg.RangeWeight {
				t.Fatalf("rangeScore(%d, %d) = %v exceeds weight %v", epa, imp, got, cfg.RangeWeight)
			}
		}
	}
}

func TestRangeSubScoreMonotonic(t *testing.T) {
	cfg := DefaultConfig()

	prev := 0.0
	for epa := 0; epa <= 800; epa += 10 {
		got := rangeScore(epa, 7, cfg)
		if got < prev {
			t.Fatalf("rangeScore decreased at epa=%d: %v < %v", epa, got, prev)
		}
		prev = got
	}
}

func TestRangeSubScoreRequiresImportance(t *testing.T) {
	cfg := DefaultConfig()
	if got := rangeScore(400, 0, cfg); got != 0 {
		t.Fatalf("rangeScore with zero importance = %v, want 0", got)
	}
}

func TestTechSubScoreUncapped(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TechWeight = 10

	// importance above 10 is not corrected by the scorer: 100/100 * 12 * 1 = 12
	if got := techScore(100, 12, cfg); got != 12 {
		t.Fatalf("techScore(100, 12) = %v, want 12", got)
	}
	if got := techScore(100, 0, cfg); got != 0 {
		t.Fatalf("techScore with zero importance = %v, want 0", got)
	}
}

func TestEcoScoreMonotonicInTotal(t *testing.T) {
	cfg := DefaultConfig()
	prefs := domain.UserPreferences{
		Budget:          budgetOf(30000, 50000),
		VehicleType:     "sedan",
		RangeImportance: 5,
		TechImportance:  5,
	}

	prev := -1
	for eco := 0; eco <= 100; eco += 5 {
		v := domain.Vehicle{
			BodyType:       "sedan",
			Price:          domain.VehiclePrice{MSRP: 42000},
			Specifications: domain.VehicleSpecifications{EPARange: 280},
			TechScore:      70,
			EcoScore:       eco,
		}
		res, err := Score(&v, &prefs, cfg)
		if err != nil {
			t.Fatalf("Score: %v", err)
		}
		if res.Score < prev {
			t.Fatalf("total decreased at eco=%d: %d < %d", eco, res.Score, prev)
		}
		prev = res.Score
	}
}

func TestFullMatchScore(t *testing.T) {
	cfg := DefaultConfig()
	v := domain.Vehicle{
		BodyType:       "suv",
		Price:          domain.VehiclePrice{MSRP: 45000},
		Specifications: domain.VehicleSpecifications{EPARange: 300, DCMaxKW: 250},
		TechScore:      100,
		EcoScore:       100,
	}
	prefs := domain.UserPreferences{
		Budget:           budgetOf(30000, 50000),
		VehicleType:      "suv",
		RangeImportance:  10,
		TechImportance:   10,
		ChargingFeatures: []string{"fast-charging"},
	}

	res, err := Score(&v, &prefs, cfg)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}

	// 40 + 20 + 20 + 10 + 10
	if res.Score != 100 {
		t.Fatalf("score = %d, want 100", res.Score)
	}
}

func TestReasonsFixedOrder(t *testing.T) {
	cfg := DefaultConfig()
	v := domain.Vehicle{
		BodyType:       "suv",
		Price:          domain.VehiclePrice{MSRP: 25000},
		Specifications: domain.VehicleSpecifications{EPARange: 350, DCMaxKW: 250},
		TechScore:      95,
		EcoScore:       95,
	}
	prefs := domain.UserPreferences{
		Budget:           budgetOf(30000, 50000),
		VehicleType:      "suv",
		RangeImportance:  10,
		TechImportance:   10,
		ChargingFeatures: []string{"fast-charging"},
	}

	res, err := Score(&v, &prefs, cfg)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}

	want := []string{
		"Within budget",
		"Great value",
		"Perfect size match",
		"Excellent range",
		"Advanced technology",
		"Eco-friendly",
		"Fast charging",
	}
	if !reflect.DeepEqual(res.Reasons, want) {
		t.Fatalf("reasons = %v, want %v", res.Reasons, want)
	}
}

func TestFastChargingReasonRequiresPreference(t *testing.T) {
	cfg := DefaultConfig()
	v := domain.Vehicle{
		BodyType:       "sedan",
		Price:          domain.VehiclePrice{MSRP: 40000},
		Specifications: domain.VehicleSpecifications{DCMaxKW: 250},
	}

	// fast DC charging but the user never asked for it
	prefs := domain.UserPreferences{}
	res, err := Score(&v, &prefs, cfg)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if hasFeature(res.Reasons, "Fast charging") {
		t.Fatalf("reasons = %v, should not include Fast charging", res.Reasons)
	}

	// user asked, but the vehicle charges too slowly
	prefs = domain.UserPreferences{ChargingFeatures: []string{"fast-charging"}}
	v.Specifications.DCMaxKW = 50
	res, err = Score(&v, &prefs, cfg)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if hasFeature(res.Reasons, "Fast charging") {
		t.Fatalf("reasons = %v, should not include Fast charging", res.Reasons)
	}
}
