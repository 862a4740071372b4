//go:build !integration

package matching

import (
	"errors"
	"reflect"
	"testing"

	"github.com/SaiPranav00/EVMATCHFINAL/domain"
)

// ecoOnlyVehicle scores purely on its eco score when preferences are empty,
// which makes exact rank scores easy to pin down.
func ecoOnlyVehicle(id uint64, eco int) domain.Vehicle {
	return domain.Vehicle{
		ID:       id,
		BodyType: "truck",
		EcoScore: eco,
	}
}

func TestRankNilPreferences(t *testing.T) {
	if _, err := Rank([]domain.Vehicle{ecoOnlyVehicle(1, 50)}, nil, DefaultConfig(), 5); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("got err=%v, want ErrInvalidArgument", err)
	}
}

func TestRankTiesKeepInputOrder(t *testing.T) {
	cfg := DefaultConfig()
	prefs := domain.UserPreferences{}

	// scores: 5, 9, 9 — the two tied vehicles must come back in input
	// order and the low scorer must not appear in the top two.
	vehicles := []domain.Vehicle{
		ecoOnlyVehicle(1, 50),
		ecoOnlyVehicle(2, 90),
		ecoOnlyVehicle(3, 90),
	}

	top, err := Rank(vehicles, &prefs, cfg, 2)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("len = %d, want 2", len(top))
	}
	if top[0].Vehicle.ID != 2 || top[1].Vehicle.ID != 3 {
		t.Fatalf("got ids [%d %d], want [2 3]", top[0].Vehicle.ID, top[1].Vehicle.ID)
	}
}

func TestRankStableUnderTieReordering(t *testing.T) {
	cfg := DefaultConfig()
	prefs := domain.UserPreferences{}

	forward := []domain.Vehicle{
		ecoOnlyVehicle(1, 90),
		ecoOnlyVehicle(2, 90),
		ecoOnlyVehicle(3, 40),
	}
	swapped := []domain.Vehicle{
		ecoOnlyVehicle(2, 90),
		ecoOnlyVehicle(1, 90),
		ecoOnlyVehicle(3, 40),
	}

	topForward, err := Rank(forward, &prefs, cfg, 3)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	topSwapped, err := Rank(swapped, &prefs, cfg, 3)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}

	if topForward[0].Vehicle.ID != 1 || topForward[1].Vehicle.ID != 2 {
		t.Fatalf("forward order broken: [%d %d]", topForward[0].Vehicle.ID, topForward[1].Vehicle.ID)
	}
	if topSwapped[0].Vehicle.ID != 2 || topSwapped[1].Vehicle.ID != 1 {
		t.Fatalf("swapped order broken: [%d %d]", topSwapped[0].Vehicle.ID, topSwapped[1].Vehicle.ID)
	}
}

func TestRankDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	prefs := domain.UserPreferences{
		Budget:          &domain.BudgetRange{Min: 30000, Max: 55000},
		VehicleType:     "suv",
		RangeImportance: 7,
		TechImportance:  4,
	}

	vehicles := []domain.Vehicle{
		{ID: 1, BodyType: "suv", Price: domain.VehiclePrice{MSRP: 48000}, Specifications: domain.VehicleSpecifications{EPARange: 290}, TechScore: 75, EcoScore: 80},
		{ID: 2, BodyType: "sedan", Price: domain.VehiclePrice{MSRP: 41000}, Specifications: domain.VehicleSpecifications{EPARange: 340}, TechScore: 90, EcoScore: 70},
		{ID: 3, BodyType: "wagon", Price: domain.VehiclePrice{MSRP: 52000}, Specifications: domain.VehicleSpecifications{EPARange: 260}, TechScore: 60, EcoScore: 95},
		{ID: 4, BodyType: "truck", Price: domain.VehiclePrice{MSRP: 70000}, Specifications: domain.VehicleSpecifications{EPARange: 400}, TechScore: 85, EcoScore: 60},
	}

	first, err := Rank(vehicles, &prefs, cfg, 4)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	for i := 0; i < 20; i++ {
		again, err := Rank(vehicles, &prefs, cfg, 4)
		if err != nil {
			t.Fatalf("Rank (repeat %d): %v", i, err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("repeat %d: output differs", i)
		}
	}
}

func TestRankTopNClamping(t *testing.T) {
	cfg := DefaultConfig()
	prefs := domain.UserPreferences{}
	vehicles := []domain.Vehicle{
		ecoOnlyVehicle(1, 10),
		ecoOnlyVehicle(2, 20),
	}

	top, err := Rank(vehicles, &prefs, cfg, 50)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("len = %d, want 2", len(top))
	}

	// non-positive topN falls back to the default
	top, err = Rank(vehicles, &prefs, cfg, 0)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("len = %d, want 2", len(top))
	}
}
