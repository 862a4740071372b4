package quiz

import (
	"github.com/SaiPranav00/EVMATCHFINAL/business/matching"
	"github.com/SaiPranav00/EVMATCHFINAL/domain"
)

// filterCandidates drops vehicles that are hopelessly over budget before
// scoring. BudgetFlexibility widens the stated maximum so near-misses
// still get scored (and can earn partial budget credit); everything past
// the widened cap is excluded outright.
func filterCandidates(vehicles []domain.Vehicle, prefs domain.UserPreferences, cfg matching.Config) []domain.Vehicle {
	if prefs.Budget == nil {
		return vehicles
	}

	flex := cfg.BudgetFlexibility
	if flex < 1 {
		flex = 1
	}
	limit := prefs.Budget.Max * flex

	out := make([]domain.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if matching.EffectivePrice(v) <= limit {
			out = append(out, v)
		}
	}
	return out
}
