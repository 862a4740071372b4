package quiz

import (
	"context"

	"github.com/SaiPranav00/EVMATCHFINAL/business/matching"
)

// ActiveConfigName is the single config row the scorer reads; additional
// named rows can be staged by admins before being promoted.
const ActiveConfigName = "default"

// loadConfig reads the stored scoring config, falling back to the service
// default. The result is a plain value handed to the matcher: per-request
// immutable, never shared mutable state.
func (s *QuizService) loadConfig(ctx context.Context) matching.Config {
	if s.cfgRepo == nil {
		return s.defaultCfg
	}

	dbCfg, ok, err := s.cfgRepo.GetConfig(ctx, ActiveConfigName)
	if err != nil || !ok {
		return s.defaultCfg
	}

	// start from defaults to keep sane fallbacks for any missing fields
	cfg := s.defaultCfg

	if dbCfg.BudgetWeight > 0 {
		cfg.BudgetWeight = dbCfg.BudgetWeight
	}
	if dbCfg.TypeWeight > 0 {
		cfg.TypeWeight = dbCfg.TypeWeight
	}
	if dbCfg.RangeWeight > 0 {
		cfg.RangeWeight = dbCfg.RangeWeight
	}
	if dbCfg.TechWeight > 0 {
		cfg.TechWeight = dbCfg.TechWeight
	}
	if dbCfg.EcoWeight > 0 {
		cfg.EcoWeight = dbCfg.EcoWeight
	}

	if dbCfg.BudgetFlexibility >= 1 {
		cfg.BudgetFlexibility = dbCfg.BudgetFlexibility
	}
	if dbCfg.OverBudgetTolerance >= 1 {
		cfg.OverBudgetTolerance = dbCfg.OverBudgetTolerance
	}
	if dbCfg.RangeBaseline > 0 {
		cfg.RangeBaseline = dbCfg.RangeBaseline
	}

	if dbCfg.ExcellentRangeThreshold > 0 {
		cfg.Thresholds.ExcellentRange = dbCfg.ExcellentRangeThreshold
	}
	if dbCfg.AdvancedTechThreshold > 0 {
		cfg.Thresholds.AdvancedTech = dbCfg.AdvancedTechThreshold
	}
	if dbCfg.EcoFriendlyThreshold > 0 {
		cfg.Thresholds.EcoFriendly = dbCfg.EcoFriendlyThreshold
	}
	if dbCfg.FastChargingThreshold > 0 {
		cfg.Thresholds.FastCharging = dbCfg.FastChargingThreshold
	}

	if len(dbCfg.SimilarTypes) > 0 {
		cfg.SimilarTypes = dbCfg.SimilarTypes
	}

	return cfg
}
