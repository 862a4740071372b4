package matching

import (
	"sort"

	"github.com/SaiPranav00/EVMATCHFINAL/domain"
)

const defaultTopN = 10

// RankedVehicle is one entry of a ranked recommendation list.
type RankedVehicle struct {
	Vehicle domain.Vehicle `json:"vehicle"`
	Score   int            `json:"score"`
	Reasons []string       `json:"reasons"`
}

// Rank scores every candidate, sorts descending by score and returns the
// first topN entries. The sort is stable: equal-score candidates keep their
// original input order, so identical inputs always produce identical output.
func Rank(vehicles []domain.Vehicle, prefs *domain.UserPreferences, cfg Config, topN int) ([]RankedVehicle, error) {
	if prefs == nil {
		return nil, ErrInvalidArgument
	}
	if topN <= 0 {
		topN = defaultTopN
	}

	ranked := make([]RankedVehicle, 0, len(vehicles))
	for i := range vehicles {
		res, err := Score(&vehicles[i], prefs, cfg)
		if err != nil {
			return nil, err
		}
		ranked = append(ranked, RankedVehicle{
			Vehicle: vehicles[i],
			Score:   res.Score,
			Reasons: res.Reasons,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if topN > len(ranked) {
		topN = len(ranked)
	}

	return ranked[:topN], nil
}
