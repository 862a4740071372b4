package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/SaiPranav00/EVMATCHFINAL/business/quiz"
	"github.com/SaiPranav00/EVMATCHFINAL/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MatchConfigRepository struct {
	DB *gorm.DB
}

var _ quiz.ConfigRepository = (*MatchConfigRepository)(nil)

func NewMatchConfigRepository(db *gorm.DB) *MatchConfigRepository {
	return &MatchConfigRepository{DB: db}
}

func (r *MatchConfigRepository) GetConfig(ctx context.Context, name string) (domain.MatchConfig, bool, error) {
	var cfg domain.MatchConfig

	err := r.DB.WithContext(ctx).
		Where("name = ?", name).
		First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.MatchConfig{}, false, nil
	}
	if err != nil {
		return domain.MatchConfig{}, false, err
	}

	if len(cfg.SimilarTypesRaw) > 0 {
		_ = json.Unmarshal(cfg.SimilarTypesRaw, &cfg.SimilarTypes)
	}
	return cfg, true, nil
}

func (r *MatchConfigRepository) UpsertConfig(ctx context.Context, cfg domain.MatchConfig) error {
	// if SimilarTypes map is set but the raw column is empty, serialize it
	if len(cfg.SimilarTypesRaw) == 0 && len(cfg.SimilarTypes) > 0 {
		raw, _ := json.Marshal(cfg.SimilarTypes)
		cfg.SimilarTypesRaw = raw
	}
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"budget_weight",
				"type_weight",
				"range_weight",
				"tech_weight",
				"eco_weight",
				"budget_flexibility",
				"over_budget_tolerance",
				"range_baseline",
				"excellent_range_threshold",
				"advanced_tech_threshold",
				"eco_friendly_threshold",
				"fast_charging_threshold",
				"similar_types",
				"updated_at",
			}),
		}).
		Create(&cfg).Error
}
