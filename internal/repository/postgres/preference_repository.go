package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/SaiPranav00/EVMATCHFINAL/business/quiz"
	"github.com/SaiPranav00/EVMATCHFINAL/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PreferenceRepository struct {
	DB *gorm.DB
}

var _ quiz.PreferenceRepository = (*PreferenceRepository)(nil)

func NewPreferenceRepository(db *gorm.DB) *PreferenceRepository {
	return &PreferenceRepository{DB: db}
}

func (r *PreferenceRepository) GetByUser(ctx context.Context, userID uint) (domain.PreferenceRecord, bool, error) {
	var record domain.PreferenceRecord

	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.PreferenceRecord{}, false, nil
	}
	if err != nil {
		return domain.PreferenceRecord{}, false, fmt.Errorf("failed to find preferences: %w", err)
	}

	return record, true, nil
}

func (r *PreferenceRepository) Upsert(ctx context.Context, record *domain.PreferenceRecord) error {
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"budget_min",
				"budget_max",
				"vehicle_type",
				"range_importance",
				"tech_importance",
				"charging_features",
				"eco_features",
				"updated_at",
			}),
		}).
		Create(record).Error
}
