package postgres

import (
	"context"
	"fmt"

	"github.com/SaiPranav00/EVMATCHFINAL/business/quiz"
	"github.com/SaiPranav00/EVMATCHFINAL/domain"

	"gorm.io/gorm"
)

// QuizRepository appends raw quiz submissions. Rows are never updated;
// the latest submission per user is the source of the derived preferences.
type QuizRepository struct {
	DB *gorm.DB
}

var _ quiz.QuizRepository = (*QuizRepository)(nil)

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) SaveSubmission(ctx context.Context, submission *domain.QuizSubmission) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(submission).Error; err != nil {
		return fmt.Errorf("failed to save quiz submission: %w", err)
	}

	return nil
}

func (r *QuizRepository) FindByUser(ctx context.Context, userID uint) ([]domain.QuizSubmission, error) {
	var submissions []domain.QuizSubmission

	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&submissions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find quiz submissions: %w", err)
	}

	return submissions, nil
}
