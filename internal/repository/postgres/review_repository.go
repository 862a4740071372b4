package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/SaiPranav00/EVMATCHFINAL/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{
		DB: db,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(review).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}

	return nil
}

func (r *ReviewRepository) FindByID(ctx context.Context, id uint64) (domain.Review, error) {
	var review domain.Review

	err := r.DB.WithContext(ctx).First(&review, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Review{}, errors.New("review not found")
		}
		return domain.Review{}, fmt.Errorf("failed to find review: %w", err)
	}

	return review, nil
}

func (r *ReviewRepository) FindByVehicle(ctx context.Context, vehicleID uint64) ([]domain.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var reviews []domain.Review
	err := r.DB.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find reviews: %w", err)
	}

	return reviews, nil
}

func (r *ReviewRepository) FindByVehicleAndUser(ctx context.Context, vehicleID uint64, userID uint) (domain.Review, error) {
	var review domain.Review

	err := r.DB.WithContext(ctx).
		Where("vehicle_id = ? AND user_id = ?", vehicleID, userID).
		First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Review{}, errors.New("review not found")
		}
		return domain.Review{}, fmt.Errorf("failed to find review: %w", err)
	}

	return review, nil
}

// Summary aggregates count and average rating in a single query.
func (r *ReviewRepository) Summary(ctx context.Context, vehicleID uint64) (domain.ReviewSummary, error) {
	if err := ctx.Err(); err != nil {
		return domain.ReviewSummary{}, fmt.Errorf("context error: %w", err)
	}

	summary := domain.ReviewSummary{VehicleID: vehicleID}

	err := r.DB.WithContext(ctx).
		Model(&domain.Review{}).
		Select("COUNT(*) AS review_count, COALESCE(AVG(rating), 0) AS average_rating").
		Where("vehicle_id = ?", vehicleID).
		Scan(&summary).Error
	if err != nil {
		return domain.ReviewSummary{}, fmt.Errorf("failed to summarize reviews: %w", err)
	}

	return summary, nil
}

func (r *ReviewRepository) Update(ctx context.Context, review *domain.Review) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	updateData := map[string]interface{}{
		"rating":  review.Rating,
		"title":   review.Title,
		"comment": review.Comment,
	}

	result := r.DB.WithContext(ctx).Model(&domain.Review{}).Where("id = ?", review.ID).Updates(updateData)
	if result.Error != nil {
		return fmt.Errorf("failed to update review: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("review not found or already deleted")
	}

	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Delete(&domain.Review{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete review: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("review not found or already deleted")
	}

	return nil
}
