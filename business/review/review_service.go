package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/SaiPranav00/EVMATCHFINAL/domain"
	"github.com/SaiPranav00/EVMATCHFINAL/pkg/logger"
)

// ReviewRepository contract interface
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	FindByID(ctx context.Context, id uint64) (domain.Review, error)
	FindByVehicle(ctx context.Context, vehicleID uint64) ([]domain.Review, error)
	FindByVehicleAndUser(ctx context.Context, vehicleID uint64, userID uint) (domain.Review, error)
	Summary(ctx context.Context, vehicleID uint64) (domain.ReviewSummary, error)
	Update(ctx context.Context, review *domain.Review) error
	Delete(ctx context.Context, id uint64) error
}

// VehicleRepository is the slice of the vehicle catalog the review service
// needs to confirm a review target exists.
type VehicleRepository interface {
	FindByID(ctx context.Context, id uint64) (domain.Vehicle, error)
}

type reviewService struct {
	reviewRepo  ReviewRepository
	vehicleRepo VehicleRepository
}

func NewReviewService(reviewRepo ReviewRepository, vehicleRepo VehicleRepository) *reviewService {
	return &reviewService{
		reviewRepo:  reviewRepo,
		vehicleRepo: vehicleRepo,
	}
}

func (s *reviewService) validateReview(review *domain.Review) error {
	if review.VehicleID == 0 {
		return errors.New("vehicle id is required")
	}
	if review.Rating < 1 || review.Rating > 5 {
		return errors.New("rating must be between 1 and 5")
	}
	return nil
}

func (s *reviewService) CreateReview(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when create review")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if err := s.validateReview(review); err != nil {
		logger.Error("Invalid review data", err)
		return nil, err
	}

	// Verify the vehicle exists
	if _, err := s.vehicleRepo.FindByID(ctx, review.VehicleID); err != nil {
		logger.Error("vehicle not found for review", err)
		return nil, errors.New("vehicle not found")
	}

	// One review per user per vehicle
	existing, err := s.reviewRepo.FindByVehicleAndUser(ctx, review.VehicleID, review.UserID)
	if err == nil && existing.ID > 0 {
		logger.Error("Duplicate review attempt")
		return nil, errors.New("you have already reviewed this vehicle")
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		logger.Error("failed to create review", err)
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	logger.Info("review created successfully")

	return review, nil
}

// GetVehicleReviews returns a vehicle's reviews together with the
// count/average summary.
func (s *reviewService) GetVehicleReviews(ctx context.Context, vehicleID uint64) ([]domain.Review, domain.ReviewSummary, error) {
	if vehicleID == 0 {
		logger.Error("invalid vehicle id")
		return nil, domain.ReviewSummary{}, errors.New("invalid vehicle id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when get vehicle reviews")
		return nil, domain.ReviewSummary{}, fmt.Errorf("context error: %w", err)
	}

	reviews, err := s.reviewRepo.FindByVehicle(ctx, vehicleID)
	if err != nil {
		logger.Error("Failed to find reviews", err)
		return nil, domain.ReviewSummary{}, err
	}

	summary, err := s.reviewRepo.Summary(ctx, vehicleID)
	if err != nil {
		logger.Error("Failed to compute review summary", err)
		return nil, domain.ReviewSummary{}, err
	}

	return reviews, summary, nil
}

// UpdateReview lets the owner (or an admin) change rating, title or comment.
func (s *reviewService) UpdateReview(ctx context.Context, id uint64, userID uint, isAdmin bool, updateData *domain.Review) (*domain.Review, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when updating review")
		return nil, fmt.Errorf("context error: %w", err)
	}

	existing, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("review not found", err)
		return nil, errors.New("review not found")
	}

	if existing.UserID != userID && !isAdmin {
		logger.Error("review update forbidden")
		return nil, errors.New("you can only update your own review")
	}

	if updateData.Rating != 0 {
		if updateData.Rating < 1 || updateData.Rating > 5 {
			return nil, errors.New("rating must be between 1 and 5")
		}
		existing.Rating = updateData.Rating
	}
	if updateData.Title != "" {
		existing.Title = updateData.Title
	}
	if updateData.Comment != "" {
		existing.Comment = updateData.Comment
	}

	if err := s.reviewRepo.Update(ctx, &existing); err != nil {
		logger.Error("failed to update review", err)
		return nil, fmt.Errorf("failed to update review: %w", err)
	}

	logger.Info("review updated successfully")

	return &existing, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, id uint64, userID uint, isAdmin bool) error {
	if id == 0 {
		logger.Error("Invalid review id when deleting review")
		return errors.New("invalid review id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when deleting review")
		return fmt.Errorf("context error: %w", err)
	}

	existing, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("review not found", err)
		return errors.New("review not found")
	}

	if existing.UserID != userID && !isAdmin {
		logger.Error("review delete forbidden")
		return errors.New("you can only delete your own review")
	}

	if err := s.reviewRepo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete review", err)
		return fmt.Errorf("failed to delete review: %w", err)
	}

	logger.Info("review deleted successfully")

	return nil
}
