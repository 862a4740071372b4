package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/SaiPranav00/EVMATCHFINAL/domain"
	"github.com/SaiPranav00/EVMATCHFINAL/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type ReviewService interface {
	CreateReview(ctx context.Context, review *domain.Review) (*domain.Review, error)
	GetVehicleReviews(ctx context.Context, vehicleID uint64) ([]domain.Review, domain.ReviewSummary, error)
	UpdateReview(ctx context.Context, id uint64, userID uint, isAdmin bool, updateData *domain.Review) (*domain.Review, error)
	DeleteReview(ctx context.Context, id uint64, userID uint, isAdmin bool) error
}

type ReviewHandler struct {
	reviewService ReviewService
	validator     *validator.Validate
	timeout       time.Duration
}

func NewReviewHandler(reviewService ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		validator:     validator.New(),
		timeout:       10 * time.Second,
	}
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Title   string `json:"title"`
	Comment string `json:"comment"`
}

type UpdateReviewRequest struct {
	Rating  int    `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Title   string `json:"title"`
	Comment string `json:"comment"`
}

// identity helpers; user_id and role are set by the auth middleware
func callerIdentity(c echo.Context) (uint, bool, bool) {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return 0, false, false
	}
	role, _ := c.Get("role").(string)
	return userID, role == "admin", true
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	userID, _, ok := callerIdentity(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	vehicleIdStr := c.Param("id")
	vehicleId, err := strconv.ParseUint(vehicleIdStr, 10, 64)
	if err != nil {
		logger.Error("Invalid vehicle id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	var req CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate review request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	review := &domain.Review{
		VehicleID: vehicleId,
		UserID:    userID,
		Rating:    req.Rating,
		Title:     req.Title,
		Comment:   req.Comment,
	}

	newReview, err := h.reviewService.CreateReview(ctx, review)
	if err != nil {
		logger.Error("Failed to create review", err)
		if err.Error() == "vehicle not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		if err.Error() == "you have already reviewed this vehicle" ||
			err.Error() == "rating must be between 1 and 5" ||
			err.Error() == "vehicle id is required" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Review successfully created",
		"review":  newReview,
	})
}

func (h *ReviewHandler) GetVehicleReviews(c echo.Context) error {
	vehicleIdStr := c.Param("id")
	vehicleId, err := strconv.ParseUint(vehicleIdStr, 10, 64)
	if err != nil {
		logger.Error("Invalid vehicle id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	reviews, summary, err := h.reviewService.GetVehicleReviews(ctx, vehicleId)
	if err != nil {
		logger.Error("Failed to get vehicle reviews", err)
		if err.Error() == "invalid vehicle id" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully get vehicle reviews",
		"reviews": reviews,
		"summary": summary,
	})
}

func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	userID, isAdmin, ok := callerIdentity(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	reviewIdStr := c.Param("id")
	reviewId, err := strconv.ParseUint(reviewIdStr, 10, 64)
	if err != nil {
		logger.Error("Invalid review id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	var req UpdateReviewRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate review request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	updateData := &domain.Review{
		Rating:  req.Rating,
		Title:   req.Title,
		Comment: req.Comment,
	}

	updatedReview, err := h.reviewService.UpdateReview(ctx, reviewId, userID, isAdmin, updateData)
	if err != nil {
		logger.Error("Failed to update review", err)
		if err.Error() == "review not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		if err.Error() == "you can only update your own review" {
			return c.JSON(http.StatusForbidden, ResponseError{Message: err.Error()})
		}
		if err.Error() == "rating must be between 1 and 5" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully update review",
		"review":  updatedReview,
	})
}

func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	userID, isAdmin, ok := callerIdentity(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	reviewIdStr := c.Param("id")
	reviewId, err := strconv.ParseUint(reviewIdStr, 10, 64)
	if err != nil {
		logger.Error("Invalid review id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	err = h.reviewService.DeleteReview(ctx, reviewId, userID, isAdmin)
	if err != nil {
		logger.Error("Failed to delete review", err)
		if err.Error() == "review not found" || err.Error() == "invalid review id" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		if err.Error() == "you can only delete your own review" {
			return c.JSON(http.StatusForbidden, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":   "review successfully deleted",
		"review_id": reviewId,
	})
}
