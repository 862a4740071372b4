package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/SaiPranav00/EVMATCHFINAL/business/matching"
	"github.com/SaiPranav00/EVMATCHFINAL/business/quiz"
	"github.com/SaiPranav00/EVMATCHFINAL/domain"
	"github.com/SaiPranav00/EVMATCHFINAL/pkg/logger"
	"github.com/SaiPranav00/EVMATCHFINAL/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

type (
	QuizHandler struct {
		validate    *validator.Validate
		quizService QuizService
		timeout     time.Duration
	}

	QuizService interface {
		SubmitQuiz(ctx context.Context, userID uint, answers quiz.QuizAnswers, topN int) ([]matching.RankedVehicle, error)
		GetPreferences(ctx context.Context, userID uint) (domain.PreferenceRecord, error)
		UpdatePreferences(ctx context.Context, userID uint, answers quiz.QuizAnswers) (domain.PreferenceRecord, error)
		GetMatches(ctx context.Context, userID uint, topN int) ([]matching.RankedVehicle, error)
	}

	QuizSubmitRequest struct {
		BudgetMin        *float64 `json:"budget_min" validate:"omitempty,gte=0"`
		BudgetMax        *float64 `json:"budget_max" validate:"omitempty,gte=0"`
		VehicleType      string   `json:"vehicle_type"`
		RangeImportance  int      `json:"range_importance" validate:"gte=0,lte=10"`
		TechImportance   int      `json:"tech_importance" validate:"gte=0,lte=10"`
		ChargingFeatures []string `json:"charging_features"`
		EcoFeatures      []string `json:"eco_features"`
	}

	MatchQuery struct {
		N int `query:"n"`
	}
)

func NewQuizHandler(svc QuizService) *QuizHandler {
	return &QuizHandler{
		validate:    validator.New(),
		quizService: svc,
		timeout:     10 * time.Second,
	}
}

func (r QuizSubmitRequest) toAnswers() quiz.QuizAnswers {
	return quiz.QuizAnswers{
		BudgetMin:        r.BudgetMin,
		BudgetMax:        r.BudgetMax,
		VehicleType:      r.VehicleType,
		RangeImportance:  r.RangeImportance,
		TechImportance:   r.TechImportance,
		ChargingFeatures: r.ChargingFeatures,
		EcoFeatures:      r.EcoFeatures,
	}
}

// POST /api/v1/quiz?n=5
func (h *QuizHandler) SubmitQuiz(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req QuizSubmitRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	topN, _ := strconv.Atoi(c.QueryParam("n"))

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	recs, err := h.quizService.SubmitQuiz(ctx, userID, req.toAnswers(), topN)
	if err != nil {
		logger.Error("Failed to submit quiz", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(recs))
}

// GET /api/v1/preferences
func (h *QuizHandler) GetPreferences(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	record, err := h.quizService.GetPreferences(ctx, userID)
	if err != nil {
		if err.Error() == "preferences not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(record))
}

// PUT /api/v1/preferences
func (h *QuizHandler) UpdatePreferences(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req QuizSubmitRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	record, err := h.quizService.UpdatePreferences(ctx, userID, req.toAnswers())
	if err != nil {
		logger.Error("Failed to update preferences", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(record))
}

// GET /api/v1/matches?n=10
func (h *QuizHandler) GetMatches(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var q MatchQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	metrics.MatchRequestsTotal.Inc()
	timer := prometheus.NewTimer(metrics.MatchRequestDuration)
	defer timer.ObserveDuration()

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	recs, err := h.quizService.GetMatches(ctx, userID, q.N)
	if err != nil {
		if err.Error() == "preferences not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recs))
}
