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

type VehicleService interface {
	GetAllVehicles(ctx context.Context, bodyType string) ([]domain.Vehicle, error)
	GetVehicleByID(ctx context.Context, id uint64) (*domain.Vehicle, error)
	CreateVehicle(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error)
	DeleteVehicle(ctx context.Context, id uint64) error
}

type VehicleHandler struct {
	vehicleService VehicleService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewVehicleHandler(vehicleService VehicleService) *VehicleHandler {
	return &VehicleHandler{
		vehicleService: vehicleService,
		validator:      validator.New(),
		timeout:        10 * time.Second,
	}
}

type VehicleIncentivesRequest struct {
	Federal float64 `json:"federal" validate:"gte=0"`
	State   float64 `json:"state" validate:"gte=0"`
	Local   float64 `json:"local" validate:"gte=0"`
}

type CreateVehicleRequest struct {
	Make       string                   `json:"make" validate:"required"`
	Model      string                   `json:"model" validate:"required"`
	Year       int                      `json:"year" validate:"gte=0"`
	BodyType   string                   `json:"body_type" validate:"required"`
	MSRP       float64                  `json:"msrp" validate:"required,gt=0"`
	Incentives VehicleIncentivesRequest `json:"incentives"`
	EPARange   int                      `json:"epa_range" validate:"gte=0"`
	DCMaxKW    float64                  `json:"dc_max_kw" validate:"gte=0"`
	TechScore  int                      `json:"tech_score" validate:"gte=0,lte=100"`
	EcoScore   int                      `json:"eco_score" validate:"gte=0,lte=100"`
	ImageURL   string                   `json:"image_url"`
}

type UpdateVehicleRequest struct {
	Make       string                   `json:"make" validate:"required"`
	Model      string                   `json:"model" validate:"required"`
	Year       int                      `json:"year" validate:"gte=0"`
	BodyType   string                   `json:"body_type" validate:"required"`
	MSRP       float64                  `json:"msrp" validate:"required,gt=0"`
	Incentives VehicleIncentivesRequest `json:"incentives"`
	EPARange   int                      `json:"epa_range" validate:"gte=0"`
	DCMaxKW    float64                  `json:"dc_max_kw" validate:"gte=0"`
	TechScore  int                      `json:"tech_score" validate:"gte=0,lte=100"`
	EcoScore   int                      `json:"eco_score" validate:"gte=0,lte=100"`
	ImageURL   string                   `json:"image_url"`
}

func vehicleFromCreateRequest(req CreateVehicleRequest) *domain.Vehicle {
	return &domain.Vehicle{
		Make:     req.Make,
		Model:    req.Model,
		Year:     req.Year,
		BodyType: req.BodyType,
		Price: domain.VehiclePrice{
			MSRP: req.MSRP,
			Incentives: domain.VehicleIncentives{
				Federal: req.Incentives.Federal,
				State:   req.Incentives.State,
				Local:   req.Incentives.Local,
			},
		},
		Specifications: domain.VehicleSpecifications{
			EPARange: req.EPARange,
			DCMaxKW:  req.DCMaxKW,
		},
		TechScore: req.TechScore,
		EcoScore:  req.EcoScore,
		ImageURL:  req.ImageURL,
	}
}

func (h *VehicleHandler) GetAllVehicles(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	bodyType := c.QueryParam("body_type")

	vehicles, err := h.vehicleService.GetAllVehicles(ctx, bodyType)
	if err != nil {
		logger.Error("Failed to find all vehicles", err)
		if err.Error() == "invalid body type" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "successfully get all vehicles",
		"vehicles": vehicles,
	})
}

func (h *VehicleHandler) GetVehicleByID(c echo.Context) error {
	vehicleIdStr := c.Param("id")

	vehicleId, err := strconv.ParseUint(vehicleIdStr, 10, 64)
	if err != nil {
		logger.Error("Invalid vehicle id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	vehicle, err := h.vehicleService.GetVehicleByID(ctx, vehicleId)
	if err != nil {
		if err.Error() == "vehicle not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully find vehicle by id",
		"vehicle": vehicle,
	})
}

func (h *VehicleHandler) CreateVehicle(c echo.Context) error {
	var req CreateVehicleRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate vehicle request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	newVehicle, err := h.vehicleService.CreateVehicle(ctx, vehicleFromCreateRequest(req))
	if err != nil {
		logger.Error("Failed to create vehicle", err)
		if err.Error() == "make is required" ||
			err.Error() == "model is required" ||
			err.Error() == "invalid body type" ||
			err.Error() == "msrp must be greater than 0" ||
			err.Error() == "incentives cannot be negative" ||
			err.Error() == "epa range cannot be negative" ||
			err.Error() == "tech score must be between 0 and 100" ||
			err.Error() == "eco score must be between 0 and 100" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Vehicle successfully created",
		"vehicle": newVehicle,
	})
}

func (h *VehicleHandler) UpdateVehicle(c echo.Context) error {
	vehicleIdStr := c.Param("id")

	vehicleId, err := strconv.ParseUint(vehicleIdStr, 10, 64)
	if err != nil {
		logger.Error("Invalid vehicle id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	var req UpdateVehicleRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate vehicle request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	vehicle := vehicleFromCreateRequest(CreateVehicleRequest(req))
	vehicle.ID = vehicleId

	updatedVehicle, err := h.vehicleService.UpdateVehicle(ctx, vehicle)
	if err != nil {
		logger.Error("Failed to update vehicle", err)
		if err.Error() == "vehicle not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		if err.Error() == "make is required" ||
			err.Error() == "model is required" ||
			err.Error() == "invalid body type" ||
			err.Error() == "msrp must be greater than 0" ||
			err.Error() == "incentives cannot be negative" ||
			err.Error() == "epa range cannot be negative" ||
			err.Error() == "tech score must be between 0 and 100" ||
			err.Error() == "eco score must be between 0 and 100" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully update vehicle",
		"vehicle": updatedVehicle,
	})
}

func (h *VehicleHandler) DeleteVehicle(c echo.Context) error {
	vehicleIdStr := c.Param("id")

	vehicleId, err := strconv.ParseUint(vehicleIdStr, 10, 64)
	if err != nil {
		logger.Error("Invalid vehicle id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	err = h.vehicleService.DeleteVehicle(ctx, vehicleId)
	if err != nil {
		logger.Error("Failed to delete vehicle", err)
		if err.Error() == "vehicle not found" || err.Error() == "invalid vehicle id" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":    "vehicle successfully deleted",
		"vehicle_id": vehicleId,
	})
}
