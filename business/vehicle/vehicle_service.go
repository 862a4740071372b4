package vehicle

import (
	"context"
	"errors"
	"fmt"

	"github.com/SaiPranav00/EVMATCHFINAL/domain"
	"github.com/SaiPranav00/EVMATCHFINAL/pkg/logger"
)

// Body types accepted by the catalog; the matcher's similar-type map keys
// into the same domain.
var ValidBodyTypes = map[string]bool{
	"sedan":       true,
	"suv":         true,
	"hatchback":   true,
	"truck":       true,
	"wagon":       true,
	"coupe":       true,
	"convertible": true,
}

// VehicleRepository contract interface
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	FindByID(ctx context.Context, id uint64) (domain.Vehicle, error)
	FindAll(ctx context.Context) ([]domain.Vehicle, error)
	FindByBodyType(ctx context.Context, bodyType string) ([]domain.Vehicle, error)
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	Delete(ctx context.Context, id uint64) error
}

type vehicleService struct {
	vehicleRepo VehicleRepository
}

func NewVehicleService(vehicleRepo VehicleRepository) *vehicleService {
	return &vehicleService{
		vehicleRepo: vehicleRepo,
	}
}

func (s *vehicleService) GetAllVehicles(ctx context.Context, bodyType string) ([]domain.Vehicle, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get all vehicles")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if bodyType != "" {
		if !ValidBodyTypes[bodyType] {
			logger.Error("Invalid body type filter", bodyType)
			return nil, errors.New("invalid body type")
		}
		vehicles, err := s.vehicleRepo.FindByBodyType(ctx, bodyType)
		if err != nil {
			logger.Error("Failed to find vehicles by body type", err)
			return nil, err
		}
		return vehicles, nil
	}

	vehicles, err := s.vehicleRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all vehicles", err)
		return nil, err
	}

	return vehicles, nil
}

func (s *vehicleService) GetVehicleByID(ctx context.Context, id uint64) (*domain.Vehicle, error) {
	if id == 0 {
		logger.Error("invalid vehicle id")
		return nil, errors.New("invalid vehicle id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when get vehicle by id")
		return nil, fmt.Errorf("context error: %w", err)
	}

	vehicle, err := s.vehicleRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("failed to find vehicle by id", err.Error())
		return nil, err
	}

	return &vehicle, nil
}

func (s *vehicleService) validateVehicle(vehicle *domain.Vehicle) error {
	if vehicle.Make == "" {
		return errors.New("make is required")
	}
	if vehicle.Model == "" {
		return errors.New("model is required")
	}
	if !ValidBodyTypes[vehicle.BodyType] {
		return errors.New("invalid body type")
	}
	if vehicle.Price.MSRP <= 0 {
		return errors.New("msrp must be greater than 0")
	}

	inc := vehicle.Price.Incentives
	if inc.Federal < 0 || inc.State < 0 || inc.Local < 0 {
		return errors.New("incentives cannot be negative")
	}

	if vehicle.Specifications.EPARange < 0 {
		return errors.New("epa range cannot be negative")
	}
	if vehicle.TechScore < 0 || vehicle.TechScore > 100 {
		return errors.New("tech score must be between 0 and 100")
	}
	if vehicle.EcoScore < 0 || vehicle.EcoScore > 100 {
		return errors.New("eco score must be between 0 and 100")
	}

	return nil
}

func (s *vehicleService) CreateVehicle(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when create vehicle")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if err := s.validateVehicle(vehicle); err != nil {
		logger.Error("Invalid vehicle data", err)
		return nil, err
	}

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		logger.Error("failed to create new vehicle", err)
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}

	logger.Info("vehicle created successfully")

	return vehicle, nil
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when updating vehicle")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if vehicle.ID == 0 {
		logger.Error("Invalid vehicle data: ID is required")
		return nil, errors.New("vehicle ID is required")
	}

	if err := s.validateVehicle(vehicle); err != nil {
		logger.Error("Invalid vehicle data", err)
		return nil, err
	}

	// Verify vehicle exists
	_, err := s.vehicleRepo.FindByID(ctx, vehicle.ID)
	if err != nil {
		logger.Error("vehicle not found", err)
		return nil, errors.New("vehicle not found")
	}

	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		logger.Error("failed to update vehicle", err)
		return nil, fmt.Errorf("failed to update vehicle: %w", err)
	}

	// Get updated vehicle from database
	updatedVehicle, err := s.vehicleRepo.FindByID(ctx, vehicle.ID)
	if err != nil {
		logger.Error("failed to fetch updated vehicle", err)
		return nil, fmt.Errorf("failed to fetch updated vehicle: %w", err)
	}

	logger.Info("vehicle updated successfully")

	return &updatedVehicle, nil
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, id uint64) error {
	if id == 0 {
		logger.Error("Invalid vehicle id when deleting vehicle")
		return errors.New("invalid vehicle id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when deleting vehicle")
		return fmt.Errorf("context error: %w", err)
	}

	// Verify vehicle exists
	_, err := s.vehicleRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("vehicle not found", err)
		return errors.New("vehicle not found")
	}

	if err := s.vehicleRepo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete vehicle", err)
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}

	logger.Info("vehicle deleted successfully")

	return nil
}
