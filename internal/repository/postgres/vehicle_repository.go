package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/SaiPranav00/EVMATCHFINAL/domain"

	"gorm.io/gorm"
)

type VehicleRepository struct {
	DB *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{
		DB: db,
	}
}

func (r *VehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(vehicle).Error; err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}

	return nil
}

func (r *VehicleRepository) FindByID(ctx context.Context, id uint64) (domain.Vehicle, error) {
	if err := ctx.Err(); err != nil {
		return domain.Vehicle{}, fmt.Errorf("context error: %w", err)
	}

	var vehicle domain.Vehicle

	err := r.DB.WithContext(ctx).First(&vehicle, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Vehicle{}, errors.New("vehicle not found")
		}
		return domain.Vehicle{}, fmt.Errorf("failed to find vehicle: %w", err)
	}

	return vehicle, nil
}

func (r *VehicleRepository) FindAll(ctx context.Context) ([]domain.Vehicle, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var vehicles []domain.Vehicle
	err := r.DB.WithContext(ctx).Find(&vehicles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicles: %w", err)
	}

	return vehicles, nil
}

func (r *VehicleRepository) FindByBodyType(ctx context.Context, bodyType string) ([]domain.Vehicle, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var vehicles []domain.Vehicle
	err := r.DB.WithContext(ctx).Where("body_type = ?", bodyType).Find(&vehicles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicles: %w", err)
	}

	return vehicles, nil
}

func (r *VehicleRepository) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	var existingVehicle domain.Vehicle
	if err := r.DB.WithContext(ctx).First(&existingVehicle, vehicle.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("vehicle not found")
		}
		return fmt.Errorf("failed to find vehicle: %w", err)
	}

	updateData := map[string]interface{}{
		"make":              vehicle.Make,
		"model":             vehicle.Model,
		"year":              vehicle.Year,
		"body_type":         vehicle.BodyType,
		"msrp":              vehicle.Price.MSRP,
		"federal_incentive": vehicle.Price.Incentives.Federal,
		"state_incentive":   vehicle.Price.Incentives.State,
		"local_incentive":   vehicle.Price.Incentives.Local,
		"epa_range":         vehicle.Specifications.EPARange,
		"dc_max_kw":         vehicle.Specifications.DCMaxKW,
		"tech_score":        vehicle.TechScore,
		"eco_score":         vehicle.EcoScore,
		"image_url":         vehicle.ImageURL,
	}

	result := r.DB.WithContext(ctx).Model(&domain.Vehicle{}).Where("id = ?", vehicle.ID).Updates(updateData)
	if result.Error != nil {
		return fmt.Errorf("failed to update vehicle: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("vehicle not found or already deleted")
	}

	return nil
}

func (r *VehicleRepository) Delete(ctx context.Context, id uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Delete(&domain.Vehicle{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete vehicle: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("vehicle not found or already deleted")
	}

	return nil
}
