package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	gormModels "droneworks/hangar/internal/models/gorm"
)

// AircraftRepository handles aircraft table operations using GORM
type AircraftRepository struct {
	db *gorm.DB
}

// NewAircraftRepository creates a new GORM-based aircraft repository
func NewAircraftRepository(db *gorm.DB) *AircraftRepository {
	return &AircraftRepository{db: db}
}

func (r *AircraftRepository) Create(ctx context.Context, aircraft *gormModels.Aircraft) error {
	if err := r.db.WithContext(ctx).Create(aircraft).Error; err != nil {
		return fmt.Errorf("failed to create aircraft: %w", err)
	}
	return nil
}

// GetByID retrieves an aircraft by its ID. Returns (nil, nil) when absent.
func (r *AircraftRepository) GetByID(ctx context.Context, aircraftID string) (*gormModels.Aircraft, error) {
	var aircraft gormModels.Aircraft

	err := r.db.WithContext(ctx).
		Where("id = ?", aircraftID).
		First(&aircraft).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch aircraft: %w", err)
	}

	return &aircraft, nil
}

func (r *AircraftRepository) GetBySerialNumber(ctx context.Context, serial string) (*gormModels.Aircraft, error) {
	var aircraft gormModels.Aircraft

	err := r.db.WithContext(ctx).
		Where("serial_number = ?", serial).
		First(&aircraft).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch aircraft: %w", err)
	}

	return &aircraft, nil
}

// GetAll retrieves all aircraft, newest first
func (r *AircraftRepository) GetAll(ctx context.Context) ([]gormModels.Aircraft, error) {
	var aircraft []gormModels.Aircraft

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&aircraft).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch aircraft: %w", err)
	}

	return aircraft, nil
}

// SetProduced updates the cached production flag inside the supplied
// transaction; the ledger recomputes the value from the links.
func (r *AircraftRepository) SetProduced(ctx context.Context, tx *gorm.DB, aircraftID string, produced bool) error {
	result := tx.WithContext(ctx).
		Model(&gormModels.Aircraft{}).
		Where("id = ?", aircraftID).
		Update("is_produced", produced)

	if result.Error != nil {
		return fmt.Errorf("failed to update production status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("aircraft not found with ID: %s", aircraftID)
	}

	return nil
}
