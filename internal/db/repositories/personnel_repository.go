package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	gormModels "droneworks/hangar/internal/models/gorm"
)

// PersonnelRepository handles personnel table operations using GORM
type PersonnelRepository struct {
	db *gorm.DB
}

func NewPersonnelRepository(db *gorm.DB) *PersonnelRepository {
	return &PersonnelRepository{db: db}
}

func (r *PersonnelRepository) Create(ctx context.Context, person *gormModels.Personnel) error {
	if err := r.db.WithContext(ctx).Create(person).Error; err != nil {
		return fmt.Errorf("failed to create personnel: %w", err)
	}
	return nil
}

// GetByID retrieves a personnel record by ID. Returns (nil, nil) when absent.
func (r *PersonnelRepository) GetByID(ctx context.Context, personnelID string) (*gormModels.Personnel, error) {
	var person gormModels.Personnel

	err := r.db.WithContext(ctx).
		Where("id = ?", personnelID).
		First(&person).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch personnel: %w", err)
	}

	return &person, nil
}

func (r *PersonnelRepository) GetAll(ctx context.Context) ([]gormModels.Personnel, error) {
	var personnel []gormModels.Personnel

	err := r.db.WithContext(ctx).
		Order("username asc").
		Find(&personnel).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch personnel: %w", err)
	}

	return personnel, nil
}

func (r *PersonnelRepository) GetByUsername(ctx context.Context, username string) (*gormModels.Personnel, error) {
	var person gormModels.Personnel

	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&person).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch personnel: %w", err)
	}

	return &person, nil
}
