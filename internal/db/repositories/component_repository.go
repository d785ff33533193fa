package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"droneworks/hangar/internal/constants"
	gormModels "droneworks/hangar/internal/models/gorm"
)

// ComponentFilter narrows ListAvailable. Zero values mean "any".
type ComponentFilter struct {
	Category      constants.ComponentCategory
	AircraftModel constants.AircraftModel
}

// ComponentRepository handles component table operations using GORM
type ComponentRepository struct {
	db *gorm.DB
}

// NewComponentRepository creates a new GORM-based component repository
func NewComponentRepository(db *gorm.DB) *ComponentRepository {
	return &ComponentRepository{db: db}
}

func (r *ComponentRepository) Create(ctx context.Context, component *gormModels.Component) error {
	if err := r.db.WithContext(ctx).Create(component).Error; err != nil {
		return fmt.Errorf("failed to create component: %w", err)
	}
	return nil
}

// GetByID retrieves a component by its ID. Returns (nil, nil) when absent.
func (r *ComponentRepository) GetByID(ctx context.Context, componentID string) (*gormModels.Component, error) {
	var component gormModels.Component

	err := r.db.WithContext(ctx).
		Where("id = ?", componentID).
		First(&component).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch component: %w", err)
	}

	return &component, nil
}

// GetByIDs fetches the given components in one query. Missing IDs are
// simply absent from the result; the caller decides whether that is an error.
func (r *ComponentRepository) GetByIDs(ctx context.Context, componentIDs []string) ([]gormModels.Component, error) {
	var components []gormModels.Component

	err := r.db.WithContext(ctx).
		Where("id IN ?", componentIDs).
		Find(&components).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch components: %w", err)
	}

	return components, nil
}

// ListAvailable returns a snapshot of unreserved components, optionally
// filtered by category and aircraft model.
func (r *ComponentRepository) ListAvailable(ctx context.Context, filter ComponentFilter) ([]gormModels.Component, error) {
	var components []gormModels.Component

	q := r.db.WithContext(ctx).Where("is_used = ?", false)
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.AircraftModel != "" {
		q = q.Where("aircraft_model = ?", filter.AircraftModel)
	}

	if err := q.Order("created_at").Find(&components).Error; err != nil {
		return nil, fmt.Errorf("failed to list available components: %w", err)
	}

	return components, nil
}

// SetUsage flips the is_used flag. Only the assembly service calls this,
// inside its transaction, so the flag stays in lockstep with the links.
func (r *ComponentRepository) SetUsage(ctx context.Context, tx *gorm.DB, componentID string, used bool) error {
	result := tx.WithContext(ctx).
		Model(&gormModels.Component{}).
		Where("id = ?", componentID).
		Update("is_used", used)

	if result.Error != nil {
		return fmt.Errorf("failed to update component usage: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("component not found with ID: %s", componentID)
	}

	return nil
}

// DeleteBatch removes the given components inside the supplied transaction.
func (r *ComponentRepository) DeleteBatch(ctx context.Context, tx *gorm.DB, componentIDs []string) (int64, error) {
	result := tx.WithContext(ctx).
		Where("id IN ?", componentIDs).
		Delete(&gormModels.Component{})

	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete components: %w", result.Error)
	}

	return result.RowsAffected, nil
}
