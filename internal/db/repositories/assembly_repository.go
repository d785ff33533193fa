package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"droneworks/hangar/internal/constants"
	gormModels "droneworks/hangar/internal/models/gorm"
)

// AssemblyRepository handles the aircraft_components link table using GORM.
// All mutating methods take the ambient transaction so the ledger can apply
// its check-then-mutate sequence atomically.
type AssemblyRepository struct {
	db *gorm.DB
}

// NewAssemblyRepository creates a new GORM-based assembly repository
func NewAssemblyRepository(db *gorm.DB) *AssemblyRepository {
	return &AssemblyRepository{db: db}
}

// GetLink retrieves the link for an (aircraft, component) pair.
// Returns (nil, nil) when no such link exists.
func (r *AssemblyRepository) GetLink(ctx context.Context, tx *gorm.DB, aircraftID, componentID string) (*gormModels.AircraftComponent, error) {
	var link gormModels.AircraftComponent

	err := tx.WithContext(ctx).
		Where("aircraft_id = ? AND component_id = ?", aircraftID, componentID).
		First(&link).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch installation link: %w", err)
	}

	return &link, nil
}

// CategoryOccupied reports whether the aircraft already holds a component
// of the given category.
func (r *AssemblyRepository) CategoryOccupied(ctx context.Context, tx *gorm.DB, aircraftID string, category constants.ComponentCategory) (bool, error) {
	var count int64

	err := tx.WithContext(ctx).
		Model(&gormModels.AircraftComponent{}).
		Where("aircraft_id = ? AND category = ?", aircraftID, category).
		Count(&count).Error

	if err != nil {
		return false, fmt.Errorf("failed to check category slot: %w", err)
	}

	return count > 0, nil
}

func (r *AssemblyRepository) CreateLink(ctx context.Context, tx *gorm.DB, link *gormModels.AircraftComponent) error {
	if err := tx.WithContext(ctx).Create(link).Error; err != nil {
		return fmt.Errorf("failed to create installation link: %w", err)
	}
	return nil
}

func (r *AssemblyRepository) DeleteLink(ctx context.Context, tx *gorm.DB, linkID string) error {
	result := tx.WithContext(ctx).
		Where("id = ?", linkID).
		Delete(&gormModels.AircraftComponent{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete installation link: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("installation link not found with ID: %s", linkID)
	}

	return nil
}

// InstalledCategories returns the distinct categories currently linked into
// the aircraft. The production recompute is a pure function over this list.
func (r *AssemblyRepository) InstalledCategories(ctx context.Context, tx *gorm.DB, aircraftID string) ([]constants.ComponentCategory, error) {
	var categories []constants.ComponentCategory

	err := tx.WithContext(ctx).
		Model(&gormModels.AircraftComponent{}).
		Where("aircraft_id = ?", aircraftID).
		Distinct().
		Pluck("category", &categories).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list installed categories: %w", err)
	}

	return categories, nil
}

// CountLinksForComponent reports how many aircraft currently hold the
// component. Anything other than 0 or 1 means ledger drift.
func (r *AssemblyRepository) CountLinksForComponent(ctx context.Context, componentID string) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&gormModels.AircraftComponent{}).
		Where("component_id = ?", componentID).
		Count(&count).Error

	if err != nil {
		return 0, fmt.Errorf("failed to count component links: %w", err)
	}

	return count, nil
}
