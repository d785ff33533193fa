package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	gormModels "droneworks/hangar/internal/models/gorm"
)

// TeamRepository handles team table operations using GORM
type TeamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// GetByID retrieves a team by its ID. Returns (nil, nil) when absent.
func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (*gormModels.Team, error) {
	var team gormModels.Team

	err := r.db.WithContext(ctx).
		Where("id = ?", teamID).
		First(&team).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch team: %w", err)
	}

	return &team, nil
}

func (r *TeamRepository) GetByName(ctx context.Context, name string) (*gormModels.Team, error) {
	var team gormModels.Team

	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&team).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch team: %w", err)
	}

	return &team, nil
}

func (r *TeamRepository) GetAll(ctx context.Context) ([]gormModels.Team, error) {
	var teams []gormModels.Team

	err := r.db.WithContext(ctx).
		Order("name").
		Find(&teams).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch teams: %w", err)
	}

	return teams, nil
}
