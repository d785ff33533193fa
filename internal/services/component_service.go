package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"droneworks/hangar/internal/constants"
	"droneworks/hangar/internal/db/repositories"
	"droneworks/hangar/internal/logging"
	"droneworks/hangar/internal/metrics"
	gormModels "droneworks/hangar/internal/models/gorm"
)

// ComponentService owns the component catalog: authorized creation and the
// available-inventory snapshot. Usage flips happen only through the
// assembly service.
type ComponentService struct {
	authSvc       *AuthorizationService
	componentRepo *repositories.ComponentRepository
	metricsReg    *metrics.MetricsRegistry
}

func NewComponentService(
	authSvc *AuthorizationService,
	componentRepo *repositories.ComponentRepository,
	metricsReg *metrics.MetricsRegistry,
) *ComponentService {
	return &ComponentService{
		authSvc:       authSvc,
		componentRepo: componentRepo,
		metricsReg:    metricsReg,
	}
}

// Create registers a new component in AVAILABLE state. The authorization
// gate runs first; a rejected request never touches the database.
func (s *ComponentService) Create(ctx context.Context, userID string, category constants.ComponentCategory, model constants.AircraftModel) (*gormModels.Component, error) {
	if !category.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}
	if !model.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidModel, model)
	}

	team, err := s.authSvc.AuthorizeCreation(ctx, userID, category)
	if err != nil {
		return nil, err
	}

	component := &gormModels.Component{
		ID:            uuid.New().String(),
		Category:      category,
		AircraftModel: model,
		IsUsed:        false,
		TeamID:        team.ID,
	}

	if err := s.componentRepo.Create(ctx, component); err != nil {
		return nil, err
	}

	if s.metricsReg != nil {
		s.metricsReg.ComponentsCreatedTotal.WithLabelValues(category.String()).Inc()
	}
	logging.Info("Component registered",
		"component_id", component.ID,
		"category", category.String(),
		"model", model.String(),
		"team", team.Name,
	)

	return component, nil
}

// ListAvailable returns a point-in-time snapshot of unreserved components.
// Callers must re-query after any mutating call; the snapshot is not a
// live view.
func (s *ComponentService) ListAvailable(ctx context.Context, category constants.ComponentCategory, model constants.AircraftModel) ([]gormModels.Component, error) {
	if category != "" && !category.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}
	if model != "" && !model.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidModel, model)
	}

	return s.componentRepo.ListAvailable(ctx, repositories.ComponentFilter{
		Category:      category,
		AircraftModel: model,
	})
}

// Get fetches one component.
func (s *ComponentService) Get(ctx context.Context, componentID string) (*gormModels.Component, error) {
	component, err := s.componentRepo.GetByID(ctx, componentID)
	if err != nil {
		return nil, err
	}
	if component == nil {
		return nil, fmt.Errorf("%w: component %s", ErrComponentNotFound, componentID)
	}
	return component, nil
}
