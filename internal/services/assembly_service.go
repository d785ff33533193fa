package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"droneworks/hangar/internal/constants"
	"droneworks/hangar/internal/db/repositories"
	"droneworks/hangar/internal/logging"
	"droneworks/hangar/internal/metrics"
	gormModels "droneworks/hangar/internal/models/gorm"
)

// AssemblyService is the installation ledger. It owns the links between
// aircraft and components and is the single writer of component usage and
// aircraft production state, so the three can never drift apart.
//
// Install and Uninstall run their whole check-then-mutate sequence inside
// one transaction while holding the keyed locks for the aircraft and the
// component. Two installs racing for the same category slot, or for the
// same component from two aircraft, serialize on those locks: exactly one
// wins, the other observes the occupied state and gets the conflict error.
type AssemblyService struct {
	db            *gorm.DB
	aircraftRepo  *repositories.AircraftRepository
	componentRepo *repositories.ComponentRepository
	assemblyRepo  *repositories.AssemblyRepository
	locks         *LockRegistry
	metricsReg    *metrics.MetricsRegistry
}

func NewAssemblyService(
	db *gorm.DB,
	aircraftRepo *repositories.AircraftRepository,
	componentRepo *repositories.ComponentRepository,
	assemblyRepo *repositories.AssemblyRepository,
	locks *LockRegistry,
	metricsReg *metrics.MetricsRegistry,
) *AssemblyService {
	return &AssemblyService{
		db:            db,
		aircraftRepo:  aircraftRepo,
		componentRepo: componentRepo,
		assemblyRepo:  assemblyRepo,
		locks:         locks,
		metricsReg:    metricsReg,
	}
}

// Install links a component into an aircraft and returns the updated
// snapshots, so callers never need a second read to see the new state.
func (s *AssemblyService) Install(ctx context.Context, aircraftID, componentID string) (*gormModels.Aircraft, *gormModels.Component, error) {
	release := s.locks.Acquire(aircraftID, componentID)
	defer release()

	var aircraft gormModels.Aircraft
	var component gormModels.Component

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", aircraftID).First(&aircraft).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fmt.Errorf("%w: aircraft %s", ErrAircraftNotFound, aircraftID)
			}
			return fmt.Errorf("failed to fetch aircraft: %w", err)
		}

		if err := tx.Where("id = ?", componentID).First(&component).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fmt.Errorf("%w: component %s", ErrComponentNotFound, componentID)
			}
			return fmt.Errorf("failed to fetch component: %w", err)
		}

		if component.AircraftModel != aircraft.Model {
			s.countConflict("model_mismatch")
			return fmt.Errorf("%w: component %s is for %s, aircraft %s is %s",
				ErrModelMismatch, componentID, component.AircraftModel, aircraftID, aircraft.Model)
		}

		occupied, err := s.assemblyRepo.CategoryOccupied(ctx, tx, aircraftID, component.Category)
		if err != nil {
			return err
		}
		if occupied {
			s.countConflict("category_occupied")
			return fmt.Errorf("%w: aircraft %s, category %s", ErrCategoryOccupied, aircraftID, component.Category)
		}

		// Guards against the component sitting in a different aircraft.
		if component.IsUsed {
			s.countConflict("component_installed")
			return fmt.Errorf("%w: component %s", ErrComponentAlreadyInstalled, componentID)
		}

		link := &gormModels.AircraftComponent{
			ID:          uuid.New().String(),
			AircraftID:  aircraftID,
			ComponentID: componentID,
			Category:    component.Category,
		}
		if err := s.assemblyRepo.CreateLink(ctx, tx, link); err != nil {
			return err
		}

		if err := s.componentRepo.SetUsage(ctx, tx, componentID, true); err != nil {
			return err
		}
		component.IsUsed = true

		produced, err := s.recomputeProduced(ctx, tx, aircraftID)
		if err != nil {
			return err
		}
		if produced != aircraft.IsProduced {
			if err := s.aircraftRepo.SetProduced(ctx, tx, aircraftID, produced); err != nil {
				return err
			}
			aircraft.IsProduced = produced
		}

		return nil
	})

	if err != nil {
		return nil, nil, err
	}

	if s.metricsReg != nil {
		s.metricsReg.InstallsTotal.WithLabelValues(aircraft.Model.String()).Inc()
		if aircraft.IsProduced {
			s.metricsReg.AircraftProducedTotal.WithLabelValues(aircraft.Model.String()).Inc()
		}
	}
	logging.Info("Component installed",
		"aircraft_id", aircraftID,
		"component_id", componentID,
		"category", component.Category.String(),
		"is_produced", aircraft.IsProduced,
	)

	return &aircraft, &component, nil
}

// Uninstall removes the link and releases the component back to the
// available pool. The aircraft is necessarily unproduced afterwards.
func (s *AssemblyService) Uninstall(ctx context.Context, aircraftID, componentID string) (*gormModels.Aircraft, *gormModels.Component, error) {
	release := s.locks.Acquire(aircraftID, componentID)
	defer release()

	var aircraft gormModels.Aircraft
	var component gormModels.Component

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		link, err := s.assemblyRepo.GetLink(ctx, tx, aircraftID, componentID)
		if err != nil {
			return err
		}
		if link == nil {
			return fmt.Errorf("%w: aircraft %s, component %s", ErrLinkNotFound, aircraftID, componentID)
		}

		if err := s.assemblyRepo.DeleteLink(ctx, tx, link.ID); err != nil {
			return err
		}

		if err := s.componentRepo.SetUsage(ctx, tx, componentID, false); err != nil {
			return err
		}

		// A required category is now missing.
		if err := s.aircraftRepo.SetProduced(ctx, tx, aircraftID, false); err != nil {
			return err
		}

		if err := tx.Where("id = ?", aircraftID).First(&aircraft).Error; err != nil {
			return fmt.Errorf("failed to fetch aircraft: %w", err)
		}
		if err := tx.Where("id = ?", componentID).First(&component).Error; err != nil {
			return fmt.Errorf("failed to fetch component: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, nil, err
	}

	if s.metricsReg != nil {
		s.metricsReg.UninstallsTotal.Inc()
	}
	logging.Info("Component removed",
		"aircraft_id", aircraftID,
		"component_id", componentID,
	)

	return &aircraft, &component, nil
}

// MissingCategories reports which required categories the aircraft still
// lacks. Empty slice means the airframe is complete.
func (s *AssemblyService) MissingCategories(ctx context.Context, aircraftID string) ([]constants.ComponentCategory, error) {
	aircraft, err := s.aircraftRepo.GetByID(ctx, aircraftID)
	if err != nil {
		return nil, err
	}
	if aircraft == nil {
		return nil, fmt.Errorf("%w: aircraft %s", ErrAircraftNotFound, aircraftID)
	}

	installed, err := s.assemblyRepo.InstalledCategories(ctx, s.db, aircraftID)
	if err != nil {
		return nil, err
	}

	have := make(map[constants.ComponentCategory]bool, len(installed))
	for _, c := range installed {
		have[c] = true
	}

	missing := make([]constants.ComponentCategory, 0, len(constants.RequiredCategories))
	for _, c := range constants.RequiredCategories {
		if !have[c] {
			missing = append(missing, c)
		}
	}
	return missing, nil
}

// recomputeProduced derives the production flag from current links only.
func (s *AssemblyService) recomputeProduced(ctx context.Context, tx *gorm.DB, aircraftID string) (bool, error) {
	installed, err := s.assemblyRepo.InstalledCategories(ctx, tx, aircraftID)
	if err != nil {
		return false, err
	}

	if len(installed) != len(constants.RequiredCategories) {
		return false, nil
	}

	have := make(map[constants.ComponentCategory]bool, len(installed))
	for _, c := range installed {
		have[c] = true
	}
	for _, c := range constants.RequiredCategories {
		if !have[c] {
			return false, nil
		}
	}
	return true, nil
}

func (s *AssemblyService) countConflict(kind string) {
	if s.metricsReg != nil {
		s.metricsReg.InstallConflictsTotal.WithLabelValues(kind).Inc()
	}
}
