package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"droneworks/hangar/internal/db/repositories"
	"droneworks/hangar/internal/logging"
	"droneworks/hangar/internal/metrics"
)

// RecycleService destroys batches of unused components. The batch is
// all-or-nothing: one foreign or installed component rejects the whole set
// and nothing is deleted.
type RecycleService struct {
	db            *gorm.DB
	authSvc       *AuthorizationService
	componentRepo *repositories.ComponentRepository
	locks         *LockRegistry
	metricsReg    *metrics.MetricsRegistry
}

func NewRecycleService(
	db *gorm.DB,
	authSvc *AuthorizationService,
	componentRepo *repositories.ComponentRepository,
	locks *LockRegistry,
	metricsReg *metrics.MetricsRegistry,
) *RecycleService {
	return &RecycleService{
		db:            db,
		authSvc:       authSvc,
		componentRepo: componentRepo,
		locks:         locks,
		metricsReg:    metricsReg,
	}
}

// Recycle permanently destroys the listed components. Every id must exist,
// belong to the acting identity's team, and be unreserved at the moment of
// deletion; the locks held over the exact id set keep a concurrent install
// from reserving one mid-batch.
func (s *RecycleService) Recycle(ctx context.Context, componentIDs []string, userID string) (int64, error) {
	team, err := s.authSvc.CurrentTeam(ctx, userID)
	if err != nil {
		return 0, err
	}
	if team == nil {
		return 0, fmt.Errorf("%w: operator %s", ErrUnassignedTeam, userID)
	}

	release := s.locks.Acquire(componentIDs...)
	defer release()

	var destroyed int64

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		components, err := s.componentRepo.GetByIDs(ctx, componentIDs)
		if err != nil {
			return err
		}

		found := make(map[string]bool, len(components))
		for _, c := range components {
			found[c.ID] = true
		}
		for _, id := range componentIDs {
			if !found[id] {
				return fmt.Errorf("%w: component %s", ErrForeignComponent, id)
			}
		}

		for _, c := range components {
			if c.TeamID != team.ID {
				return fmt.Errorf("%w: component %s", ErrForeignComponent, c.ID)
			}
			if c.IsUsed {
				return fmt.Errorf("%w: component %s", ErrComponentInUse, c.ID)
			}
		}

		destroyed, err = s.componentRepo.DeleteBatch(ctx, tx, componentIDs)
		return err
	})

	if err != nil {
		return 0, err
	}

	if s.metricsReg != nil {
		s.metricsReg.ComponentsRecycledTotal.Add(float64(destroyed))
	}
	logging.Info("Components recycled",
		"count", destroyed,
		"team", team.Name,
	)

	return destroyed, nil
}
