package services

import (
	"context"
	"fmt"
	"time"

	"droneworks/hangar/internal/common"
	"droneworks/hangar/internal/constants"
	"droneworks/hangar/internal/db/repositories"
	gormModels "droneworks/hangar/internal/models/gorm"
)

const teamCacheTTL = 5 * time.Minute

// AuthorizationService is the team authorization gate: it resolves an
// acting identity to its team and decides whether that team may produce a
// requested category. The team→category table is injected at construction;
// there is no global mapping to mutate.
type AuthorizationService struct {
	teamCategories map[string]constants.ComponentCategory
	personnelRepo  *repositories.PersonnelRepository
	teamRepo       *repositories.TeamRepository
	cache          common.CacheInterface
}

func NewAuthorizationService(
	teamCategories map[string]constants.ComponentCategory,
	personnelRepo *repositories.PersonnelRepository,
	teamRepo *repositories.TeamRepository,
	cache common.CacheInterface,
) *AuthorizationService {
	return &AuthorizationService{
		teamCategories: teamCategories,
		personnelRepo:  personnelRepo,
		teamRepo:       teamRepo,
		cache:          cache,
	}
}

// CurrentTeam resolves the acting identity's team. Returns (nil, nil) when
// the identity exists but has no team assignment.
func (s *AuthorizationService) CurrentTeam(ctx context.Context, userID string) (*gormModels.Team, error) {
	cacheKey := "personnel_team:" + userID
	if val, found := s.cache.Get(cacheKey); found {
		if team, ok := val.(*gormModels.Team); ok {
			return team, nil
		}
	}

	person, err := s.personnelRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if person == nil || person.TeamID == nil {
		return nil, nil
	}

	team, err := s.teamRepo.GetByID(ctx, *person.TeamID)
	if err != nil {
		return nil, err
	}

	if team != nil {
		s.cache.Set(cacheKey, team, teamCacheTTL)
	}
	return team, nil
}

// AuthorizeCreation checks that the acting identity's team may manufacture
// the requested category. Pure check; no side effects.
func (s *AuthorizationService) AuthorizeCreation(ctx context.Context, userID string, category constants.ComponentCategory) (*gormModels.Team, error) {
	team, err := s.CurrentTeam(ctx, userID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, fmt.Errorf("%w: operator %s", ErrUnassignedTeam, userID)
	}

	allowed, produces := s.teamCategories[team.Name]
	if !produces || allowed != category {
		return nil, fmt.Errorf("%w: team %q cannot produce %s", ErrCategoryMismatch, team.Name, category)
	}

	return team, nil
}

// ProducedCategory reports the category a team manufactures, if any.
func (s *AuthorizationService) ProducedCategory(teamName string) (constants.ComponentCategory, bool) {
	category, ok := s.teamCategories[teamName]
	return category, ok
}
