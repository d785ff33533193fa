package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"droneworks/hangar/internal/common"
	"droneworks/hangar/internal/constants"
	"droneworks/hangar/internal/db/repositories"
	"droneworks/hangar/internal/logging"
	gormModels "droneworks/hangar/internal/models/gorm"
)

const loginTokenTTL = 12 * time.Hour

var ErrInvalidCredentials = errors.New("invalid username or password")

// RegistrationService creates personnel records and handles logins. Token
// validation stays in the middleware; only issuance lives here.
type RegistrationService struct {
	personnelRepo *repositories.PersonnelRepository
	teamRepo      *repositories.TeamRepository
	tokenSvc      *common.TokenService
}

func NewRegistrationService(
	personnelRepo *repositories.PersonnelRepository,
	teamRepo *repositories.TeamRepository,
	tokenSvc *common.TokenService,
) *RegistrationService {
	return &RegistrationService{
		personnelRepo: personnelRepo,
		teamRepo:      teamRepo,
		tokenSvc:      tokenSvc,
	}
}

// Register creates a personnel record bound to an existing team.
func (s *RegistrationService) Register(ctx context.Context, username, password, teamID string) (*gormModels.Personnel, *gormModels.Team, error) {
	existing, err := s.personnelRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		return nil, nil, fmt.Errorf("username %q already registered", username)
	}

	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, nil, err
	}
	if team == nil {
		return nil, nil, fmt.Errorf("team not found with ID: %s", teamID)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	person := &gormModels.Personnel{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		TeamID:       &team.ID,
		Role:         constants.RoleTechnician,
		IsActive:     true,
	}

	if err := s.personnelRepo.Create(ctx, person); err != nil {
		return nil, nil, err
	}

	logging.Info("Personnel registered",
		"username", username,
		"team", team.Name,
	)

	return person, team, nil
}

// Login verifies credentials and issues a signed token carrying the
// personnel's team claims.
func (s *RegistrationService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	person, err := s.personnelRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", time.Time{}, err
	}
	if person == nil || !person.IsActive {
		return "", time.Time{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(person.PasswordHash), []byte(password)); err != nil {
		return "", time.Time{}, ErrInvalidCredentials
	}

	teamID := ""
	teamName := ""
	if person.TeamID != nil {
		teamID = *person.TeamID
		if team, err := s.teamRepo.GetByID(ctx, teamID); err == nil && team != nil {
			teamName = team.Name
		}
	}

	return s.tokenSvc.Issue(person.ID, person.Username, teamID, teamName, person.Role, loginTokenTTL)
}
