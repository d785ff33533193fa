package api

import (
	"net/http"
	"time"

	"droneworks/hangar/internal/auth"
	"droneworks/hangar/internal/common"
	"droneworks/hangar/internal/constants"
	"droneworks/hangar/internal/db/repositories"
	"droneworks/hangar/internal/models/dtos"
	gormModels "droneworks/hangar/internal/models/gorm"
	"droneworks/hangar/internal/services"
)

// RegisterPersonnel handles POST /api/v1/auth/register
func RegisterPersonnel(regSvc *services.RegistrationService, authSvc *services.AuthorizationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		req, ok := common.DecodeAndValidate[dtos.RegisterPersonnelRequest](w, r, initTime)
		if !ok {
			return
		}

		person, team, err := regSvc.Register(r.Context(), req.Username, req.Password, req.TeamID)
		if err != nil {
			common.RespondError(w, initTime, err, "", http.StatusUnprocessableEntity)
			return
		}

		resp := dtos.PersonnelResponse{
			ID:       person.ID,
			Username: person.Username,
			Role:     person.Role,
			Team:     teamToResponse(team, authSvc),
		}
		common.RespondSuccess(w, initTime, constants.StatusRegistered, resp, http.StatusCreated)
	}
}

// Login handles POST /api/v1/auth/login
func Login(regSvc *services.RegistrationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		req, ok := common.DecodeAndValidate[dtos.LoginRequest](w, r, initTime)
		if !ok {
			return
		}

		token, expiresAt, err := regSvc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			common.RespondError(w, initTime, nil, constants.MsgInvalidCredentials, http.StatusUnauthorized)
			return
		}

		resp := dtos.LoginResponse{
			Token:     token,
			ExpiresAt: expiresAt,
		}
		common.RespondSuccess(w, initTime, "", resp)
	}
}

// ListPersonnel handles GET /api/v1/personnel. Staff only: the roster
// exposes team assignments across all crews.
func ListPersonnel(personnelRepo *repositories.PersonnelRepository, teamRepo *repositories.TeamRepository, authSvc *services.AuthorizationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		personnel, err := personnelRepo.GetAll(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "")
			return
		}

		teams, err := teamRepo.GetAll(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "")
			return
		}
		teamsByID := make(map[string]*gormModels.Team, len(teams))
		for i := range teams {
			teamsByID[teams[i].ID] = &teams[i]
		}

		resp := make([]dtos.PersonnelResponse, 0, len(personnel))
		for _, person := range personnel {
			entry := dtos.PersonnelResponse{
				ID:       person.ID,
				Username: person.Username,
				Role:     person.Role,
			}
			if person.TeamID != nil {
				entry.Team = teamToResponse(teamsByID[*person.TeamID], authSvc)
			}
			resp = append(resp, entry)
		}

		common.RespondSuccess(w, initTime, "", resp)
	}
}

// GetUserDetails handles GET /api/v1/user/details
func GetUserDetails(authSvc *services.AuthorizationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())

		resp := dtos.PersonnelResponse{
			ID:       claims.UserID(),
			Username: claims.Username(),
			Role:     claims.Role(),
		}

		if claims.TeamID() != "" {
			team := &dtos.TeamResponse{
				ID:   claims.TeamID(),
				Name: claims.TeamName(),
			}
			if category, ok := authSvc.ProducedCategory(claims.TeamName()); ok {
				team.ProducesCategory = category.String()
			}
			resp.Team = team
		}

		common.RespondSuccess(w, initTime, "", resp)
	}
}
