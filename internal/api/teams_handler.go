package api

import (
	"net/http"
	"time"

	"droneworks/hangar/internal/common"
	"droneworks/hangar/internal/db/repositories"
	"droneworks/hangar/internal/models/dtos"
	gormModels "droneworks/hangar/internal/models/gorm"
	"droneworks/hangar/internal/services"
)

// ListTeams handles GET /api/v1/teams
func ListTeams(teamRepo *repositories.TeamRepository, authSvc *services.AuthorizationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		teams, err := teamRepo.GetAll(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "")
			return
		}

		resp := make([]dtos.TeamResponse, 0, len(teams))
		for i := range teams {
			resp = append(resp, *teamToResponse(&teams[i], authSvc))
		}

		common.RespondSuccess(w, initTime, "", resp)
	}
}

func teamToResponse(team *gormModels.Team, authSvc *services.AuthorizationService) *dtos.TeamResponse {
	if team == nil {
		return nil
	}

	resp := &dtos.TeamResponse{
		ID:          team.ID,
		Name:        team.Name,
		Description: team.Description,
	}
	if category, ok := authSvc.ProducedCategory(team.Name); ok {
		resp.ProducesCategory = category.String()
	}
	return resp
}
