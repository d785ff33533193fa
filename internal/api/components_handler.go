package api

import (
	"net/http"
	"time"

	"droneworks/hangar/internal/auth"
	"droneworks/hangar/internal/common"
	"droneworks/hangar/internal/constants"
	"droneworks/hangar/internal/models/dtos"
	"droneworks/hangar/internal/services"
)

// CreateComponent handles POST /api/v1/components. The category must match
// the operator's team assignment; the gate rejects everything else before
// any row is written.
func CreateComponent(componentSvc *services.ComponentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		req, ok := common.DecodeAndValidate[dtos.CreateComponentRequest](w, r, initTime)
		if !ok {
			return
		}

		claims := auth.GetUserClaims(r.Context())

		component, err := componentSvc.Create(
			r.Context(),
			claims.UserID(),
			constants.ComponentCategory(req.Category),
			constants.AircraftModel(req.AircraftModel),
		)
		if err != nil {
			common.RespondError(w, initTime, err, "", statusForError(err))
			return
		}

		resp := toComponentResponse(component)
		common.RespondSuccess(w, initTime, constants.StatusCreated, resp, http.StatusCreated)
	}
}

// ListAvailableComponents handles GET /api/v1/components/available.
// Optional query params: category, model. The response is a snapshot;
// clients re-query after mutations.
func ListAvailableComponents(componentSvc *services.ComponentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		category := constants.ComponentCategory(r.URL.Query().Get("category"))
		model := constants.AircraftModel(r.URL.Query().Get("model"))

		components, err := componentSvc.ListAvailable(r.Context(), category, model)
		if err != nil {
			common.RespondError(w, initTime, err, "", statusForError(err))
			return
		}

		resp := make([]dtos.ComponentResponse, 0, len(components))
		for i := range components {
			resp = append(resp, toComponentResponse(&components[i]))
		}

		common.RespondSuccess(w, initTime, "", resp)
	}
}

// RecycleComponents handles POST /api/v1/components/recycle. The batch is
// atomic: any installed or foreign component rejects the whole set.
func RecycleComponents(recycleSvc *services.RecycleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		req, ok := common.DecodeAndValidate[dtos.RecycleComponentsRequest](w, r, initTime)
		if !ok {
			return
		}

		claims := auth.GetUserClaims(r.Context())

		destroyed, err := recycleSvc.Recycle(r.Context(), req.ComponentIDs, claims.UserID())
		if err != nil {
			common.RespondError(w, initTime, err, "", statusForError(err))
			return
		}

		resp := dtos.RecycleResponse{
			Destroyed: int(destroyed),
			IDs:       req.ComponentIDs,
		}
		common.RespondSuccess(w, initTime, constants.StatusRecycled, resp)
	}
}
