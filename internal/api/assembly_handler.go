package api

import (
	"net/http"
	"time"

	"droneworks/hangar/internal/common"
	"droneworks/hangar/internal/constants"
	"droneworks/hangar/internal/models/dtos"
	"droneworks/hangar/internal/services"
)

// InstallComponent handles POST /api/v1/assembly/install. The response
// carries the updated aircraft and component snapshots so the client does
// not re-fetch after the mutation.
func InstallComponent(assemblySvc *services.AssemblyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		req, ok := common.DecodeAndValidate[dtos.InstallComponentRequest](w, r, initTime)
		if !ok {
			return
		}

		aircraft, component, err := assemblySvc.Install(r.Context(), req.AircraftID, req.ComponentID)
		if err != nil {
			common.RespondError(w, initTime, err, "", statusForError(err))
			return
		}

		resp := dtos.InstallResponse{
			Aircraft:  toAircraftResponse(aircraft),
			Component: toComponentResponse(component),
		}
		common.RespondSuccess(w, initTime, constants.StatusInstalled, resp)
	}
}

// UninstallComponent handles POST /api/v1/assembly/uninstall
func UninstallComponent(assemblySvc *services.AssemblyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		req, ok := common.DecodeAndValidate[dtos.UninstallComponentRequest](w, r, initTime)
		if !ok {
			return
		}

		aircraft, component, err := assemblySvc.Uninstall(r.Context(), req.AircraftID, req.ComponentID)
		if err != nil {
			common.RespondError(w, initTime, err, "", statusForError(err))
			return
		}

		resp := dtos.InstallResponse{
			Aircraft:  toAircraftResponse(aircraft),
			Component: toComponentResponse(component),
		}
		common.RespondSuccess(w, initTime, constants.StatusUninstalled, resp)
	}
}
