package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"droneworks/hangar/internal/common"
	"droneworks/hangar/internal/constants"
	"droneworks/hangar/internal/models/dtos"
	"droneworks/hangar/internal/services"
)

// CreateAircraft handles POST /api/v1/aircraft
func CreateAircraft(aircraftSvc *services.AircraftService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		req, ok := common.DecodeAndValidate[dtos.CreateAircraftRequest](w, r, initTime)
		if !ok {
			return
		}

		aircraft, err := aircraftSvc.Create(r.Context(), constants.AircraftModel(req.Model), req.SerialNumber)
		if err != nil {
			common.RespondError(w, initTime, err, "", statusForError(err))
			return
		}

		common.RespondSuccess(w, initTime, constants.StatusAircraftAdded, toAircraftResponse(aircraft), http.StatusCreated)
	}
}

// ListAircraft handles GET /api/v1/aircraft
func ListAircraft(aircraftSvc *services.AircraftService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		aircraft, err := aircraftSvc.List(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "", statusForError(err))
			return
		}

		resp := make([]dtos.AircraftResponse, 0, len(aircraft))
		for i := range aircraft {
			resp = append(resp, toAircraftResponse(&aircraft[i]))
		}

		common.RespondSuccess(w, initTime, "", resp)
	}
}

// GetAircraft handles GET /api/v1/aircraft/{aircraft_id}
func GetAircraft(aircraftSvc *services.AircraftService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		aircraftID := chi.URLParam(r, "aircraft_id")

		aircraft, err := aircraftSvc.Get(r.Context(), aircraftID)
		if err != nil {
			common.RespondError(w, initTime, err, "", statusForError(err))
			return
		}

		common.RespondSuccess(w, initTime, "", toAircraftResponse(aircraft))
	}
}

// CheckAircraftParts handles GET /api/v1/aircraft/{aircraft_id}/parts and
// reports which categories are still missing from the airframe.
func CheckAircraftParts(assemblySvc *services.AssemblyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		aircraftID := chi.URLParam(r, "aircraft_id")

		missing, err := assemblySvc.MissingCategories(r.Context(), aircraftID)
		if err != nil {
			common.RespondError(w, initTime, err, "", statusForError(err))
			return
		}

		names := make([]string, 0, len(missing))
		for _, c := range missing {
			names = append(names, c.String())
		}

		resp := dtos.MissingPartsResponse{
			AircraftID: aircraftID,
			Missing:    names,
			Complete:   len(names) == 0,
		}
		common.RespondSuccess(w, initTime, "", resp)
	}
}
