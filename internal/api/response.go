package api

import (
	"errors"
	"net/http"

	"droneworks/hangar/internal/services"
)

// statusForError maps domain sentinel errors onto distinct HTTP statuses
// so clients can branch on the error kind end-to-end: missing entities are
// 404, state conflicts 409, validation failures 422, authorization 403.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrAircraftNotFound),
		errors.Is(err, services.ErrComponentNotFound),
		errors.Is(err, services.ErrLinkNotFound):
		return http.StatusNotFound

	case errors.Is(err, services.ErrCategoryOccupied),
		errors.Is(err, services.ErrComponentAlreadyInstalled),
		errors.Is(err, services.ErrComponentInUse):
		return http.StatusConflict

	case errors.Is(err, services.ErrInvalidModel),
		errors.Is(err, services.ErrInvalidCategory),
		errors.Is(err, services.ErrModelMismatch):
		return http.StatusUnprocessableEntity

	case errors.Is(err, services.ErrUnassignedTeam),
		errors.Is(err, services.ErrCategoryMismatch),
		errors.Is(err, services.ErrForeignComponent):
		return http.StatusForbidden

	default:
		return http.StatusInternalServerError
	}
}
