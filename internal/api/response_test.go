package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"droneworks/hangar/internal/services"
)

func TestStatusForError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"aircraft not found", services.ErrAircraftNotFound, http.StatusNotFound},
		{"component not found", services.ErrComponentNotFound, http.StatusNotFound},
		{"link not found", services.ErrLinkNotFound, http.StatusNotFound},
		{"category occupied", services.ErrCategoryOccupied, http.StatusConflict},
		{"already installed", services.ErrComponentAlreadyInstalled, http.StatusConflict},
		{"component in use", services.ErrComponentInUse, http.StatusConflict},
		{"invalid model", services.ErrInvalidModel, http.StatusUnprocessableEntity},
		{"invalid category", services.ErrInvalidCategory, http.StatusUnprocessableEntity},
		{"model mismatch", services.ErrModelMismatch, http.StatusUnprocessableEntity},
		{"unassigned team", services.ErrUnassignedTeam, http.StatusForbidden},
		{"category mismatch", services.ErrCategoryMismatch, http.StatusForbidden},
		{"foreign component", services.ErrForeignComponent, http.StatusForbidden},
		{"unknown error", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := statusForError(tc.err); got != tc.want {
				t.Errorf("statusForError(%v) = %d, want %d", tc.err, got, tc.want)
			}
			// Services wrap sentinels with identifiers; the mapping must
			// survive the wrapping.
			wrapped := fmt.Errorf("%w: id abc-123", tc.err)
			if got := statusForError(wrapped); got != tc.want {
				t.Errorf("statusForError(wrapped %v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}
