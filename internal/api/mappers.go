package api

import (
	"droneworks/hangar/internal/models/dtos"
	gormModels "droneworks/hangar/internal/models/gorm"
)

func toComponentResponse(c *gormModels.Component) dtos.ComponentResponse {
	return dtos.ComponentResponse{
		ID:            c.ID,
		Category:      c.Category.String(),
		AircraftModel: c.AircraftModel.String(),
		IsUsed:        c.IsUsed,
		TeamID:        c.TeamID,
		CreatedAt:     c.CreatedAt,
	}
}

func toAircraftResponse(a *gormModels.Aircraft) dtos.AircraftResponse {
	return dtos.AircraftResponse{
		ID:           a.ID,
		Model:        a.Model.String(),
		SerialNumber: a.SerialNumber,
		IsProduced:   a.IsProduced,
		CreatedAt:    a.CreatedAt,
	}
}
