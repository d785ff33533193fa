package gorm

import (
	"time"

	"droneworks/hangar/internal/constants"
)

// AircraftComponent links one component into one aircraft. Two uniqueness
// rules back the ledger invariants at the storage layer:
//   - component_id is unique: a component sits in at most one aircraft
//   - (aircraft_id, category) is unique: one slot per category per aircraft
type AircraftComponent struct {
	ID          string                      `gorm:"column:id;primaryKey;type:uuid"`
	AircraftID  string                      `gorm:"column:aircraft_id;type:uuid;uniqueIndex:idx_aircraft_category"`
	ComponentID string                      `gorm:"column:component_id;type:uuid;uniqueIndex"`
	Category    constants.ComponentCategory `gorm:"column:category;uniqueIndex:idx_aircraft_category"`
	InstalledAt time.Time                   `gorm:"column:installed_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (AircraftComponent) TableName() string {
	return "aircraft_components"
}
