package gorm

import (
	"time"

	"droneworks/hangar/internal/constants"
)

// Component is a single manufactured part. Category and aircraft model are
// fixed at creation; is_used flips only through the assembly ledger so the
// flag can never drift from the installation links.
type Component struct {
	ID            string                      `gorm:"column:id;primaryKey;type:uuid"`
	Category      constants.ComponentCategory `gorm:"column:category;index"`
	AircraftModel constants.AircraftModel     `gorm:"column:aircraft_model;index"`
	IsUsed        bool                        `gorm:"column:is_used;default:false"`
	TeamID        string                      `gorm:"column:team_id;type:uuid;index"`
	CreatedAt     time.Time                   `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Component) TableName() string {
	return "components"
}
