package gorm

import (
	"time"

	"droneworks/hangar/internal/constants"
)

// Aircraft is one airframe on the assembly line. IsProduced is recomputed
// by the assembly ledger whenever its links change; it is never written
// directly by a handler.
type Aircraft struct {
	ID           string                  `gorm:"column:id;primaryKey;type:uuid"`
	Model        constants.AircraftModel `gorm:"column:model"`
	SerialNumber string                  `gorm:"column:serial_number;uniqueIndex"`
	IsProduced   bool                    `gorm:"column:is_produced;default:false"`
	CreatedAt    time.Time               `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Aircraft) TableName() string {
	return "aircraft"
}
