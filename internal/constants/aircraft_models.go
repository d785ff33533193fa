package constants

import (
	"database/sql/driver"
	"fmt"
)

// AircraftModel mirrors the Postgres ENUM 'aircraft_model'
type AircraftModel string

const (
	ModelTB2       AircraftModel = "TB2"
	ModelTB3       AircraftModel = "TB3"
	ModelAkinci    AircraftModel = "AKINCI"
	ModelKizilelma AircraftModel = "KIZILELMA"
)

func (m AircraftModel) String() string { return string(m) }

// IsValid reports whether the value is one of the closed model set.
// Caller-supplied model strings are rejected at the boundary instead of
// trusted into the database.
func (m AircraftModel) IsValid() bool {
	switch m {
	case ModelTB2, ModelTB3, ModelAkinci, ModelKizilelma:
		return true
	}
	return false
}

// Scan implements the sql.Scanner interface
func (m *AircraftModel) Scan(src interface{}) error {
	if src == nil {
		*m = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*m = AircraftModel(v)
	case []byte:
		*m = AircraftModel(v)
	default:
		return fmt.Errorf("AircraftModel: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (m AircraftModel) Value() (driver.Value, error) { return string(m), nil }
