package constants

import (
	"database/sql/driver"
	"fmt"
)

// ComponentCategory mirrors the Postgres ENUM 'component_category'
type ComponentCategory string

const (
	CategoryWing     ComponentCategory = "WING"
	CategoryBody     ComponentCategory = "BODY"
	CategoryTail     ComponentCategory = "TAIL"
	CategoryAvionics ComponentCategory = "AVIONICS"
)

// RequiredCategories lists every category an aircraft needs before it
// counts as produced. A UAV physically has two wings, but the assembly
// sheet tracks WING as a single slot.
var RequiredCategories = []ComponentCategory{
	CategoryWing,
	CategoryBody,
	CategoryTail,
	CategoryAvionics,
}

// Stringer ­– convenient for fmt / logs
func (c ComponentCategory) String() string { return string(c) }

// IsValid reports whether the value is one of the closed category set.
func (c ComponentCategory) IsValid() bool {
	switch c {
	case CategoryWing, CategoryBody, CategoryTail, CategoryAvionics:
		return true
	}
	return false
}

/* ---------- DB adapters so sqlx (or database/sql) scans/values cleanly ---------- */

// Scan implements the sql.Scanner interface
func (c *ComponentCategory) Scan(src interface{}) error {
	if src == nil {
		*c = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*c = ComponentCategory(v)
	case []byte:
		*c = ComponentCategory(v)
	default:
		return fmt.Errorf("ComponentCategory: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (c ComponentCategory) Value() (driver.Value, error) { return string(c), nil }
