package gorm

// Team is a production (or assembly) crew. The category a team may
// manufacture is not stored here: it comes from the static table handed to
// the authorization gate, so the DB cannot drift from the rules.
type Team struct {
	ID          string `gorm:"column:id;primaryKey;type:uuid"`
	Name        string `gorm:"column:name;uniqueIndex"`
	Description string `gorm:"column:description"`

	// Relationships
	Personnel []Personnel `gorm:"foreignKey:TeamID"`
}

// TableName specifies the table name for GORM
func (Team) TableName() string {
	return "teams"
}
