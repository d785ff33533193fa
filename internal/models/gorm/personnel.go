package gorm

import "time"

// Personnel maps an authenticated identity to its team. TeamID is nullable:
// a registered user without a crew exists but cannot produce anything.
type Personnel struct {
	ID           string    `gorm:"column:id;primaryKey;type:uuid"`
	Username     string    `gorm:"column:username;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash"`
	TeamID       *string   `gorm:"column:team_id;type:uuid;index"`
	Role         string    `gorm:"column:role"`
	IsActive     bool      `gorm:"column:is_active;default:true"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Personnel) TableName() string {
	return "personnel"
}
