package db

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"droneworks/hangar/internal/constants"
	gormModels "droneworks/hangar/internal/models/gorm"
)

var PgDB *gorm.DB

func InitPostgresORM(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	PgDB = db
	log.Println("Connected to Postgres via GORM")
	return db, nil
}

// Migrate creates the schema and seeds the five predefined teams.
// Idempotent: existing teams are left untouched.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&gormModels.Team{},
		&gormModels.Personnel{},
		&gormModels.Component{},
		&gormModels.Aircraft{},
		&gormModels.AircraftComponent{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	teams := []string{
		constants.TeamWing,
		constants.TeamBody,
		constants.TeamTail,
		constants.TeamAvionics,
		constants.TeamAssembly,
	}
	for _, name := range teams {
		var count int64
		if err := db.Model(&gormModels.Team{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return fmt.Errorf("seed teams: %w", err)
		}
		if count == 0 {
			team := gormModels.Team{ID: uuid.New().String(), Name: name}
			if err := db.Create(&team).Error; err != nil {
				return fmt.Errorf("seed team %s: %w", name, err)
			}
		}
	}
	return nil
}
