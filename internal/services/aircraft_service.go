package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"droneworks/hangar/internal/constants"
	"droneworks/hangar/internal/db/repositories"
	"droneworks/hangar/internal/logging"
	gormModels "droneworks/hangar/internal/models/gorm"
)

// AircraftService manages the airframes themselves; assembly state lives
// in the ledger.
type AircraftService struct {
	aircraftRepo *repositories.AircraftRepository
}

func NewAircraftService(aircraftRepo *repositories.AircraftRepository) *AircraftService {
	return &AircraftService{aircraftRepo: aircraftRepo}
}

// Create adds a new airframe to the line. A missing serial number gets a
// generated UUID; a supplied one must be unique across all aircraft.
func (s *AircraftService) Create(ctx context.Context, model constants.AircraftModel, serialNumber string) (*gormModels.Aircraft, error) {
	if !model.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidModel, model)
	}

	if serialNumber == "" {
		serialNumber = uuid.New().String()
	} else {
		existing, err := s.aircraftRepo.GetBySerialNumber(ctx, serialNumber)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("serial number %q already in use", serialNumber)
		}
	}

	aircraft := &gormModels.Aircraft{
		ID:           uuid.New().String(),
		Model:        model,
		SerialNumber: serialNumber,
		IsProduced:   false,
	}

	if err := s.aircraftRepo.Create(ctx, aircraft); err != nil {
		return nil, err
	}

	logging.Info("Aircraft added",
		"aircraft_id", aircraft.ID,
		"model", model.String(),
		"serial_number", serialNumber,
	)

	return aircraft, nil
}

func (s *AircraftService) Get(ctx context.Context, aircraftID string) (*gormModels.Aircraft, error) {
	aircraft, err := s.aircraftRepo.GetByID(ctx, aircraftID)
	if err != nil {
		return nil, err
	}
	if aircraft == nil {
		return nil, fmt.Errorf("%w: aircraft %s", ErrAircraftNotFound, aircraftID)
	}
	return aircraft, nil
}

func (s *AircraftService) List(ctx context.Context) ([]gormModels.Aircraft, error) {
	return s.aircraftRepo.GetAll(ctx)
}
