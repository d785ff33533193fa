package services

import (
	"context"
	"errors"
	"testing"

	"droneworks/hangar/internal/constants"
)

func TestAircraftService_Create_GeneratesSerialNumber(t *testing.T) {
	env := setupTestEnv(t)

	aircraft, err := env.aircraft.Create(context.Background(), constants.ModelTB2, "")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if aircraft.SerialNumber == "" {
		t.Error("Missing serial number should be generated")
	}
	if aircraft.IsProduced {
		t.Error("New aircraft must start unproduced")
	}
}

func TestAircraftService_Create_DuplicateSerialNumber(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	if _, err := env.aircraft.Create(ctx, constants.ModelTB2, "TB2-0001"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := env.aircraft.Create(ctx, constants.ModelTB3, "TB2-0001"); err == nil {
		t.Fatal("Expected duplicate serial number to be rejected")
	}
}

func TestAircraftService_Create_InvalidModel(t *testing.T) {
	env := setupTestEnv(t)

	if _, err := env.aircraft.Create(context.Background(), "TB99", ""); !errors.Is(err, ErrInvalidModel) {
		t.Fatalf("Expected ErrInvalidModel, got %v", err)
	}
}

func TestAircraftService_GetAndList(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	first := mustCreateAircraft(t, env, constants.ModelTB2)
	mustCreateAircraft(t, env, constants.ModelAkinci)

	fetched, err := env.aircraft.Get(ctx, first.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if fetched.Model != constants.ModelTB2 {
		t.Errorf("Expected TB2, got %s", fetched.Model)
	}

	if _, err := env.aircraft.Get(ctx, "missing-id"); !errors.Is(err, ErrAircraftNotFound) {
		t.Errorf("Expected ErrAircraftNotFound, got %v", err)
	}

	all, err := env.aircraft.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Expected 2 aircraft, got %d", len(all))
	}
}
