package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"droneworks/hangar/internal/constants"
	gormModels "droneworks/hangar/internal/models/gorm"
)

func TestRecycleService_Recycle_Success(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	operator := createOperator(t, env, "wing-op", constants.TeamWing)

	var ids []string
	for i := 0; i < 3; i++ {
		component, err := env.component.Create(ctx, operator.ID, constants.CategoryWing, constants.ModelTB2)
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		ids = append(ids, component.ID)
	}

	destroyed, err := env.recycle.Recycle(ctx, ids, operator.ID)
	if err != nil {
		t.Fatalf("Recycle failed: %v", err)
	}
	if destroyed != 3 {
		t.Errorf("Expected 3 destroyed, got %d", destroyed)
	}
	if count := componentCount(t, env); count != 0 {
		t.Errorf("Expected empty inventory, found %d components", count)
	}
}

func TestRecycleService_Recycle_InstalledComponentRejectsBatch(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	operator := createOperator(t, env, "wing-op", constants.TeamWing)

	free, err := env.component.Create(ctx, operator.ID, constants.CategoryWing, constants.ModelTB2)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	installed, err := env.component.Create(ctx, operator.ID, constants.CategoryWing, constants.ModelTB2)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	aircraft := mustCreateAircraft(t, env, constants.ModelTB2)
	if _, _, err := env.assembly.Install(ctx, aircraft.ID, installed.ID); err != nil {
		t.Fatalf("Install failed: %v", err)
	}

	_, err = env.recycle.Recycle(ctx, []string{free.ID, installed.ID}, operator.ID)
	if !errors.Is(err, ErrComponentInUse) {
		t.Fatalf("Expected ErrComponentInUse, got %v", err)
	}

	// All-or-nothing: the free component must survive the rejected batch.
	var stored gormModels.Component
	if err := env.db.Where("id = ?", free.ID).First(&stored).Error; err != nil {
		t.Errorf("Free component was deleted despite batch rejection: %v", err)
	}
}

func TestRecycleService_Recycle_ForeignComponent(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	wingOp := createOperator(t, env, "wing-op", constants.TeamWing)
	bodyComponent := mustCreateComponent(t, env, constants.CategoryBody, constants.ModelTB2)

	_, err := env.recycle.Recycle(ctx, []string{bodyComponent.ID}, wingOp.ID)
	if !errors.Is(err, ErrForeignComponent) {
		t.Fatalf("Expected ErrForeignComponent, got %v", err)
	}

	var stored gormModels.Component
	if err := env.db.Where("id = ?", bodyComponent.ID).First(&stored).Error; err != nil {
		t.Errorf("Foreign component was deleted: %v", err)
	}
}

func TestRecycleService_Recycle_UnknownID(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	operator := createOperator(t, env, "wing-op", constants.TeamWing)
	component, err := env.component.Create(ctx, operator.ID, constants.CategoryWing, constants.ModelTB2)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	_, err = env.recycle.Recycle(ctx, []string{component.ID, uuid.New().String()}, operator.ID)
	if !errors.Is(err, ErrForeignComponent) {
		t.Fatalf("Expected ErrForeignComponent for unknown id, got %v", err)
	}
	if count := componentCount(t, env); count != 1 {
		t.Errorf("Batch with unknown id must delete nothing, found %d components", count)
	}
}

func TestRecycleService_Recycle_UnassignedTeam(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	operator := createOperator(t, env, "floater", "")
	component := mustCreateComponent(t, env, constants.CategoryWing, constants.ModelTB2)

	_, err := env.recycle.Recycle(ctx, []string{component.ID}, operator.ID)
	if !errors.Is(err, ErrUnassignedTeam) {
		t.Fatalf("Expected ErrUnassignedTeam, got %v", err)
	}
}
