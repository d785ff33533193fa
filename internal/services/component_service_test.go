package services

import (
	"context"
	"errors"
	"testing"

	"droneworks/hangar/internal/constants"
	gormModels "droneworks/hangar/internal/models/gorm"
)

func componentCount(t *testing.T, env *testEnv) int64 {
	var count int64
	if err := env.db.Model(&gormModels.Component{}).Count(&count).Error; err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	return count
}

func TestComponentService_Create_Success(t *testing.T) {
	env := setupTestEnv(t)
	operator := createOperator(t, env, "wing-op", constants.TeamWing)

	component, err := env.component.Create(context.Background(), operator.ID, constants.CategoryWing, constants.ModelTB2)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if component.IsUsed {
		t.Error("New component must start available")
	}
	if component.TeamID != env.teams[constants.TeamWing].ID {
		t.Errorf("Component should belong to the wing team, got team %s", component.TeamID)
	}

	var stored gormModels.Component
	if err := env.db.Where("id = ?", component.ID).First(&stored).Error; err != nil {
		t.Fatalf("Component not found in database: %v", err)
	}
	if stored.Category != constants.CategoryWing || stored.AircraftModel != constants.ModelTB2 {
		t.Errorf("Stored component has wrong attributes: %+v", stored)
	}
}

func TestComponentService_Create_CategoryMismatch(t *testing.T) {
	env := setupTestEnv(t)
	operator := createOperator(t, env, "wing-op", constants.TeamWing)

	_, err := env.component.Create(context.Background(), operator.ID, constants.CategoryBody, constants.ModelTB2)
	if !errors.Is(err, ErrCategoryMismatch) {
		t.Fatalf("Expected ErrCategoryMismatch, got %v", err)
	}

	if count := componentCount(t, env); count != 0 {
		t.Errorf("Rejected creation must not persist anything, found %d components", count)
	}
}

func TestComponentService_Create_AssemblyTeamCannotProduce(t *testing.T) {
	env := setupTestEnv(t)
	operator := createOperator(t, env, "assembler", constants.TeamAssembly)

	for _, category := range constants.RequiredCategories {
		_, err := env.component.Create(context.Background(), operator.ID, category, constants.ModelTB2)
		if !errors.Is(err, ErrCategoryMismatch) {
			t.Errorf("Assembly team creating %s: expected ErrCategoryMismatch, got %v", category, err)
		}
	}
}

func TestComponentService_Create_UnassignedTeam(t *testing.T) {
	env := setupTestEnv(t)
	operator := createOperator(t, env, "floater", "")

	_, err := env.component.Create(context.Background(), operator.ID, constants.CategoryWing, constants.ModelTB2)
	if !errors.Is(err, ErrUnassignedTeam) {
		t.Fatalf("Expected ErrUnassignedTeam, got %v", err)
	}
}

func TestComponentService_Create_InvalidInputs(t *testing.T) {
	env := setupTestEnv(t)
	operator := createOperator(t, env, "wing-op", constants.TeamWing)
	ctx := context.Background()

	if _, err := env.component.Create(ctx, operator.ID, "PROPELLER", constants.ModelTB2); !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("Expected ErrInvalidCategory, got %v", err)
	}
	if _, err := env.component.Create(ctx, operator.ID, constants.CategoryWing, "TB99"); !errors.Is(err, ErrInvalidModel) {
		t.Errorf("Expected ErrInvalidModel, got %v", err)
	}
	if count := componentCount(t, env); count != 0 {
		t.Errorf("Invalid inputs must not persist anything, found %d components", count)
	}
}

func TestComponentService_ListAvailable(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	wingTB2 := mustCreateComponent(t, env, constants.CategoryWing, constants.ModelTB2)
	mustCreateComponent(t, env, constants.CategoryWing, constants.ModelAkinci)
	mustCreateComponent(t, env, constants.CategoryBody, constants.ModelTB2)

	// An installed component drops out of the snapshot.
	aircraft := mustCreateAircraft(t, env, constants.ModelTB2)
	installed := mustCreateComponent(t, env, constants.CategoryTail, constants.ModelTB2)
	if _, _, err := env.assembly.Install(ctx, aircraft.ID, installed.ID); err != nil {
		t.Fatalf("Install failed: %v", err)
	}

	all, err := env.component.ListAvailable(ctx, "", "")
	if err != nil {
		t.Fatalf("ListAvailable failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 available components, got %d", len(all))
	}
	for _, c := range all {
		if c.ID == installed.ID {
			t.Error("Installed component must not appear in the available snapshot")
		}
	}

	wings, err := env.component.ListAvailable(ctx, constants.CategoryWing, constants.ModelTB2)
	if err != nil {
		t.Fatalf("ListAvailable with filter failed: %v", err)
	}
	if len(wings) != 1 || wings[0].ID != wingTB2.ID {
		t.Errorf("Expected only the TB2 wing, got %+v", wings)
	}

	if _, err := env.component.ListAvailable(ctx, "PROPELLER", ""); !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("Expected ErrInvalidCategory, got %v", err)
	}
}

func TestComponentService_Get(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	component := mustCreateComponent(t, env, constants.CategoryBody, constants.ModelTB3)

	fetched, err := env.component.Get(ctx, component.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if fetched.ID != component.ID {
		t.Errorf("Expected component %s, got %s", component.ID, fetched.ID)
	}

	if _, err := env.component.Get(ctx, "missing-id"); !errors.Is(err, ErrComponentNotFound) {
		t.Errorf("Expected ErrComponentNotFound, got %v", err)
	}
}
