package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"droneworks/hangar/internal/common"
	"droneworks/hangar/internal/constants"
	"droneworks/hangar/internal/db/repositories"
	gormModels "droneworks/hangar/internal/models/gorm"
)

// Shared fixture for the service tests in this package.
type testEnv struct {
	db        *gorm.DB
	auth      *AuthorizationService
	component *ComponentService
	aircraft  *AircraftService
	assembly  *AssemblyService
	recycle   *RecycleService
	teams     map[string]gormModels.Team
}

// Setup test database
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// One in-memory database per test; a second pooled connection would
	// see a fresh empty schema.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	// Auto migrate
	if err := db.AutoMigrate(
		&gormModels.Team{},
		&gormModels.Personnel{},
		&gormModels.Component{},
		&gormModels.Aircraft{},
		&gormModels.AircraftComponent{},
	); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

func setupTestEnv(t *testing.T) *testEnv {
	db := setupTestDB(t)

	teams := make(map[string]gormModels.Team)
	for _, name := range []string{
		constants.TeamWing,
		constants.TeamBody,
		constants.TeamTail,
		constants.TeamAvionics,
		constants.TeamAssembly,
	} {
		team := gormModels.Team{ID: uuid.New().String(), Name: name}
		if err := db.Create(&team).Error; err != nil {
			t.Fatalf("Failed to seed team %s: %v", name, err)
		}
		teams[name] = team
	}

	componentRepo := repositories.NewComponentRepository(db)
	aircraftRepo := repositories.NewAircraftRepository(db)
	assemblyRepo := repositories.NewAssemblyRepository(db)
	teamRepo := repositories.NewTeamRepository(db)
	personnelRepo := repositories.NewPersonnelRepository(db)

	authSvc := NewAuthorizationService(
		constants.DefaultTeamCategories(),
		personnelRepo,
		teamRepo,
		common.NewCacheService(60, 120),
	)

	locks := NewLockRegistry()

	return &testEnv{
		db:        db,
		auth:      authSvc,
		component: NewComponentService(authSvc, componentRepo, nil),
		aircraft:  NewAircraftService(aircraftRepo),
		assembly:  NewAssemblyService(db, aircraftRepo, componentRepo, assemblyRepo, locks, nil),
		recycle:   NewRecycleService(db, authSvc, componentRepo, locks, nil),
		teams:     teams,
	}
}

// createOperator inserts a personnel row assigned to the named team. An
// empty team name leaves the operator unassigned.
func createOperator(t *testing.T, env *testEnv, username, teamName string) *gormModels.Personnel {
	person := &gormModels.Personnel{
		ID:       uuid.New().String(),
		Username: username,
		Role:     constants.RoleTechnician,
		IsActive: true,
	}
	if teamName != "" {
		team, ok := env.teams[teamName]
		if !ok {
			t.Fatalf("Unknown team %q", teamName)
		}
		person.TeamID = &team.ID
	}
	if err := env.db.Create(person).Error; err != nil {
		t.Fatalf("Failed to create operator: %v", err)
	}
	return person
}

// teamForCategory maps a category back to the operator team that builds it.
func teamForCategory(category constants.ComponentCategory) string {
	switch category {
	case constants.CategoryWing:
		return constants.TeamWing
	case constants.CategoryBody:
		return constants.TeamBody
	case constants.CategoryTail:
		return constants.TeamTail
	default:
		return constants.TeamAvionics
	}
}

// mustCreateComponent creates a component via the service using an operator
// from the team that owns the category.
func mustCreateComponent(t *testing.T, env *testEnv, category constants.ComponentCategory, model constants.AircraftModel) *gormModels.Component {
	operator := createOperator(t, env, "op-"+uuid.New().String(), teamForCategory(category))

	component, err := env.component.Create(context.Background(), operator.ID, category, model)
	if err != nil {
		t.Fatalf("Failed to create %s component: %v", category, err)
	}
	return component
}

func mustCreateAircraft(t *testing.T, env *testEnv, model constants.AircraftModel) *gormModels.Aircraft {
	aircraft, err := env.aircraft.Create(context.Background(), model, "")
	if err != nil {
		t.Fatalf("Failed to create aircraft: %v", err)
	}
	return aircraft
}

func TestAssemblyService_InstallCompletesAircraft(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	aircraft := mustCreateAircraft(t, env, constants.ModelTB2)

	for i, category := range constants.RequiredCategories {
		component := mustCreateComponent(t, env, category, constants.ModelTB2)

		updatedAircraft, updatedComponent, err := env.assembly.Install(ctx, aircraft.ID, component.ID)
		if err != nil {
			t.Fatalf("Install %s failed: %v", category, err)
		}

		if !updatedComponent.IsUsed {
			t.Errorf("Component %s should be marked used after install", category)
		}

		lastSlot := i == len(constants.RequiredCategories)-1
		if updatedAircraft.IsProduced != lastSlot {
			t.Errorf("After %d installs, produced = %v, want %v", i+1, updatedAircraft.IsProduced, lastSlot)
		}
	}

	var linkCount int64
	env.db.Model(&gormModels.AircraftComponent{}).Where("aircraft_id = ?", aircraft.ID).Count(&linkCount)
	if linkCount != 4 {
		t.Errorf("Expected 4 installation links, got %d", linkCount)
	}
}

func TestAssemblyService_Install_ModelMismatch(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	aircraft := mustCreateAircraft(t, env, constants.ModelTB2)
	component := mustCreateComponent(t, env, constants.CategoryWing, constants.ModelAkinci)

	_, _, err := env.assembly.Install(ctx, aircraft.ID, component.ID)
	if !errors.Is(err, ErrModelMismatch) {
		t.Fatalf("Expected ErrModelMismatch, got %v", err)
	}

	// Rejected install must leave no trace.
	var linkCount int64
	env.db.Model(&gormModels.AircraftComponent{}).Count(&linkCount)
	if linkCount != 0 {
		t.Errorf("Expected no links after rejected install, got %d", linkCount)
	}

	var stored gormModels.Component
	env.db.Where("id = ?", component.ID).First(&stored)
	if stored.IsUsed {
		t.Error("Component should stay available after rejected install")
	}
}

func TestAssemblyService_Install_CategoryOccupied(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	aircraft := mustCreateAircraft(t, env, constants.ModelTB3)
	first := mustCreateComponent(t, env, constants.CategoryWing, constants.ModelTB3)
	second := mustCreateComponent(t, env, constants.CategoryWing, constants.ModelTB3)

	if _, _, err := env.assembly.Install(ctx, aircraft.ID, first.ID); err != nil {
		t.Fatalf("First install failed: %v", err)
	}

	_, _, err := env.assembly.Install(ctx, aircraft.ID, second.ID)
	if !errors.Is(err, ErrCategoryOccupied) {
		t.Fatalf("Expected ErrCategoryOccupied, got %v", err)
	}

	var stored gormModels.Component
	env.db.Where("id = ?", second.ID).First(&stored)
	if stored.IsUsed {
		t.Error("Losing component should stay available")
	}
}

func TestAssemblyService_Install_ComponentAlreadyInstalled(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	first := mustCreateAircraft(t, env, constants.ModelKizilelma)
	second := mustCreateAircraft(t, env, constants.ModelKizilelma)
	component := mustCreateComponent(t, env, constants.CategoryAvionics, constants.ModelKizilelma)

	if _, _, err := env.assembly.Install(ctx, first.ID, component.ID); err != nil {
		t.Fatalf("First install failed: %v", err)
	}

	_, _, err := env.assembly.Install(ctx, second.ID, component.ID)
	if !errors.Is(err, ErrComponentAlreadyInstalled) {
		t.Fatalf("Expected ErrComponentAlreadyInstalled, got %v", err)
	}
}

func TestAssemblyService_Install_MissingEntities(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	aircraft := mustCreateAircraft(t, env, constants.ModelTB2)
	component := mustCreateComponent(t, env, constants.CategoryBody, constants.ModelTB2)

	if _, _, err := env.assembly.Install(ctx, uuid.New().String(), component.ID); !errors.Is(err, ErrAircraftNotFound) {
		t.Errorf("Expected ErrAircraftNotFound, got %v", err)
	}
	if _, _, err := env.assembly.Install(ctx, aircraft.ID, uuid.New().String()); !errors.Is(err, ErrComponentNotFound) {
		t.Errorf("Expected ErrComponentNotFound, got %v", err)
	}
}

func TestAssemblyService_UninstallReleasesComponent(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	aircraft := mustCreateAircraft(t, env, constants.ModelTB2)
	var wing *gormModels.Component
	for _, category := range constants.RequiredCategories {
		component := mustCreateComponent(t, env, category, constants.ModelTB2)
		if category == constants.CategoryWing {
			wing = component
		}
		if _, _, err := env.assembly.Install(ctx, aircraft.ID, component.ID); err != nil {
			t.Fatalf("Install %s failed: %v", category, err)
		}
	}

	updatedAircraft, updatedComponent, err := env.assembly.Uninstall(ctx, aircraft.ID, wing.ID)
	if err != nil {
		t.Fatalf("Uninstall failed: %v", err)
	}

	if updatedAircraft.IsProduced {
		t.Error("Aircraft must drop out of produced state when a slot empties")
	}
	if updatedComponent.IsUsed {
		t.Error("Uninstalled component must return to the available pool")
	}

	// The freed component can be installed again.
	updatedAircraft, _, err = env.assembly.Install(ctx, aircraft.ID, wing.ID)
	if err != nil {
		t.Fatalf("Re-install failed: %v", err)
	}
	if !updatedAircraft.IsProduced {
		t.Error("Aircraft should be produced again after re-install")
	}
}

func TestAssemblyService_Uninstall_LinkNotFound(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	aircraft := mustCreateAircraft(t, env, constants.ModelTB2)
	component := mustCreateComponent(t, env, constants.CategoryTail, constants.ModelTB2)

	_, _, err := env.assembly.Uninstall(ctx, aircraft.ID, component.ID)
	if !errors.Is(err, ErrLinkNotFound) {
		t.Fatalf("Expected ErrLinkNotFound, got %v", err)
	}
}

func TestAssemblyService_MissingCategories(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	aircraft := mustCreateAircraft(t, env, constants.ModelTB3)

	missing, err := env.assembly.MissingCategories(ctx, aircraft.ID)
	if err != nil {
		t.Fatalf("MissingCategories failed: %v", err)
	}
	if len(missing) != len(constants.RequiredCategories) {
		t.Fatalf("Fresh aircraft should miss all categories, got %v", missing)
	}

	wing := mustCreateComponent(t, env, constants.CategoryWing, constants.ModelTB3)
	if _, _, err := env.assembly.Install(ctx, aircraft.ID, wing.ID); err != nil {
		t.Fatalf("Install failed: %v", err)
	}

	missing, err = env.assembly.MissingCategories(ctx, aircraft.ID)
	if err != nil {
		t.Fatalf("MissingCategories failed: %v", err)
	}
	if len(missing) != 3 {
		t.Fatalf("Expected 3 missing categories, got %v", missing)
	}
	for _, c := range missing {
		if c == constants.CategoryWing {
			t.Error("WING should no longer be reported missing")
		}
	}

	if _, err := env.assembly.MissingCategories(ctx, uuid.New().String()); !errors.Is(err, ErrAircraftNotFound) {
		t.Errorf("Expected ErrAircraftNotFound, got %v", err)
	}
}

func TestAssemblyService_ConcurrentInstall_SingleWinner(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	aircraft := mustCreateAircraft(t, env, constants.ModelTB2)
	first := mustCreateComponent(t, env, constants.CategoryWing, constants.ModelTB2)
	second := mustCreateComponent(t, env, constants.CategoryWing, constants.ModelTB2)

	var wg sync.WaitGroup
	results := make(chan error, 2)

	for _, componentID := range []string{first.ID, second.ID} {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, _, err := env.assembly.Install(ctx, aircraft.ID, id)
			results <- err
		}(componentID)
	}
	wg.Wait()
	close(results)

	var wins, conflicts int
	for err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, ErrCategoryOccupied):
			conflicts++
		default:
			t.Errorf("Unexpected error: %v", err)
		}
	}

	if wins != 1 || conflicts != 1 {
		t.Fatalf("Expected exactly one winner and one conflict, got %d wins, %d conflicts", wins, conflicts)
	}

	var linkCount int64
	env.db.Model(&gormModels.AircraftComponent{}).Where("aircraft_id = ?", aircraft.ID).Count(&linkCount)
	if linkCount != 1 {
		t.Errorf("Expected exactly one link, got %d", linkCount)
	}
}
