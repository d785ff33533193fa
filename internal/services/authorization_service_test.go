package services

import (
	"context"
	"testing"

	"droneworks/hangar/internal/constants"
	gormModels "droneworks/hangar/internal/models/gorm"
)

func TestAuthorizationService_CurrentTeam_Unassigned(t *testing.T) {
	env := setupTestEnv(t)
	operator := createOperator(t, env, "floater", "")

	team, err := env.auth.CurrentTeam(context.Background(), operator.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if team != nil {
		t.Errorf("Unassigned operator should resolve to no team, got %+v", team)
	}
}

func TestAuthorizationService_CurrentTeam_UnknownOperator(t *testing.T) {
	env := setupTestEnv(t)

	team, err := env.auth.CurrentTeam(context.Background(), "no-such-operator")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if team != nil {
		t.Errorf("Unknown operator should resolve to no team, got %+v", team)
	}
}

func TestAuthorizationService_CurrentTeam_CachesLookup(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	operator := createOperator(t, env, "wing-op", constants.TeamWing)

	team, err := env.auth.CurrentTeam(ctx, operator.ID)
	if err != nil {
		t.Fatalf("First lookup failed: %v", err)
	}
	if team == nil || team.Name != constants.TeamWing {
		t.Fatalf("Expected wing team, got %+v", team)
	}

	// Delete the row; a cached resolution still answers.
	if err := env.db.Delete(&gormModels.Personnel{}, "id = ?", operator.ID).Error; err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	cached, err := env.auth.CurrentTeam(ctx, operator.ID)
	if err != nil {
		t.Fatalf("Second lookup failed: %v", err)
	}
	if cached == nil || cached.ID != team.ID {
		t.Errorf("Expected cached team %s, got %+v", team.ID, cached)
	}
}

func TestAuthorizationService_ProducedCategory(t *testing.T) {
	env := setupTestEnv(t)

	expected := map[string]constants.ComponentCategory{
		constants.TeamWing:     constants.CategoryWing,
		constants.TeamBody:     constants.CategoryBody,
		constants.TeamTail:     constants.CategoryTail,
		constants.TeamAvionics: constants.CategoryAvionics,
	}
	for teamName, want := range expected {
		got, ok := env.auth.ProducedCategory(teamName)
		if !ok || got != want {
			t.Errorf("ProducedCategory(%q) = %v, %v; want %v, true", teamName, got, ok, want)
		}
	}

	if _, ok := env.auth.ProducedCategory(constants.TeamAssembly); ok {
		t.Error("Assembly team must not map to a production category")
	}
}
