package database_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/finwell/team-finance-app/internal/database"
	"github.com/finwell/team-finance-app/models"
)

func TestGetSyncableGoalsExcludesCompleted(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	org := createOrg(t, pool, "Goal Org")

	for _, status := range []string{
		models.GoalStatusActive,
		models.GoalStatusPaused,
		models.GoalStatusCompleted,
	} {
		goal := &models.FinancialGoal{OrganizationID: org.ID, Name: "goal " + status, TargetAmount: 100, Status: status}
		if err := database.CreateGoal(ctx, pool, goal); err != nil {
			t.Fatalf("creating goal: %v", err)
		}
	}

	goals, err := database.GetSyncableGoals(ctx, pool, org.ID)
	if err != nil {
		t.Fatalf("loading syncable goals: %v", err)
	}
	if len(goals) != 2 {
		t.Fatalf("got %d syncable goals, want 2", len(goals))
	}
	for _, g := range goals {
		if g.Status == models.GoalStatusCompleted {
			t.Errorf("completed goal %s in syncable set", g.ID)
		}
	}
}

func TestUpdateGoalProgress(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	org := createOrg(t, pool, "Progress Org")

	goal := &models.FinancialGoal{OrganizationID: org.ID, Name: "goal", TargetAmount: 100, Status: models.GoalStatusActive}
	if err := database.CreateGoal(ctx, pool, goal); err != nil {
		t.Fatalf("creating goal: %v", err)
	}

	err := database.UpdateGoalProgress(ctx, pool, goal.ID, decimal.NewFromFloat(42.5), models.GoalStatusCompleted)
	if err != nil {
		t.Fatalf("updating progress: %v", err)
	}

	got, err := database.GetGoalByID(ctx, pool, org.ID, goal.ID)
	if err != nil {
		t.Fatalf("fetching goal: %v", err)
	}
	if got.CurrentAmount != 42.5 {
		t.Errorf("current_amount = %v, want 42.5", got.CurrentAmount)
	}
	if got.Status != models.GoalStatusCompleted {
		t.Errorf("status = %q, want completed", got.Status)
	}
}

func TestDashboardCounts(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	org := createOrg(t, pool, "Dashboard Org")

	asset := &models.Asset{OrganizationID: org.ID, Name: "a", Category: "cash", CurrentValue: 10, IsActive: true}
	if err := database.CreateAsset(ctx, pool, asset); err != nil {
		t.Fatalf("creating asset: %v", err)
	}
	category := &models.Category{OrganizationID: org.ID, Name: "food", Type: "expense"}
	if err := database.CreateCategory(ctx, pool, category); err != nil {
		t.Fatalf("creating category: %v", err)
	}

	counts, err := database.GetDashboardCounts(ctx, pool, org.ID)
	if err != nil {
		t.Fatalf("fetching counts: %v", err)
	}
	if counts.Assets != 1 || counts.Categories != 1 || counts.Transactions != 0 {
		t.Errorf("counts = %+v, want 1 asset, 1 category, 0 transactions", counts)
	}
}
