package handlers_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finwell/team-finance-app/internal/database"
	"github.com/finwell/team-finance-app/internal/handlers"
	"github.com/finwell/team-finance-app/internal/logger"
	"github.com/finwell/team-finance-app/models"
)

func handlersTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	pool, err := pgxpool.New(context.Background(), url)
	if err != nil {
		t.Fatalf("connecting to test database: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func TestUpdateGoalOmittedStatusKeepsStoredStatus(t *testing.T) {
	pool := handlersTestPool(t)
	ctx := context.Background()

	org := &models.Organization{Name: "Update Test Org"}
	if err := database.CreateOrganization(ctx, pool, org, uuid.New()); err != nil {
		t.Fatalf("creating organization: %v", err)
	}
	goal := &models.FinancialGoal{
		OrganizationID: org.ID,
		Name:           "emergency fund",
		TargetAmount:   1000,
		Status:         models.GoalStatusCompleted,
	}
	if err := database.CreateGoal(ctx, pool, goal); err != nil {
		t.Fatalf("creating goal: %v", err)
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PUT("/api/goals/:id", handlers.UpdateGoalHandler(pool, logger.NewWithWriter(io.Discard)))

	// a rename that says nothing about status
	body := fmt.Sprintf(`{"organization_id":%q,"name":"rainy day fund","target_amount":1000}`, org.ID)
	req := httptest.NewRequest(http.MethodPut, "/api/goals/"+goal.ID.String(), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	stored, err := database.GetGoalByID(ctx, pool, org.ID, goal.ID)
	if err != nil {
		t.Fatalf("fetching goal: %v", err)
	}
	if stored.Status != models.GoalStatusCompleted {
		t.Errorf("status = %q, want completed to survive an update without status", stored.Status)
	}
	if stored.Name != "rainy day fund" {
		t.Errorf("name = %q, want the rename applied", stored.Name)
	}
}
