package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/finwell/team-finance-app/internal/handlers"
	"github.com/finwell/team-finance-app/internal/logger"
)

// The validation paths reject before any storage access, so the handlers
// run here with a nil pool.
func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.NewWithWriter(io.Discard)
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/api/assets", handlers.ListAssetsHandler(nil, log))
	r.POST("/api/assets", handlers.CreateAssetHandler(nil, nil, log))
	r.DELETE("/api/assets/:id", handlers.DeleteAssetHandler(nil, nil, log))
	r.POST("/api/goals", handlers.CreateGoalHandler(nil, log))
	r.POST("/api/transactions", handlers.CreateTransactionHandler(nil, log))
	r.POST("/api/categories", handlers.CreateCategoryHandler(nil, log))
	r.GET("/api/dashboard", handlers.DashboardHandler(nil, log))
	r.GET("/api/organizations/:id/check-membership", handlers.CheckMembershipHandler(nil, log))
	r.GET("/api/goals/:id/current-amount", handlers.GoalCurrentAmountHandler(nil, log))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListAssetsRequiresOrganizationID(t *testing.T) {
	w := doJSON(t, testRouter(), http.MethodGet, "/api/assets", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "organizationId is required") {
		t.Errorf("body = %s, want explanatory message", w.Body.String())
	}
}

func TestListAssetsRejectsMalformedOrganizationID(t *testing.T) {
	w := doJSON(t, testRouter(), http.MethodGet, "/api/assets?organizationId=not-a-uuid", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCreateAssetRequiresCurrentValue(t *testing.T) {
	body := `{"organization_id":"7f9c24e5-2f8a-4b3d-9f6e-1a2b3c4d5e6f","name":"Savings","category":"cash"}`
	w := doJSON(t, testRouter(), http.MethodPost, "/api/assets", body)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "current_value is required") {
		t.Errorf("body = %s, want current_value message", w.Body.String())
	}
}

func TestCreateAssetAcceptsExplicitZeroValue(t *testing.T) {
	// zero is a value, not an omission; this must get past validation and
	// only blow up later because the test router has no database behind it
	body := `{"organization_id":"7f9c24e5-2f8a-4b3d-9f6e-1a2b3c4d5e6f","name":"Savings","category":"cash","current_value":0}`
	w := doJSON(t, testRouter(), http.MethodPost, "/api/assets", body)
	if w.Code == http.StatusBadRequest {
		t.Errorf("status = 400, explicit zero rejected as missing")
	}
}

func TestCreateAssetRejectsBadOrganizationID(t *testing.T) {
	body := `{"organization_id":"nope","name":"Savings","category":"cash","current_value":10}`
	w := doJSON(t, testRouter(), http.MethodPost, "/api/assets", body)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestDeleteAssetRejectsBadPathID(t *testing.T) {
	w := doJSON(t, testRouter(), http.MethodDelete, "/api/assets/123", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCreateGoalRequiresTargetAmount(t *testing.T) {
	body := `{"organization_id":"7f9c24e5-2f8a-4b3d-9f6e-1a2b3c4d5e6f","name":"House"}`
	w := doJSON(t, testRouter(), http.MethodPost, "/api/goals", body)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "target_amount is required") {
		t.Errorf("body = %s, want target_amount message", w.Body.String())
	}
}

func TestCreateGoalRejectsUnknownStatus(t *testing.T) {
	body := `{"organization_id":"7f9c24e5-2f8a-4b3d-9f6e-1a2b3c4d5e6f","name":"House","target_amount":100,"status":"archived"}`
	w := doJSON(t, testRouter(), http.MethodPost, "/api/goals", body)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCreateTransactionRejectsUnknownType(t *testing.T) {
	body := `{"organization_id":"7f9c24e5-2f8a-4b3d-9f6e-1a2b3c4d5e6f","category_id":"7f9c24e5-2f8a-4b3d-9f6e-1a2b3c4d5e6f","amount":10,"type":"transfer"}`
	w := doJSON(t, testRouter(), http.MethodPost, "/api/transactions", body)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCreateCategoryRequiresName(t *testing.T) {
	body := `{"organization_id":"7f9c24e5-2f8a-4b3d-9f6e-1a2b3c4d5e6f","type":"expense"}`
	w := doJSON(t, testRouter(), http.MethodPost, "/api/categories", body)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestDashboardRejectsMalformedUUID(t *testing.T) {
	w := doJSON(t, testRouter(), http.MethodGet, "/api/dashboard?organizationId=xyz", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCheckMembershipRejectsBadUserID(t *testing.T) {
	w := doJSON(t, testRouter(), http.MethodGet,
		"/api/organizations/7f9c24e5-2f8a-4b3d-9f6e-1a2b3c4d5e6f/check-membership?userId=bad", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCheckMembershipRejectsBadOrgID(t *testing.T) {
	w := doJSON(t, testRouter(), http.MethodGet,
		"/api/organizations/42/check-membership?userId=7f9c24e5-2f8a-4b3d-9f6e-1a2b3c4d5e6f", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestGoalCurrentAmountRequiresOrganizationID(t *testing.T) {
	w := doJSON(t, testRouter(), http.MethodGet,
		"/api/goals/7f9c24e5-2f8a-4b3d-9f6e-1a2b3c4d5e6f/current-amount", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "organizationId is required") {
		t.Errorf("body = %s, want explanatory message", w.Body.String())
	}
}
