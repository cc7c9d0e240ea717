package database_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finwell/team-finance-app/internal/database"
	"github.com/finwell/team-finance-app/models"
)

func testPool(t *testing.T) *pgxpool.Pool {
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

func createOrg(t *testing.T, pool *pgxpool.Pool, name string) *models.Organization {
	t.Helper()
	org := &models.Organization{Name: name}
	if err := database.CreateOrganization(context.Background(), pool, org, uuid.New()); err != nil {
		t.Fatalf("creating organization: %v", err)
	}
	return org
}

func TestCreateAndGetAsset(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	org := createOrg(t, pool, "Asset Org")

	asset := &models.Asset{
		OrganizationID: org.ID,
		Name:           "Emergency fund",
		Category:       "savings",
		CurrentValue:   1500.50,
		TargetValue:    10000,
		IsActive:       true,
	}
	if err := database.CreateAsset(ctx, pool, asset); err != nil {
		t.Fatalf("creating asset: %v", err)
	}
	if asset.ID == uuid.Nil {
		t.Fatal("asset id not assigned")
	}

	got, err := database.GetAssetByID(ctx, pool, org.ID, asset.ID)
	if err != nil {
		t.Fatalf("fetching asset: %v", err)
	}
	if got.Name != asset.Name || got.CurrentValue != asset.CurrentValue {
		t.Errorf("fetched asset = %+v, want %+v", got, asset)
	}
}

func TestGetAssetsEmptyOrganization(t *testing.T) {
	pool := testPool(t)
	org := createOrg(t, pool, "Empty Org")

	assets, err := database.GetAssetsByOrganization(context.Background(), pool, org.ID)
	if err != nil {
		t.Fatalf("listing assets: %v", err)
	}
	if assets == nil {
		t.Error("want an empty slice, got nil")
	}
	if len(assets) != 0 {
		t.Errorf("want no assets, got %d", len(assets))
	}
}

// A valid asset id combined with the wrong organization must read as not
// found, never as the row.
func TestAssetScopeIsolation(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	orgA := createOrg(t, pool, "Org A")
	orgB := createOrg(t, pool, "Org B")

	asset := &models.Asset{OrganizationID: orgA.ID, Name: "A's asset", Category: "cash", CurrentValue: 100, IsActive: true}
	if err := database.CreateAsset(ctx, pool, asset); err != nil {
		t.Fatalf("creating asset: %v", err)
	}

	if _, err := database.GetAssetByID(ctx, pool, orgB.ID, asset.ID); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("cross-org get: err = %v, want ErrNotFound", err)
	}

	asset.OrganizationID = orgB.ID
	asset.CurrentValue = 999
	if err := database.UpdateAsset(ctx, pool, asset); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("cross-org update: err = %v, want ErrNotFound", err)
	}

	if err := database.DeleteAsset(ctx, pool, orgB.ID, asset.ID); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("cross-org delete: err = %v, want ErrNotFound", err)
	}

	// the row survives untouched in its own organization
	got, err := database.GetAssetByID(ctx, pool, orgA.ID, asset.ID)
	if err != nil {
		t.Fatalf("fetching asset: %v", err)
	}
	if got.CurrentValue != 100 {
		t.Errorf("current_value = %v, want 100", got.CurrentValue)
	}
}

func TestCheckMembership(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	org := createOrg(t, pool, "Membership Org")

	member := &models.OrganizationMember{OrganizationID: org.ID, UserID: uuid.New(), Role: "member"}
	if err := database.AddMember(ctx, pool, member); err != nil {
		t.Fatalf("adding member: %v", err)
	}

	got, err := database.CheckMembership(ctx, pool, org.ID, member.UserID)
	if err != nil {
		t.Fatalf("checking membership: %v", err)
	}
	if got.ID != org.ID {
		t.Errorf("organization id = %s, want %s", got.ID, org.ID)
	}

	if _, err := database.CheckMembership(ctx, pool, org.ID, uuid.New()); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("non-member: err = %v, want ErrNotFound", err)
	}
}

func TestTotalActiveAssetValue(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	org := createOrg(t, pool, "Total Org")

	for _, a := range []struct {
		value  float64
		active bool
	}{{100, true}, {250.25, true}, {5000, false}} {
		asset := &models.Asset{OrganizationID: org.ID, Name: "a", Category: "cash", CurrentValue: a.value, IsActive: a.active}
		if err := database.CreateAsset(ctx, pool, asset); err != nil {
			t.Fatalf("creating asset: %v", err)
		}
	}

	total, err := database.TotalActiveAssetValue(ctx, pool, org.ID)
	if err != nil {
		t.Fatalf("summing assets: %v", err)
	}
	if total.InexactFloat64() != 350.25 {
		t.Errorf("total = %s, want 350.25", total)
	}
}
