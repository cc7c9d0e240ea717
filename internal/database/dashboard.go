package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DashboardCounts struct {
	Assets       int `json:"assets"`
	Transactions int `json:"transactions"`
	Categories   int `json:"categories"`
}

// GetDashboardCounts returns per-entity row counts for one organization.
func GetDashboardCounts(ctx context.Context, pool *pgxpool.Pool, orgID uuid.UUID) (*DashboardCounts, error) {
	counts := &DashboardCounts{}
	err := pool.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM assets WHERE organization_id = $1),
			(SELECT COUNT(*) FROM transactions WHERE organization_id = $1),
			(SELECT COUNT(*) FROM categories WHERE organization_id = $1)`,
		orgID).Scan(&counts.Assets, &counts.Transactions, &counts.Categories)
	if err != nil {
		return nil, fmt.Errorf("fetching dashboard counts: %w", err)
	}
	return counts, nil
}
