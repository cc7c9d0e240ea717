package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/finwell/team-finance-app/models"
)

// Querier is satisfied by both *pgxpool.Pool and pgx.Tx, so the goal queries
// run the same inside and outside a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateGoal(ctx context.Context, pool *pgxpool.Pool, goal *models.FinancialGoal) error {
	if goal.Status == "" {
		goal.Status = models.GoalStatusActive
	}
	err := pool.QueryRow(ctx, `
		INSERT INTO financial_goals (organization_id, name, category, target_amount, current_amount, status, priority, start_date, target_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`,
		goal.OrganizationID,
		goal.Name,
		goal.Category,
		goal.TargetAmount,
		goal.CurrentAmount,
		goal.Status,
		goal.Priority,
		goal.StartDate,
		goal.TargetDate).Scan(&goal.ID, &goal.CreatedAt, &goal.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating goal: %w", err)
	}
	return nil
}

func GetGoalByID(ctx context.Context, q Querier, orgID, goalID uuid.UUID) (*models.FinancialGoal, error) {
	goal := &models.FinancialGoal{}
	err := q.QueryRow(ctx, `
		SELECT id, organization_id, name, category, target_amount, current_amount, status, priority, start_date, target_date, created_at, updated_at
		FROM financial_goals
		WHERE id = $1 AND organization_id = $2`, goalID, orgID).Scan(
		&goal.ID,
		&goal.OrganizationID,
		&goal.Name,
		&goal.Category,
		&goal.TargetAmount,
		&goal.CurrentAmount,
		&goal.Status,
		&goal.Priority,
		&goal.StartDate,
		&goal.TargetDate,
		&goal.CreatedAt,
		&goal.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetching goal: %w", err)
	}
	return goal, nil
}

func GetGoalsByOrganization(ctx context.Context, q Querier, orgID uuid.UUID) ([]models.FinancialGoal, error) {
	return queryGoals(ctx, q, `
		SELECT id, organization_id, name, category, target_amount, current_amount, status, priority, start_date, target_date, created_at, updated_at
		FROM financial_goals
		WHERE organization_id = $1
		ORDER BY priority, created_at`, orgID)
}

// GetSyncableGoals loads the goals the sync recomputes: active and paused
// only. Completed goals never re-enter this set, which is what keeps
// completion monotonic.
func GetSyncableGoals(ctx context.Context, q Querier, orgID uuid.UUID) ([]models.FinancialGoal, error) {
	return queryGoals(ctx, q, `
		SELECT id, organization_id, name, category, target_amount, current_amount, status, priority, start_date, target_date, created_at, updated_at
		FROM financial_goals
		WHERE organization_id = $1 AND status IN ($2, $3)
		ORDER BY priority, created_at`, orgID, models.GoalStatusActive, models.GoalStatusPaused)
}

func queryGoals(ctx context.Context, q Querier, sql string, args ...any) ([]models.FinancialGoal, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	defer rows.Close()

	goals := make([]models.FinancialGoal, 0)
	for rows.Next() {
		var g models.FinancialGoal
		if err := rows.Scan(&g.ID, &g.OrganizationID, &g.Name, &g.Category, &g.TargetAmount,
			&g.CurrentAmount, &g.Status, &g.Priority, &g.StartDate, &g.TargetDate,
			&g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning goal: %w", err)
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func UpdateGoal(ctx context.Context, pool *pgxpool.Pool, goal *models.FinancialGoal) error {
	tag, err := pool.Exec(ctx, `
		UPDATE financial_goals
		SET name = $1, category = $2, target_amount = $3, status = $4, priority = $5, start_date = $6, target_date = $7, updated_at = now()
		WHERE id = $8 AND organization_id = $9`,
		goal.Name,
		goal.Category,
		goal.TargetAmount,
		goal.Status,
		goal.Priority,
		goal.StartDate,
		goal.TargetDate,
		goal.ID,
		goal.OrganizationID)
	if err != nil {
		return fmt.Errorf("updating goal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateGoalProgress rewrites the achievement columns, typically inside the
// sync transaction.
func UpdateGoalProgress(ctx context.Context, q Querier, goalID uuid.UUID, currentAmount decimal.Decimal, status string) error {
	_, err := q.Exec(ctx, `
		UPDATE financial_goals
		SET current_amount = $1, status = $2, updated_at = now()
		WHERE id = $3`,
		currentAmount, status, goalID)
	if err != nil {
		return fmt.Errorf("updating goal progress: %w", err)
	}
	return nil
}

func DeleteGoal(ctx context.Context, pool *pgxpool.Pool, orgID, goalID uuid.UUID) error {
	tag, err := pool.Exec(ctx, `
		DELETE FROM financial_goals
		WHERE id = $1 AND organization_id = $2`, goalID, orgID)
	if err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// TotalActiveAssetValue sums current_value over the organization's active
// assets. COALESCE keeps an assetless organization at zero instead of NULL.
func TotalActiveAssetValue(ctx context.Context, q Querier, orgID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := q.QueryRow(ctx, `
		SELECT COALESCE(SUM(current_value), 0)
		FROM assets
		WHERE organization_id = $1 AND is_active = true`, orgID).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("summing active assets: %w", err)
	}
	return total, nil
}
