// Package goalsync recomputes financial goal achievement from asset state.
//
// Every sync runs as one bounded database transaction per organization:
// sum the active assets, rewrite each active or paused goal's current
// amount, and flip the goal to completed once its target is reached.
// Completed goals are never pulled back into the recompute, so completion
// only moves forward even if assets later drop.
package goalsync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/finwell/team-finance-app/internal/database"
	"github.com/finwell/team-finance-app/models"
)

// ErrSyncFailed wraps every failure surfaced by a sync; the original cause
// stays reachable through errors.Is/As.
var ErrSyncFailed = errors.New("goal sync failed")

// syncTimeout bounds the whole unit of work, lock wait included.
const syncTimeout = 10 * time.Second

type EventType string

const (
	EventAssetCreated EventType = "asset_created"
	EventAssetUpdated EventType = "asset_updated"
	EventAssetDeleted EventType = "asset_deleted"
	// EventSyncAll marks a synthetic full recompute. Its AssetID is uuid.Nil
	// and must not be treated as a real asset reference.
	EventSyncAll EventType = "sync_all"
)

// AssetChangeEvent describes what moved. The fields are carried for logging
// only; the recompute is always a full aggregation, never differential.
type AssetChangeEvent struct {
	Type          EventType `json:"type"`
	AssetID       uuid.UUID `json:"asset_id"`
	PreviousValue float64   `json:"previous_value"`
	CurrentValue  float64   `json:"current_value"`
}

type Manager struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
}

func NewManager(pool *pgxpool.Pool, log zerolog.Logger) *Manager {
	return &Manager{pool: pool, log: log}
}

// TriggerSync recomputes every active or paused goal for the organization
// inside one transaction. Any error aborts the whole unit of work; nothing
// partial persists.
func (m *Manager) TriggerSync(ctx context.Context, orgID uuid.UUID, event AssetChangeEvent) error {
	ctx, cancel := context.WithTimeout(ctx, syncTimeout)
	defer cancel()

	start := time.Now()

	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return m.fail(orgID, event, err)
	}
	defer tx.Rollback(ctx)

	// Serialize concurrent syncs of the same organization. Released with
	// the transaction.
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))`, orgID); err != nil {
		return m.fail(orgID, event, err)
	}

	total, err := database.TotalActiveAssetValue(ctx, tx, orgID)
	if err != nil {
		return m.fail(orgID, event, err)
	}

	goals, err := database.GetSyncableGoals(ctx, tx, orgID)
	if err != nil {
		return m.fail(orgID, event, err)
	}

	completed := 0
	for _, goal := range goals {
		amount := amountForCategory(goal.Category, total)
		rate := achievementRate(amount, decimal.NewFromFloat(goal.TargetAmount))

		status := goal.Status
		if rate.GreaterThanOrEqual(decimal.NewFromInt(100)) {
			status = models.GoalStatusCompleted
		}
		if status == models.GoalStatusCompleted && goal.Status != models.GoalStatusCompleted {
			completed++
		}

		if err := database.UpdateGoalProgress(ctx, tx, goal.ID, amount, status); err != nil {
			return m.fail(orgID, event, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return m.fail(orgID, event, err)
	}

	m.log.Info().
		Str("organization_id", orgID.String()).
		Str("event", string(event.Type)).
		Int("goals", len(goals)).
		Int("newly_completed", completed).
		Str("total_assets", total.String()).
		Dur("duration", time.Since(start)).
		Msg("goal sync completed")
	return nil
}

// SyncAllGoals forces a full recompute with a synthetic event.
func (m *Manager) SyncAllGoals(ctx context.Context, orgID uuid.UUID) error {
	return m.TriggerSync(ctx, orgID, AssetChangeEvent{Type: EventSyncAll})
}

// CalculateCurrentAmount applies the achievement formula to a single goal,
// read-only and outside any transaction. Status is untouched. The goal must
// belong to the given organization; a mismatch reads as not found.
func (m *Manager) CalculateCurrentAmount(ctx context.Context, orgID, goalID uuid.UUID) (float64, error) {
	goal, err := database.GetGoalByID(ctx, m.pool, orgID, goalID)
	if err != nil {
		return 0, err
	}
	total, err := database.TotalActiveAssetValue(ctx, m.pool, orgID)
	if err != nil {
		return 0, err
	}
	return amountForCategory(goal.Category, total).InexactFloat64(), nil
}

// GetGoalStats derives counts and the average achievement percentage from a
// plain read of all goals. No side effects.
func (m *Manager) GetGoalStats(ctx context.Context, orgID uuid.UUID) (GoalStats, error) {
	goals, err := database.GetGoalsByOrganization(ctx, m.pool, orgID)
	if err != nil {
		return GoalStats{}, err
	}
	return computeStats(goals), nil
}

func (m *Manager) fail(orgID uuid.UUID, event AssetChangeEvent, err error) error {
	m.log.Error().
		Err(err).
		Str("organization_id", orgID.String()).
		Str("event", string(event.Type)).
		Msg("goal sync aborted")
	return fmt.Errorf("%w for organization %s: %w", ErrSyncFailed, orgID, err)
}

// amountForCategory maps a goal category to its achievement amount. Every
// category currently resolves to the active-asset total; the parameter is a
// placeholder for future per-category differentiation, not a live dispatch.
func amountForCategory(_ string, totalAssets decimal.Decimal) decimal.Decimal {
	return totalAssets
}

// achievementRate returns current/target*100, with a zero target reading as
// 0 instead of dividing.
func achievementRate(current, target decimal.Decimal) decimal.Decimal {
	if target.IsZero() {
		return decimal.Zero
	}
	return current.Div(target).Mul(decimal.NewFromInt(100))
}
