package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finwell/team-finance-app/models"
)

func CreateAsset(ctx context.Context, pool *pgxpool.Pool, asset *models.Asset) error {
	err := pool.QueryRow(ctx, `
		INSERT INTO assets (organization_id, name, category, current_value, target_value, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		asset.OrganizationID,
		asset.Name,
		asset.Category,
		asset.CurrentValue,
		asset.TargetValue,
		asset.IsActive).Scan(&asset.ID, &asset.CreatedAt, &asset.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating asset: %w", err)
	}
	return nil
}

func GetAssetByID(ctx context.Context, pool *pgxpool.Pool, orgID, assetID uuid.UUID) (*models.Asset, error) {
	asset := &models.Asset{}
	err := pool.QueryRow(ctx, `
		SELECT id, organization_id, name, category, current_value, target_value, is_active, created_at, updated_at
		FROM assets
		WHERE id = $1 AND organization_id = $2`, assetID, orgID).Scan(
		&asset.ID,
		&asset.OrganizationID,
		&asset.Name,
		&asset.Category,
		&asset.CurrentValue,
		&asset.TargetValue,
		&asset.IsActive,
		&asset.CreatedAt,
		&asset.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetching asset: %w", err)
	}
	return asset, nil
}

func GetAssetsByOrganization(ctx context.Context, pool *pgxpool.Pool, orgID uuid.UUID) ([]models.Asset, error) {
	rows, err := pool.Query(ctx, `
		SELECT id, organization_id, name, category, current_value, target_value, is_active, created_at, updated_at
		FROM assets
		WHERE organization_id = $1
		ORDER BY created_at`, orgID)
	if err != nil {
		return nil, fmt.Errorf("listing assets: %w", err)
	}
	defer rows.Close()

	assets := make([]models.Asset, 0)
	for rows.Next() {
		var a models.Asset
		if err := rows.Scan(&a.ID, &a.OrganizationID, &a.Name, &a.Category, &a.CurrentValue,
			&a.TargetValue, &a.IsActive, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning asset: %w", err)
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

// UpdateAsset rewrites the row only when it belongs to the given
// organization; a cross-organization id reads as ErrNotFound.
func UpdateAsset(ctx context.Context, pool *pgxpool.Pool, asset *models.Asset) error {
	tag, err := pool.Exec(ctx, `
		UPDATE assets
		SET name = $1, category = $2, current_value = $3, target_value = $4, is_active = $5, updated_at = now()
		WHERE id = $6 AND organization_id = $7`,
		asset.Name,
		asset.Category,
		asset.CurrentValue,
		asset.TargetValue,
		asset.IsActive,
		asset.ID,
		asset.OrganizationID)
	if err != nil {
		return fmt.Errorf("updating asset: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteAsset(ctx context.Context, pool *pgxpool.Pool, orgID, assetID uuid.UUID) error {
	tag, err := pool.Exec(ctx, `
		DELETE FROM assets
		WHERE id = $1 AND organization_id = $2`, assetID, orgID)
	if err != nil {
		return fmt.Errorf("deleting asset: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
