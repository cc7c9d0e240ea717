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

func CreateCategory(ctx context.Context, pool *pgxpool.Pool, category *models.Category) error {
	err := pool.QueryRow(ctx, `
		INSERT INTO categories (organization_id, name, type)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		category.OrganizationID,
		category.Name,
		category.Type).Scan(&category.ID, &category.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating category: %w", err)
	}
	return nil
}

func GetCategoryByID(ctx context.Context, pool *pgxpool.Pool, orgID, categoryID uuid.UUID) (*models.Category, error) {
	category := &models.Category{}
	err := pool.QueryRow(ctx, `
		SELECT id, organization_id, name, type, created_at
		FROM categories
		WHERE id = $1 AND organization_id = $2`, categoryID, orgID).Scan(
		&category.ID,
		&category.OrganizationID,
		&category.Name,
		&category.Type,
		&category.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetching category: %w", err)
	}
	return category, nil
}

func GetCategoriesByOrganization(ctx context.Context, pool *pgxpool.Pool, orgID uuid.UUID) ([]models.Category, error) {
	rows, err := pool.Query(ctx, `
		SELECT id, organization_id, name, type, created_at
		FROM categories
		WHERE organization_id = $1
		ORDER BY name`, orgID)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0)
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.OrganizationID, &c.Name, &c.Type, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func UpdateCategory(ctx context.Context, pool *pgxpool.Pool, category *models.Category) error {
	tag, err := pool.Exec(ctx, `
		UPDATE categories
		SET name = $1, type = $2
		WHERE id = $3 AND organization_id = $4`,
		category.Name,
		category.Type,
		category.ID,
		category.OrganizationID)
	if err != nil {
		return fmt.Errorf("updating category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteCategory(ctx context.Context, pool *pgxpool.Pool, orgID, categoryID uuid.UUID) error {
	tag, err := pool.Exec(ctx, `
		DELETE FROM categories
		WHERE id = $1 AND organization_id = $2`, categoryID, orgID)
	if err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
