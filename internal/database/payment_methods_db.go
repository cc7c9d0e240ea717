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

func CreatePaymentMethod(ctx context.Context, pool *pgxpool.Pool, pm *models.PaymentMethod) error {
	err := pool.QueryRow(ctx, `
		INSERT INTO payment_methods (organization_id, name, kind)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		pm.OrganizationID,
		pm.Name,
		pm.Kind).Scan(&pm.ID, &pm.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating payment method: %w", err)
	}
	return nil
}

func GetPaymentMethodByID(ctx context.Context, pool *pgxpool.Pool, orgID, pmID uuid.UUID) (*models.PaymentMethod, error) {
	pm := &models.PaymentMethod{}
	err := pool.QueryRow(ctx, `
		SELECT id, organization_id, name, kind, created_at
		FROM payment_methods
		WHERE id = $1 AND organization_id = $2`, pmID, orgID).Scan(
		&pm.ID,
		&pm.OrganizationID,
		&pm.Name,
		&pm.Kind,
		&pm.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetching payment method: %w", err)
	}
	return pm, nil
}

func GetPaymentMethodsByOrganization(ctx context.Context, pool *pgxpool.Pool, orgID uuid.UUID) ([]models.PaymentMethod, error) {
	rows, err := pool.Query(ctx, `
		SELECT id, organization_id, name, kind, created_at
		FROM payment_methods
		WHERE organization_id = $1
		ORDER BY name`, orgID)
	if err != nil {
		return nil, fmt.Errorf("listing payment methods: %w", err)
	}
	defer rows.Close()

	methods := make([]models.PaymentMethod, 0)
	for rows.Next() {
		var pm models.PaymentMethod
		if err := rows.Scan(&pm.ID, &pm.OrganizationID, &pm.Name, &pm.Kind, &pm.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning payment method: %w", err)
		}
		methods = append(methods, pm)
	}
	return methods, rows.Err()
}

func UpdatePaymentMethod(ctx context.Context, pool *pgxpool.Pool, pm *models.PaymentMethod) error {
	tag, err := pool.Exec(ctx, `
		UPDATE payment_methods
		SET name = $1, kind = $2
		WHERE id = $3 AND organization_id = $4`,
		pm.Name,
		pm.Kind,
		pm.ID,
		pm.OrganizationID)
	if err != nil {
		return fmt.Errorf("updating payment method: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func DeletePaymentMethod(ctx context.Context, pool *pgxpool.Pool, orgID, pmID uuid.UUID) error {
	tag, err := pool.Exec(ctx, `
		DELETE FROM payment_methods
		WHERE id = $1 AND organization_id = $2`, pmID, orgID)
	if err != nil {
		return fmt.Errorf("deleting payment method: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
