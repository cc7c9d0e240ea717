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

func CreateTransaction(ctx context.Context, pool *pgxpool.Pool, tx *models.Transaction) error {
	err := pool.QueryRow(ctx, `
		INSERT INTO transactions (organization_id, category_id, payment_method_id, amount, type, description, transaction_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`,
		tx.OrganizationID,
		tx.CategoryID,
		tx.PaymentMethodID,
		tx.Amount,
		tx.Type,
		tx.Description,
		tx.TransactionDate).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}
	return nil
}

func GetTransactionByID(ctx context.Context, pool *pgxpool.Pool, orgID, txID uuid.UUID) (*models.Transaction, error) {
	tx := &models.Transaction{}
	err := pool.QueryRow(ctx, `
		SELECT id, organization_id, category_id, payment_method_id, amount, type, description, transaction_date, created_at
		FROM transactions
		WHERE id = $1 AND organization_id = $2`, txID, orgID).Scan(
		&tx.ID,
		&tx.OrganizationID,
		&tx.CategoryID,
		&tx.PaymentMethodID,
		&tx.Amount,
		&tx.Type,
		&tx.Description,
		&tx.TransactionDate,
		&tx.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetching transaction: %w", err)
	}
	return tx, nil
}

func GetTransactionsByOrganization(ctx context.Context, pool *pgxpool.Pool, orgID uuid.UUID) ([]models.Transaction, error) {
	rows, err := pool.Query(ctx, `
		SELECT id, organization_id, category_id, payment_method_id, amount, type, description, transaction_date, created_at
		FROM transactions
		WHERE organization_id = $1
		ORDER BY transaction_date DESC, created_at DESC`, orgID)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	txs := make([]models.Transaction, 0)
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.OrganizationID, &t.CategoryID, &t.PaymentMethodID,
			&t.Amount, &t.Type, &t.Description, &t.TransactionDate, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}

func UpdateTransaction(ctx context.Context, pool *pgxpool.Pool, tx *models.Transaction) error {
	tag, err := pool.Exec(ctx, `
		UPDATE transactions
		SET category_id = $1, payment_method_id = $2, amount = $3, type = $4, description = $5, transaction_date = $6
		WHERE id = $7 AND organization_id = $8`,
		tx.CategoryID,
		tx.PaymentMethodID,
		tx.Amount,
		tx.Type,
		tx.Description,
		tx.TransactionDate,
		tx.ID,
		tx.OrganizationID)
	if err != nil {
		return fmt.Errorf("updating transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteTransaction(ctx context.Context, pool *pgxpool.Pool, orgID, txID uuid.UUID) error {
	tag, err := pool.Exec(ctx, `
		DELETE FROM transactions
		WHERE id = $1 AND organization_id = $2`, txID, orgID)
	if err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
