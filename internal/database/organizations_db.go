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

// ErrNotFound covers both a missing row and a row outside the caller's
// organization. Handlers translate it to 404 without distinguishing the two.
var ErrNotFound = errors.New("not found or access denied")

// CreateOrganization inserts the organization and enrolls the creator as owner.
func CreateOrganization(ctx context.Context, pool *pgxpool.Pool, org *models.Organization, ownerUserID uuid.UUID) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("creating organization: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO organizations (name, description)
		VALUES ($1, $2)
		RETURNING id, created_at`,
		org.Name, org.Description).Scan(&org.ID, &org.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating organization: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO organization_members (organization_id, user_id, role)
		VALUES ($1, $2, 'owner')`,
		org.ID, ownerUserID)
	if err != nil {
		return fmt.Errorf("adding organization owner: %w", err)
	}

	return tx.Commit(ctx)
}

func GetOrganizationByID(ctx context.Context, pool *pgxpool.Pool, orgID uuid.UUID) (*models.Organization, error) {
	org := &models.Organization{}
	err := pool.QueryRow(ctx, `
		SELECT id, name, description, created_at
		FROM organizations
		WHERE id = $1`, orgID).Scan(&org.ID, &org.Name, &org.Description, &org.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetching organization: %w", err)
	}
	return org, nil
}

// GetOrganizationsByUser lists organizations the user is a member of.
func GetOrganizationsByUser(ctx context.Context, pool *pgxpool.Pool, userID uuid.UUID) ([]models.Organization, error) {
	rows, err := pool.Query(ctx, `
		SELECT o.id, o.name, o.description, o.created_at
		FROM organizations o
		JOIN organization_members m ON m.organization_id = o.id
		WHERE m.user_id = $1
		ORDER BY o.created_at`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing organizations: %w", err)
	}
	defer rows.Close()

	orgs := make([]models.Organization, 0)
	for rows.Next() {
		var org models.Organization
		if err := rows.Scan(&org.ID, &org.Name, &org.Description, &org.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning organization: %w", err)
		}
		orgs = append(orgs, org)
	}
	return orgs, rows.Err()
}

// CheckMembership returns the organization's public fields only when a
// membership row links the user to it; otherwise ErrNotFound.
func CheckMembership(ctx context.Context, pool *pgxpool.Pool, orgID, userID uuid.UUID) (*models.Organization, error) {
	org := &models.Organization{}
	err := pool.QueryRow(ctx, `
		SELECT o.id, o.name, o.description, o.created_at
		FROM organizations o
		JOIN organization_members m ON m.organization_id = o.id
		WHERE o.id = $1 AND m.user_id = $2`, orgID, userID).
		Scan(&org.ID, &org.Name, &org.Description, &org.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("checking membership: %w", err)
	}
	return org, nil
}

func AddMember(ctx context.Context, pool *pgxpool.Pool, member *models.OrganizationMember) error {
	err := pool.QueryRow(ctx, `
		INSERT INTO organization_members (organization_id, user_id, role)
		VALUES ($1, $2, $3)
		RETURNING id, joined_at`,
		member.OrganizationID, member.UserID, member.Role).
		Scan(&member.ID, &member.JoinedAt)
	if err != nil {
		return fmt.Errorf("adding member: %w", err)
	}
	return nil
}

func GetMembers(ctx context.Context, pool *pgxpool.Pool, orgID uuid.UUID) ([]models.OrganizationMember, error) {
	rows, err := pool.Query(ctx, `
		SELECT id, organization_id, user_id, role, joined_at
		FROM organization_members
		WHERE organization_id = $1
		ORDER BY joined_at`, orgID)
	if err != nil {
		return nil, fmt.Errorf("listing members: %w", err)
	}
	defer rows.Close()

	members := make([]models.OrganizationMember, 0)
	for rows.Next() {
		var m models.OrganizationMember
		if err := rows.Scan(&m.ID, &m.OrganizationID, &m.UserID, &m.Role, &m.JoinedAt); err != nil {
			return nil, fmt.Errorf("scanning member: %w", err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// ListOrganizationIDs returns every organization id. Used by the scheduled
// full re-sync.
func ListOrganizationIDs(ctx context.Context, pool *pgxpool.Pool) ([]uuid.UUID, error) {
	rows, err := pool.Query(ctx, `SELECT id FROM organizations`)
	if err != nil {
		return nil, fmt.Errorf("listing organization ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning organization id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
