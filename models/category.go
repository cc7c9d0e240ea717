package models

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID             uuid.UUID `json:"id" db:"id"`
	OrganizationID uuid.UUID `json:"organization_id" db:"organization_id"`
	Name           string    `json:"name" db:"name"`
	Type           string    `json:"type" db:"type"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
