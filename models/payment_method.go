package models

import (
	"time"

	"github.com/google/uuid"
)

type PaymentMethod struct {
	ID             uuid.UUID `json:"id" db:"id"`
	OrganizationID uuid.UUID `json:"organization_id" db:"organization_id"`
	Name           string    `json:"name" db:"name"`
	Kind           string    `json:"kind" db:"kind"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
