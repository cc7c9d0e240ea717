package models

import (
	"time"

	"github.com/google/uuid"
)

type Asset struct {
	ID             uuid.UUID `json:"id" db:"id"`
	OrganizationID uuid.UUID `json:"organization_id" db:"organization_id"`
	Name           string    `json:"name" db:"name"`
	Category       string    `json:"category" db:"category"`
	CurrentValue   float64   `json:"current_value" db:"current_value"`
	TargetValue    float64   `json:"target_value" db:"target_value"`
	IsActive       bool      `json:"is_active" db:"is_active"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}
