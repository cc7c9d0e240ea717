package models

import (
	"time"

	"github.com/google/uuid"
)

type Transaction struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	OrganizationID  uuid.UUID  `json:"organization_id" db:"organization_id"`
	CategoryID      uuid.UUID  `json:"category_id" db:"category_id"`
	PaymentMethodID *uuid.UUID `json:"payment_method_id,omitempty" db:"payment_method_id"`
	Amount          float64    `json:"amount" db:"amount"`
	Type            string     `json:"type" db:"type"`
	Description     string     `json:"description" db:"description"`
	TransactionDate time.Time  `json:"transaction_date" db:"transaction_date"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
}
