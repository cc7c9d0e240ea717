package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	GoalStatusActive    = "active"
	GoalStatusPaused    = "paused"
	GoalStatusCompleted = "completed"
)

type FinancialGoal struct {
	ID             uuid.UUID `json:"id" db:"id"`
	OrganizationID uuid.UUID `json:"organization_id" db:"organization_id"`
	Name           string    `json:"name" db:"name"`
	Category       string    `json:"category" db:"category"`
	TargetAmount   float64   `json:"target_amount" db:"target_amount"`
	CurrentAmount  float64   `json:"current_amount" db:"current_amount"`
	Status         string    `json:"status" db:"status"`
	Priority       int       `json:"priority" db:"priority"`
	StartDate      time.Time `json:"start_date" db:"start_date"`
	TargetDate     time.Time `json:"target_date" db:"target_date"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

func (g *FinancialGoal) RemainingAmount() float64 {
	return g.TargetAmount - g.CurrentAmount
}

// AchievementRate returns progress as a percentage. A zero target never
// divides; it reads as 0% regardless of the current amount.
func (g *FinancialGoal) AchievementRate() float64 {
	if g.TargetAmount == 0 {
		return 0
	}
	return g.CurrentAmount / g.TargetAmount * 100
}

// IsSyncable reports whether the goal participates in achievement recompute.
// Completed goals stay completed; they are never pulled back into the set.
func (g *FinancialGoal) IsSyncable() bool {
	return g.Status == GoalStatusActive || g.Status == GoalStatusPaused
}
