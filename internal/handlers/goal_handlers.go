package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/finwell/team-finance-app/internal/database"
	"github.com/finwell/team-finance-app/internal/goalsync"
	"github.com/finwell/team-finance-app/models"
)

type goalRequest struct {
	OrganizationID string    `json:"organization_id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	TargetAmount   *float64  `json:"target_amount"`
	Status         string    `json:"status"`
	Priority       int       `json:"priority"`
	StartDate      time.Time `json:"start_date"`
	TargetDate     time.Time `json:"target_date"`
}

func (r *goalRequest) validate(c *gin.Context) (uuid.UUID, bool) {
	if err := c.ShouldBindJSON(r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return uuid.Nil, false
	}
	orgID, err := uuid.Parse(r.OrganizationID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "organization_id must be a valid UUID"})
		return uuid.Nil, false
	}
	if r.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return uuid.Nil, false
	}
	if r.TargetAmount == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "target_amount is required"})
		return uuid.Nil, false
	}
	if r.Status != "" && r.Status != models.GoalStatusActive &&
		r.Status != models.GoalStatusPaused && r.Status != models.GoalStatusCompleted {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be active, paused or completed"})
		return uuid.Nil, false
	}
	return orgID, true
}

func ListGoalsHandler(pool *pgxpool.Pool, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orgID, ok := orgIDFromQuery(c)
		if !ok {
			return
		}
		goals, err := database.GetGoalsByOrganization(c.Request.Context(), pool, orgID)
		if err != nil {
			writeDBError(c, log, err, "failed to list goals")
			return
		}
		c.JSON(http.StatusOK, goals)
	}
}

func CreateGoalHandler(pool *pgxpool.Pool, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req goalRequest
		orgID, ok := req.validate(c)
		if !ok {
			return
		}

		goal := &models.FinancialGoal{
			OrganizationID: orgID,
			Name:           req.Name,
			Category:       req.Category,
			TargetAmount:   *req.TargetAmount,
			Status:         req.Status,
			Priority:       req.Priority,
			StartDate:      req.StartDate,
			TargetDate:     req.TargetDate,
		}
		if err := database.CreateGoal(c.Request.Context(), pool, goal); err != nil {
			writeDBError(c, log, err, "failed to create goal")
			return
		}
		c.JSON(http.StatusCreated, goal)
	}
}

func UpdateGoalHandler(pool *pgxpool.Pool, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		goalID, ok := pathID(c, "id")
		if !ok {
			return
		}
		var req goalRequest
		orgID, ok := req.validate(c)
		if !ok {
			return
		}

		goal := &models.FinancialGoal{
			ID:             goalID,
			OrganizationID: orgID,
			Name:           req.Name,
			Category:       req.Category,
			TargetAmount:   *req.TargetAmount,
			Status:         req.Status,
			Priority:       req.Priority,
			StartDate:      req.StartDate,
			TargetDate:     req.TargetDate,
		}
		// An omitted status keeps the stored one. Defaulting here would let
		// a rename pull a completed goal back to active.
		if goal.Status == "" {
			existing, err := database.GetGoalByID(c.Request.Context(), pool, orgID, goalID)
			if err != nil {
				writeDBError(c, log, err, "failed to load goal")
				return
			}
			goal.Status = existing.Status
		}
		if err := database.UpdateGoal(c.Request.Context(), pool, goal); err != nil {
			writeDBError(c, log, err, "failed to update goal")
			return
		}
		c.JSON(http.StatusOK, goal)
	}
}

func DeleteGoalHandler(pool *pgxpool.Pool, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		goalID, ok := pathID(c, "id")
		if !ok {
			return
		}
		orgID, ok := orgIDFromQuery(c)
		if !ok {
			return
		}
		if err := database.DeleteGoal(c.Request.Context(), pool, orgID, goalID); err != nil {
			writeDBError(c, log, err, "failed to delete goal")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "goal deleted"})
	}
}

// SyncGoalsHandler forces a full recompute for the organization.
func SyncGoalsHandler(sync *goalsync.Manager, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orgID, ok := orgIDFromQuery(c)
		if !ok {
			return
		}
		if err := sync.SyncAllGoals(c.Request.Context(), orgID); err != nil {
			writeDBError(c, log, err, "failed to synchronize goals")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "goals synchronized"})
	}
}

func GoalStatsHandler(sync *goalsync.Manager, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orgID, ok := orgIDFromQuery(c)
		if !ok {
			return
		}
		stats, err := sync.GetGoalStats(c.Request.Context(), orgID)
		if err != nil {
			writeDBError(c, log, err, "failed to compute goal stats")
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

// GoalCurrentAmountHandler exposes the read-only formula for one goal.
func GoalCurrentAmountHandler(sync *goalsync.Manager, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		goalID, ok := pathID(c, "id")
		if !ok {
			return
		}
		orgID, ok := orgIDFromQuery(c)
		if !ok {
			return
		}
		amount, err := sync.CalculateCurrentAmount(c.Request.Context(), orgID, goalID)
		if err != nil {
			writeDBError(c, log, err, "failed to calculate current amount")
			return
		}
		c.JSON(http.StatusOK, gin.H{"goal_id": goalID, "current_amount": amount})
	}
}
