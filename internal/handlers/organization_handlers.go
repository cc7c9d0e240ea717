package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/finwell/team-finance-app/internal/database"
	"github.com/finwell/team-finance-app/models"
)

func CreateOrganizationHandler(pool *pgxpool.Pool, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			OwnerUserID string `json:"owner_user_id"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if req.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}
		ownerID, err := uuid.Parse(req.OwnerUserID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "owner_user_id must be a valid UUID"})
			return
		}

		org := &models.Organization{Name: req.Name, Description: req.Description}
		if err := database.CreateOrganization(c.Request.Context(), pool, org, ownerID); err != nil {
			writeDBError(c, log, err, "failed to create organization")
			return
		}
		c.JSON(http.StatusCreated, org)
	}
}

// ListOrganizationsHandler lists the organizations a user belongs to.
func ListOrganizationsHandler(pool *pgxpool.Pool, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := uuid.Parse(c.Query("userId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userId must be a valid UUID"})
			return
		}
		orgs, err := database.GetOrganizationsByUser(c.Request.Context(), pool, userID)
		if err != nil {
			writeDBError(c, log, err, "failed to list organizations")
			return
		}
		c.JSON(http.StatusOK, orgs)
	}
}

// CheckMembershipHandler returns the organization's public fields only when
// the user is a member; otherwise the caller cannot tell whether the
// organization exists at all.
func CheckMembershipHandler(pool *pgxpool.Pool, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orgID, ok := pathID(c, "id")
		if !ok {
			return
		}
		userID, err := uuid.Parse(c.Query("userId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userId must be a valid UUID"})
			return
		}

		org, err := database.CheckMembership(c.Request.Context(), pool, orgID, userID)
		if err != nil {
			writeDBError(c, log, err, "failed to check membership")
			return
		}
		c.JSON(http.StatusOK, org)
	}
}

func ListMembersHandler(pool *pgxpool.Pool, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orgID, ok := pathID(c, "id")
		if !ok {
			return
		}
		members, err := database.GetMembers(c.Request.Context(), pool, orgID)
		if err != nil {
			writeDBError(c, log, err, "failed to list members")
			return
		}
		c.JSON(http.StatusOK, members)
	}
}

func AddMemberHandler(pool *pgxpool.Pool, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orgID, ok := pathID(c, "id")
		if !ok {
			return
		}
		var req struct {
			UserID string `json:"user_id"`
			Role   string `json:"role"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		userID, err := uuid.Parse(req.UserID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id must be a valid UUID"})
			return
		}
		if req.Role == "" {
			req.Role = "member"
		}

		member := &models.OrganizationMember{
			OrganizationID: orgID,
			UserID:         userID,
			Role:           req.Role,
		}
		if err := database.AddMember(c.Request.Context(), pool, member); err != nil {
			writeDBError(c, log, err, "failed to add member")
			return
		}
		c.JSON(http.StatusCreated, member)
	}
}
