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

type categoryRequest struct {
	OrganizationID string `json:"organization_id"`
	Name           string `json:"name"`
	Type           string `json:"type"`
}

func (r *categoryRequest) validate(c *gin.Context) (uuid.UUID, bool) {
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
	if r.Type != "income" && r.Type != "expense" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be income or expense"})
		return uuid.Nil, false
	}
	return orgID, true
}

func ListCategoriesHandler(pool *pgxpool.Pool, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orgID, ok := orgIDFromQuery(c)
		if !ok {
			return
		}
		categories, err := database.GetCategoriesByOrganization(c.Request.Context(), pool, orgID)
		if err != nil {
			writeDBError(c, log, err, "failed to list categories")
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

func CreateCategoryHandler(pool *pgxpool.Pool, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req categoryRequest
		orgID, ok := req.validate(c)
		if !ok {
			return
		}
		category := &models.Category{
			OrganizationID: orgID,
			Name:           req.Name,
			Type:           req.Type,
		}
		if err := database.CreateCategory(c.Request.Context(), pool, category); err != nil {
			writeDBError(c, log, err, "failed to create category")
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

func UpdateCategoryHandler(pool *pgxpool.Pool, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID, ok := pathID(c, "id")
		if !ok {
			return
		}
		var req categoryRequest
		orgID, ok := req.validate(c)
		if !ok {
			return
		}
		category := &models.Category{
			ID:             categoryID,
			OrganizationID: orgID,
			Name:           req.Name,
			Type:           req.Type,
		}
		if err := database.UpdateCategory(c.Request.Context(), pool, category); err != nil {
			writeDBError(c, log, err, "failed to update category")
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

func DeleteCategoryHandler(pool *pgxpool.Pool, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID, ok := pathID(c, "id")
		if !ok {
			return
		}
		orgID, ok := orgIDFromQuery(c)
		if !ok {
			return
		}
		if err := database.DeleteCategory(c.Request.Context(), pool, orgID, categoryID); err != nil {
			writeDBError(c, log, err, "failed to delete category")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
	}
}
