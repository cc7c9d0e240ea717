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

type paymentMethodRequest struct {
	OrganizationID string `json:"organization_id"`
	Name           string `json:"name"`
	Kind           string `json:"kind"`
}

func (r *paymentMethodRequest) validate(c *gin.Context) (uuid.UUID, bool) {
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
	return orgID, true
}

func ListPaymentMethodsHandler(pool *pgxpool.Pool, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orgID, ok := orgIDFromQuery(c)
		if !ok {
			return
		}
		methods, err := database.GetPaymentMethodsByOrganization(c.Request.Context(), pool, orgID)
		if err != nil {
			writeDBError(c, log, err, "failed to list payment methods")
			return
		}
		c.JSON(http.StatusOK, methods)
	}
}

func CreatePaymentMethodHandler(pool *pgxpool.Pool, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req paymentMethodRequest
		orgID, ok := req.validate(c)
		if !ok {
			return
		}
		pm := &models.PaymentMethod{
			OrganizationID: orgID,
			Name:           req.Name,
			Kind:           req.Kind,
		}
		if err := database.CreatePaymentMethod(c.Request.Context(), pool, pm); err != nil {
			writeDBError(c, log, err, "failed to create payment method")
			return
		}
		c.JSON(http.StatusCreated, pm)
	}
}

func UpdatePaymentMethodHandler(pool *pgxpool.Pool, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		pmID, ok := pathID(c, "id")
		if !ok {
			return
		}
		var req paymentMethodRequest
		orgID, ok := req.validate(c)
		if !ok {
			return
		}
		pm := &models.PaymentMethod{
			ID:             pmID,
			OrganizationID: orgID,
			Name:           req.Name,
			Kind:           req.Kind,
		}
		if err := database.UpdatePaymentMethod(c.Request.Context(), pool, pm); err != nil {
			writeDBError(c, log, err, "failed to update payment method")
			return
		}
		c.JSON(http.StatusOK, pm)
	}
}

func DeletePaymentMethodHandler(pool *pgxpool.Pool, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		pmID, ok := pathID(c, "id")
		if !ok {
			return
		}
		orgID, ok := orgIDFromQuery(c)
		if !ok {
			return
		}
		if err := database.DeletePaymentMethod(c.Request.Context(), pool, orgID, pmID); err != nil {
			writeDBError(c, log, err, "failed to delete payment method")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "payment method deleted"})
	}
}
