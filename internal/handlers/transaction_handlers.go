package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/finwell/team-finance-app/internal/database"
	"github.com/finwell/team-finance-app/models"
)

type transactionRequest struct {
	OrganizationID  string    `json:"organization_id"`
	CategoryID      string    `json:"category_id"`
	PaymentMethodID string    `json:"payment_method_id"`
	Amount          *float64  `json:"amount"`
	Type            string    `json:"type"`
	Description     string    `json:"description"`
	TransactionDate time.Time `json:"transaction_date"`
}

func (r *transactionRequest) validate(c *gin.Context) (*models.Transaction, bool) {
	if err := c.ShouldBindJSON(r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return nil, false
	}
	orgID, err := uuid.Parse(r.OrganizationID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "organization_id must be a valid UUID"})
		return nil, false
	}
	categoryID, err := uuid.Parse(r.CategoryID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category_id must be a valid UUID"})
		return nil, false
	}
	if r.Amount == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount is required"})
		return nil, false
	}
	if r.Type != "income" && r.Type != "expense" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be income or expense"})
		return nil, false
	}

	tx := &models.Transaction{
		OrganizationID:  orgID,
		CategoryID:      categoryID,
		Amount:          *r.Amount,
		Type:            r.Type,
		Description:     r.Description,
		TransactionDate: r.TransactionDate,
	}
	if tx.TransactionDate.IsZero() {
		tx.TransactionDate = time.Now().UTC()
	}
	if r.PaymentMethodID != "" {
		pmID, err := uuid.Parse(r.PaymentMethodID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "payment_method_id must be a valid UUID"})
			return nil, false
		}
		tx.PaymentMethodID = &pmID
	}
	return tx, true
}

func ListTransactionsHandler(pool *pgxpool.Pool, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orgID, ok := orgIDFromQuery(c)
		if !ok {
			return
		}
		txs, err := database.GetTransactionsByOrganization(c.Request.Context(), pool, orgID)
		if err != nil {
			writeDBError(c, log, err, "failed to list transactions")
			return
		}
		c.JSON(http.StatusOK, txs)
	}
}

func CreateTransactionHandler(pool *pgxpool.Pool, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req transactionRequest
		tx, ok := req.validate(c)
		if !ok {
			return
		}
		if err := database.CreateTransaction(c.Request.Context(), pool, tx); err != nil {
			writeDBError(c, log, err, "failed to create transaction")
			return
		}
		c.JSON(http.StatusCreated, tx)
	}
}

func UpdateTransactionHandler(pool *pgxpool.Pool, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		txID, ok := pathID(c, "id")
		if !ok {
			return
		}
		var req transactionRequest
		tx, ok := req.validate(c)
		if !ok {
			return
		}
		tx.ID = txID
		if err := database.UpdateTransaction(c.Request.Context(), pool, tx); err != nil {
			writeDBError(c, log, err, "failed to update transaction")
			return
		}
		c.JSON(http.StatusOK, tx)
	}
}

func DeleteTransactionHandler(pool *pgxpool.Pool, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		txID, ok := pathID(c, "id")
		if !ok {
			return
		}
		orgID, ok := orgIDFromQuery(c)
		if !ok {
			return
		}
		if err := database.DeleteTransaction(c.Request.Context(), pool, orgID, txID); err != nil {
			writeDBError(c, log, err, "failed to delete transaction")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "transaction deleted"})
	}
}
