package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/finwell/team-finance-app/internal/database"
	"github.com/finwell/team-finance-app/internal/goalsync"
	"github.com/finwell/team-finance-app/models"
)

// assetRequest uses pointers for the numeric fields so an omitted value is
// distinguishable from an explicit zero.
type assetRequest struct {
	OrganizationID string   `json:"organization_id"`
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	CurrentValue   *float64 `json:"current_value"`
	TargetValue    *float64 `json:"target_value"`
	IsActive       *bool    `json:"is_active"`
}

func (r *assetRequest) validate(c *gin.Context) (uuid.UUID, bool) {
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
	if r.Category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category is required"})
		return uuid.Nil, false
	}
	if r.CurrentValue == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "current_value is required"})
		return uuid.Nil, false
	}
	return orgID, true
}

func ListAssetsHandler(pool *pgxpool.Pool, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orgID, ok := orgIDFromQuery(c)
		if !ok {
			return
		}
		assets, err := database.GetAssetsByOrganization(c.Request.Context(), pool, orgID)
		if err != nil {
			writeDBError(c, log, err, "failed to list assets")
			return
		}
		c.JSON(http.StatusOK, assets)
	}
}

func CreateAssetHandler(pool *pgxpool.Pool, sync *goalsync.Manager, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req assetRequest
		orgID, ok := req.validate(c)
		if !ok {
			return
		}

		asset := &models.Asset{
			OrganizationID: orgID,
			Name:           req.Name,
			Category:       req.Category,
			CurrentValue:   *req.CurrentValue,
			IsActive:       true,
		}
		if req.TargetValue != nil {
			asset.TargetValue = *req.TargetValue
		}
		if req.IsActive != nil {
			asset.IsActive = *req.IsActive
		}

		if err := database.CreateAsset(c.Request.Context(), pool, asset); err != nil {
			writeDBError(c, log, err, "failed to create asset")
			return
		}

		if err := sync.TriggerSync(c.Request.Context(), orgID, goalsync.AssetChangeEvent{
			Type:         goalsync.EventAssetCreated,
			AssetID:      asset.ID,
			CurrentValue: asset.CurrentValue,
		}); err != nil {
			writeDBError(c, log, err, "failed to synchronize goals")
			return
		}

		c.JSON(http.StatusCreated, asset)
	}
}

func UpdateAssetHandler(pool *pgxpool.Pool, sync *goalsync.Manager, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		assetID, ok := pathID(c, "id")
		if !ok {
			return
		}
		var req assetRequest
		orgID, ok := req.validate(c)
		if !ok {
			return
		}

		// Re-verify the row belongs to this organization and capture the
		// previous value for the sync event.
		previous, err := database.GetAssetByID(c.Request.Context(), pool, orgID, assetID)
		if err != nil {
			writeDBError(c, log, err, "failed to load asset")
			return
		}

		asset := &models.Asset{
			ID:             assetID,
			OrganizationID: orgID,
			Name:           req.Name,
			Category:       req.Category,
			CurrentValue:   *req.CurrentValue,
			TargetValue:    previous.TargetValue,
			IsActive:       previous.IsActive,
		}
		if req.TargetValue != nil {
			asset.TargetValue = *req.TargetValue
		}
		if req.IsActive != nil {
			asset.IsActive = *req.IsActive
		}

		if err := database.UpdateAsset(c.Request.Context(), pool, asset); err != nil {
			writeDBError(c, log, err, "failed to update asset")
			return
		}

		if err := sync.TriggerSync(c.Request.Context(), orgID, goalsync.AssetChangeEvent{
			Type:          goalsync.EventAssetUpdated,
			AssetID:       assetID,
			PreviousValue: previous.CurrentValue,
			CurrentValue:  asset.CurrentValue,
		}); err != nil {
			writeDBError(c, log, err, "failed to synchronize goals")
			return
		}

		c.JSON(http.StatusOK, asset)
	}
}

func DeleteAssetHandler(pool *pgxpool.Pool, sync *goalsync.Manager, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		assetID, ok := pathID(c, "id")
		if !ok {
			return
		}
		orgID, ok := orgIDFromQuery(c)
		if !ok {
			return
		}

		previous, err := database.GetAssetByID(c.Request.Context(), pool, orgID, assetID)
		if err != nil {
			writeDBError(c, log, err, "failed to load asset")
			return
		}

		if err := database.DeleteAsset(c.Request.Context(), pool, orgID, assetID); err != nil {
			writeDBError(c, log, err, "failed to delete asset")
			return
		}

		if err := sync.TriggerSync(c.Request.Context(), orgID, goalsync.AssetChangeEvent{
			Type:          goalsync.EventAssetDeleted,
			AssetID:       assetID,
			PreviousValue: previous.CurrentValue,
		}); err != nil {
			writeDBError(c, log, err, "failed to synchronize goals")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "asset deleted"})
	}
}
