package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/finwell/team-finance-app/internal/database"
)

// DashboardHandler returns per-entity counts for one organization plus the
// time of the read.
func DashboardHandler(pool *pgxpool.Pool, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orgID, ok := orgIDFromQuery(c)
		if !ok {
			return
		}
		counts, err := database.GetDashboardCounts(c.Request.Context(), pool, orgID)
		if err != nil {
			writeDBError(c, log, err, "failed to load dashboard")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"counts":       counts,
			"generated_at": time.Now().UTC(),
		})
	}
}
