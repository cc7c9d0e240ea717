// Package handlers contains the gin handler factories for the JSON API.
// Every handler re-checks organization scope through the query it issues;
// a row outside the caller's organization is indistinguishable from a
// missing one.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/finwell/team-finance-app/internal/database"
)

// orgIDFromQuery parses the organizationId query parameter. A missing or
// malformed value writes the 400 itself and reports false.
func orgIDFromQuery(c *gin.Context) (uuid.UUID, bool) {
	raw := c.Query("organizationId")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "organizationId is required"})
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "organizationId must be a valid UUID"})
		return uuid.Nil, false
	}
	return id, true
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a valid UUID"})
		return uuid.Nil, false
	}
	return id, true
}

// writeDBError maps storage errors to the response taxonomy: scope misses
// become 404 without revealing whether the row exists, everything else is a
// logged 500 with a generic body.
func writeDBError(c *gin.Context, log zerolog.Logger, err error, msg string) {
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found or access denied"})
		return
	}
	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
