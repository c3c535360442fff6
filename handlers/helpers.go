package handlers

import (
	"errors"
	"net/http"
	"strings"

	"saapaadu-api/logger"
	"saapaadu-api/services"

	"github.com/gin-gonic/gin"
)

var errStatus = []struct {
	sentinel error
	code     int
}{
	{services.ErrBadRequest, http.StatusBadRequest},
	{services.ErrUnauthorized, http.StatusUnauthorized},
	{services.ErrForbidden, http.StatusForbidden},
	{services.ErrNotFound, http.StatusNotFound},
	{services.ErrConflict, http.StatusConflict},
}

// respondError maps service-layer sentinel errors onto HTTP statuses.
// Anything unknown is a 500 with the detail kept out of the response.
func respondError(c *gin.Context, err error) {
	for _, m := range errStatus {
		if errors.Is(err, m.sentinel) {
			c.JSON(m.code, gin.H{"error": cleanMessage(err, m.sentinel)})
			return
		}
	}
	logger.L.Error().Err(err).Str("path", c.FullPath()).Msg("unhandled service error")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

func cleanMessage(err, sentinel error) string {
	return strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
}
