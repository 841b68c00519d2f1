package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/dennysmatos/mts20t1-ppp-nutrify-api/services"
)

// respondError maps the service error taxonomy to status codes. Anything
// outside the taxonomy is logged and answered as a generic failure.
func respondError(c *gin.Context, err error) {
	var httpErr *services.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.Status, gin.H{"error": httpErr.Message})
		return
	}
	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("unexpected error")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro Interno do Servidor"})
}
