package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/loupe-hq/loupe/pkg/services"
)

// respondServiceError maps service-layer errors to HTTP responses.
// Unknown errors are logged and returned as an opaque 500.
func (s *Server) respondServiceError(c *gin.Context, err error) {
	status, body := mapServiceError(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("Request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err,
		)
	}
	c.JSON(status, body)
}

// mapServiceError translates the services sentinel errors into status
// codes. Conflict covers duplicates, stale CAS writes, and disallowed
// lifecycle transitions alike; the body distinguishes them.
func mapServiceError(err error) (int, gin.H) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, gin.H{"error": ve.Error()}
	case errors.Is(err, services.ErrInvalidInput):
		return http.StatusBadRequest, gin.H{"error": err.Error()}
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound, gin.H{"error": "not found"}
	case errors.Is(err, services.ErrAlreadyExists):
		return http.StatusConflict, gin.H{"error": "already exists"}
	case errors.Is(err, services.ErrConcurrentModification):
		return http.StatusConflict, gin.H{"error": "modified concurrently, retry"}
	case errors.Is(err, services.ErrInvalidTransition):
		return http.StatusConflict, gin.H{"error": err.Error()}
	default:
		return http.StatusInternalServerError, gin.H{"error": "internal error"}
	}
}
