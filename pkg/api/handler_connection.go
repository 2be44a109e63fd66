package api

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

type upsertConnectionRequest struct {
	Provider    string          `json:"provider" binding:"required"`
	Credentials json.RawMessage `json:"credentials" binding:"required"`
}

// connectionResponse is the sanitized view of a connection. Credential
// material never leaves the service, sealed or otherwise.
type connectionResponse struct {
	ConnectionID string `json:"connection_id"`
	Provider     string `json:"provider"`
	Status       string `json:"status"`
}

// handleUpsertConnection connects or replaces the caller's analytics
// provider. Credentials are sealed before storage and omitted from the
// response.
func (s *Server) handleUpsertConnection(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	var req upsertConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	conn, err := s.connections.UpsertConnection(c.Request.Context(), uid, req.Provider, req.Credentials)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, connectionResponse{
		ConnectionID: conn.ID,
		Provider:     string(conn.Provider),
		Status:       string(conn.Status),
	})
}
