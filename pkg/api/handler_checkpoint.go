package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleRunCheckpoints triggers one checkpoint sweep outside the
// scheduled tick, for operators catching up after an incident. Runs
// synchronously and returns the batch stats. Safe to fire while the
// scheduled sweep runs: checkpoint rows are unique per horizon and
// transitions are compare-and-swap.
func (s *Server) handleRunCheckpoints(c *gin.Context) {
	stats, err := s.engine.Run(c.Request.Context())
	if err != nil {
		s.logger.Error("Manual checkpoint sweep failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "sweep failed", "stats": stats})
		return
	}
	c.JSON(http.StatusOK, stats)
}
