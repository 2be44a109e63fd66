package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/loupe-hq/loupe/ent/analysis"
	"github.com/loupe-hq/loupe/pkg/events"
	"github.com/loupe-hq/loupe/pkg/models"
)

type createAnalysisRequest struct {
	PageID string `json:"page_id" binding:"required"`
}

// handleCreateAnalysis triggers a manual scan. The row is created
// pending; a worker claims it from the queue. Manual triggers carry no
// per-day idempotency, repeat requests queue repeat scans.
func (s *Server) handleCreateAnalysis(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	var req createAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	p, err := s.pages.GetPage(ctx, req.PageID)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	if p.UserID != uid {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	a, err := s.analyses.CreateAnalysis(ctx, models.CreateAnalysisRequest{
		AnalysisID:  uuid.New().String(),
		PageID:      p.ID,
		UserID:      uid,
		URL:         p.URL,
		TriggerType: string(analysis.TriggerTypeManual),
	})
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	if err := s.publisher.PublishAnalysisStatus(ctx, events.AnalysisStatusPayload{
		AnalysisID:  a.ID,
		PageID:      a.PageID,
		Status:      analysis.StatusPending,
		TriggerType: analysis.TriggerTypeManual,
	}); err != nil {
		s.logger.Warn("Failed to publish pending analysis event",
			"analysis_id", a.ID, "error", err)
	}

	c.JSON(http.StatusAccepted, a)
}

// handleGetAnalysis returns one analysis.
func (s *Server) handleGetAnalysis(c *gin.Context) {
	a, err := s.analyses.GetAnalysis(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// handleListAnalyses lists the caller's analyses with optional filters.
func (s *Server) handleListAnalyses(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	filters := models.AnalysisFilters{
		UserID:      uid,
		PageID:      c.Query("page_id"),
		Status:      c.Query("status"),
		TriggerType: c.Query("trigger_type"),
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		filters.Limit = limit
	}
	if raw := c.Query("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offset"})
			return
		}
		filters.Offset = offset
	}

	analyses, total, err := s.analyses.ListAnalyses(c.Request.Context(), filters)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"analyses": analyses, "total": total})
}
