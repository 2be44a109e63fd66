package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/loupe-hq/loupe/ent"
	"github.com/loupe-hq/loupe/pkg/models"
	"github.com/loupe-hq/loupe/pkg/services"
)

type createPageRequest struct {
	URL           string `json:"url" binding:"required"`
	ScanFrequency string `json:"scan_frequency"`
	MetricFocus   string `json:"metric_focus"`
}

// handleCreatePage registers a page for observation.
func (s *Server) handleCreatePage(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	var req createPageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := s.pages.CreatePage(c.Request.Context(), services.CreatePageInput{
		UserID:        uid,
		URL:           req.URL,
		ScanFrequency: req.ScanFrequency,
		MetricFocus:   req.MetricFocus,
	})
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// handleListPages returns the caller's pages.
func (s *Server) handleListPages(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	pages, err := s.pages.ListPagesForUser(c.Request.Context(), uid)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pages": pages})
}

// handleGetPage returns one page.
func (s *Server) handleGetPage(c *gin.Context) {
	p, err := s.pages.GetPage(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// dashboardResponse is the single read the page dashboard renders
// from. The changes summary is the materialized projection written at
// scan and checkpoint time; it is never recomputed here.
type dashboardResponse struct {
	Page           *ent.Page                `json:"page"`
	LatestAnalysis *ent.Analysis            `json:"latest_analysis,omitempty"`
	ChangesSummary *models.ChangesSummary   `json:"changes_summary,omitempty"`
	Changes        []*ent.DetectedChange    `json:"changes"`
	Suggestions    []*ent.TrackedSuggestion `json:"suggestions"`
}

// handlePageDashboard assembles the dashboard read for one page.
func (s *Server) handlePageDashboard(c *gin.Context) {
	ctx := c.Request.Context()
	pageID := c.Param("id")

	p, err := s.pages.GetPage(ctx, pageID)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	resp := dashboardResponse{Page: p}

	latest, err := s.analyses.LatestCompleteForPage(ctx, pageID)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	resp.LatestAnalysis = latest

	chronicle, err := s.analyses.LatestChronicleForPage(ctx, pageID)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	if chronicle != nil && chronicle.ChangesSummary != nil {
		var summary models.ChangesSummary
		if err := models.FromMap(chronicle.ChangesSummary, &summary); err != nil {
			s.logger.Warn("Unreadable changes summary on dashboard read",
				"page_id", pageID, "analysis_id", chronicle.ID, "error", err)
		} else {
			resp.ChangesSummary = &summary
		}
	}

	resp.Changes, err = s.changes.ListForPage(ctx, pageID)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	resp.Suggestions, err = s.suggestions.ListOpenForPage(ctx, pageID)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// handlePageEvents serves the persisted event log for a page so
// dashboard clients can catch up after a truncated NOTIFY delivery or
// a reconnect.
func (s *Server) handlePageEvents(c *gin.Context) {
	sinceID := int64(0)
	if raw := c.Query("since_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid since_id"})
			return
		}
		sinceID = parsed
	}

	evts, err := s.eventReader.Since(c.Request.Context(), c.Param("id"), sinceID)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": evts})
}
