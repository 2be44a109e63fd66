package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/loupe-hq/loupe/ent/detectedchange"
	"github.com/loupe-hq/loupe/pkg/events"
	"github.com/loupe-hq/loupe/pkg/models"
)

// handleGetChange returns one detected change.
func (s *Server) handleGetChange(c *gin.Context) {
	ch, err := s.changes.GetChange(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ch)
}

// handleChangeEvents returns the lifecycle audit trail for a change,
// oldest first.
func (s *Server) handleChangeEvents(c *gin.Context) {
	evts, err := s.changes.ListLifecycleEvents(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": evts})
}

// handleChangeCheckpoints returns the checkpoints recorded for a
// change, by horizon.
func (s *Server) handleChangeCheckpoints(c *gin.Context) {
	cps, err := s.checkpoints.ListForChange(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"checkpoints": cps})
}

type hypothesisRequest struct {
	Hypothesis string `json:"hypothesis" binding:"required"`
}

// handleSetHypothesis records the user's stated expectation for a
// change. Later checkpoint assessments see it alongside feedback notes.
func (s *Server) handleSetHypothesis(c *gin.Context) {
	if _, ok := userID(c); !ok {
		return
	}
	var req hypothesisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.changes.SetHypothesis(c.Request.Context(), c.Param("id"), req.Hypothesis); err != nil {
		s.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type transitionRequest struct {
	ToStatus string `json:"to_status" binding:"required"`
	Reason   string `json:"reason" binding:"required"`
}

// handleTransitionChange applies a user-initiated lifecycle transition,
// typically a manual revert. The current status is read first and used
// as the compare-and-swap guard; a concurrent sweep or scan moving the
// change in between surfaces as a 409.
func (s *Server) handleTransitionChange(c *gin.Context) {
	if _, ok := userID(c); !ok {
		return
	}
	var req transitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	changeID := c.Param("id")

	ch, err := s.changes.GetChange(ctx, changeID)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	eventID, err := s.changes.Transition(ctx, models.TransitionRequest{
		ChangeID:   changeID,
		FromStatus: string(ch.Status),
		ToStatus:   req.ToStatus,
		Reason:     req.Reason,
		ActorType:  "user",
	})
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	if err := s.publisher.PublishChangeStatus(ctx, events.ChangeStatusPayload{
		ChangeID: changeID,
		PageID:   ch.PageID,
		Element:  ch.Element,
		Status:   detectedchange.Status(req.ToStatus),
	}); err != nil {
		s.logger.Warn("Failed to publish change transition event",
			"change_id", changeID, "error", err)
	}

	c.JSON(http.StatusOK, gin.H{"lifecycle_event_id": eventID, "to_status": req.ToStatus})
}

// handleCreateFeedback records outcome feedback on a checkpoint
// verdict. The service verifies the checkpoint belongs to the change.
func (s *Server) handleCreateFeedback(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	var req models.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.UserID = uid

	fb, err := s.feedback.CreateFeedback(c.Request.Context(), req)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fb)
}
