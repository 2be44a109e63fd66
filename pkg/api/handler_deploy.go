package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/loupe-hq/loupe/pkg/models"
	"github.com/loupe-hq/loupe/pkg/services"
)

// deployProcessTimeout bounds one background deploy run, settle delay
// and per-page scans included.
const deployProcessTimeout = 15 * time.Minute

// handleDeployWebhook ingests a deploy notification. The row insert is
// idempotent on the caller-supplied deploy ID, so webhook redeliveries
// collapse to a no-op. Processing runs from a goroutine; the webhook
// response never waits for the settle delay.
func (s *Server) handleDeployWebhook(c *gin.Context) {
	var req models.CreateDeployRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	d, err := s.deploys.CreateDeploy(c.Request.Context(), req)
	if errors.Is(err, services.ErrAlreadyExists) {
		c.JSON(http.StatusOK, gin.H{"status": "duplicate", "deploy_id": req.DeployID})
		return
	}
	if err != nil {
		s.respondServiceError(c, err)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), deployProcessTimeout)
		defer cancel()
		if err := s.deployExec.ProcessDeploy(ctx, d.ID); err != nil {
			s.logger.Error("Deploy processing failed", "deploy_id", d.ID, "error", err)
		}
	}()

	c.JSON(http.StatusAccepted, gin.H{"status": "accepted", "deploy_id": d.ID})
}

// handleGetDeploy returns one deploy with its current status.
func (s *Server) handleGetDeploy(c *gin.Context) {
	d, err := s.deploys.GetDeploy(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}
