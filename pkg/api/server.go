// Package api exposes the HTTP ingress and read surface: page and
// connection management, manual scan triggers, the deploy webhook,
// change lifecycle reads and overrides, and operational health.
//
// Handlers stay thin. All domain rules live in pkg/services and the
// executors; the API binds requests, maps service errors to status
// codes, and never blocks on long-running work (deploy processing runs
// from a goroutine, only the checkpoint sweep is synchronous by
// design of its operational endpoint).
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/loupe-hq/loupe/pkg/capture"
	"github.com/loupe-hq/loupe/pkg/checkpoint"
	"github.com/loupe-hq/loupe/pkg/database"
	"github.com/loupe-hq/loupe/pkg/events"
	"github.com/loupe-hq/loupe/pkg/queue"
	"github.com/loupe-hq/loupe/pkg/services"
	"github.com/loupe-hq/loupe/pkg/version"
)

// Server is the HTTP API server.
type Server struct {
	db          *database.Client
	users       *services.UserService
	pages       *services.PageService
	analyses    *services.AnalysisService
	changes     *services.ChangeService
	checkpoints *services.CheckpointService
	suggestions *services.SuggestionService
	feedback    *services.FeedbackService
	deploys     *services.DeployService
	connections *services.ConnectionService
	deployExec  *queue.DeployExecutor
	engine      *checkpoint.Engine
	pool        *queue.WorkerPool
	capture     *capture.Service
	publisher   *events.Publisher
	eventReader *events.Reader
	logger      *slog.Logger

	httpServer *http.Server
}

// Deps bundles the server's collaborators.
type Deps struct {
	DB          *database.Client
	Users       *services.UserService
	Pages       *services.PageService
	Analyses    *services.AnalysisService
	Changes     *services.ChangeService
	Checkpoints *services.CheckpointService
	Suggestions *services.SuggestionService
	Feedback    *services.FeedbackService
	Deploys     *services.DeployService
	Connections *services.ConnectionService
	DeployExec  *queue.DeployExecutor
	Engine      *checkpoint.Engine
	Pool        *queue.WorkerPool
	Capture     *capture.Service
	Publisher   *events.Publisher
	EventReader *events.Reader
}

// NewServer creates the API server.
func NewServer(deps Deps) *Server {
	return &Server{
		db:          deps.DB,
		users:       deps.Users,
		pages:       deps.Pages,
		analyses:    deps.Analyses,
		changes:     deps.Changes,
		checkpoints: deps.Checkpoints,
		suggestions: deps.Suggestions,
		feedback:    deps.Feedback,
		deploys:     deps.Deploys,
		connections: deps.Connections,
		deployExec:  deps.DeployExec,
		engine:      deps.Engine,
		pool:        deps.Pool,
		capture:     deps.Capture,
		publisher:   deps.Publisher,
		eventReader: deps.EventReader,
		logger:      slog.Default().With("component", "api"),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/health", s.handleHealth)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/pages", s.handleCreatePage)
		v1.GET("/pages", s.handleListPages)
		v1.GET("/pages/:id", s.handleGetPage)
		v1.GET("/pages/:id/dashboard", s.handlePageDashboard)
		v1.GET("/pages/:id/events", s.handlePageEvents)

		v1.POST("/analyses", s.handleCreateAnalysis)
		v1.GET("/analyses", s.handleListAnalyses)
		v1.GET("/analyses/:id", s.handleGetAnalysis)

		v1.POST("/webhooks/deploy", s.handleDeployWebhook)
		v1.GET("/deploys/:id", s.handleGetDeploy)

		v1.GET("/changes/:id", s.handleGetChange)
		v1.GET("/changes/:id/events", s.handleChangeEvents)
		v1.GET("/changes/:id/checkpoints", s.handleChangeCheckpoints)
		v1.PUT("/changes/:id/hypothesis", s.handleSetHypothesis)
		v1.POST("/changes/:id/transition", s.handleTransitionChange)

		v1.POST("/feedback", s.handleCreateFeedback)
		v1.PUT("/connections", s.handleUpsertConnection)
		v1.POST("/checkpoints/run", s.handleRunCheckpoints)
	}

	return r
}

// Start begins serving on addr. Blocks until the listener closes.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("API server listening", "addr", addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// requestLogger emits one structured line per request.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("Request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

// userID resolves the authenticated user set by the upstream gateway.
// Auth itself terminates before this service.
func userID(c *gin.Context) (string, bool) {
	id := c.GetHeader("X-User-ID")
	if id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing X-User-ID header"})
		return "", false
	}
	return id, true
}

// handleHealth reports database, worker pool, and capture service
// health. Degraded dependencies return 503 so orchestrators can
// restart or route around the pod.
func (s *Server) handleHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, dbErr := database.Health(ctx, s.db.DB())

	resp := gin.H{
		"version":  version.Full(),
		"database": dbHealth,
	}

	healthy := dbErr == nil
	if s.pool != nil {
		poolHealth := s.pool.Health()
		resp["pool"] = poolHealth
		healthy = healthy && poolHealth.IsHealthy
	}
	if s.capture != nil {
		if err := s.capture.Healthy(ctx); err != nil {
			resp["capture"] = gin.H{"status": "unhealthy", "error": err.Error()}
			healthy = false
		} else {
			resp["capture"] = gin.H{"status": "healthy"}
		}
	}

	status := http.StatusOK
	if !healthy {
		status = http.StatusServiceUnavailable
		resp["status"] = "unhealthy"
	} else {
		resp["status"] = "healthy"
	}
	c.JSON(status, resp)
}
