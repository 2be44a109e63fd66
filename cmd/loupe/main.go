// Loupe observation engine server: HTTP ingress, queue workers for the
// scan workflow, the deploy quick-diff path, and the cron loops for
// scheduled scans, checkpoints, and digests.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/loupe-hq/loupe/pkg/analytics"
	"github.com/loupe-hq/loupe/pkg/api"
	"github.com/loupe-hq/loupe/pkg/capture"
	"github.com/loupe-hq/loupe/pkg/checkpoint"
	"github.com/loupe-hq/loupe/pkg/cleanup"
	"github.com/loupe-hq/loupe/pkg/config"
	"github.com/loupe-hq/loupe/pkg/database"
	"github.com/loupe-hq/loupe/pkg/events"
	"github.com/loupe-hq/loupe/pkg/llm"
	"github.com/loupe-hq/loupe/pkg/mailer"
	"github.com/loupe-hq/loupe/pkg/progress"
	"github.com/loupe-hq/loupe/pkg/queue"
	"github.com/loupe-hq/loupe/pkg/scheduler"
	"github.com/loupe-hq/loupe/pkg/secrets"
	"github.com/loupe-hq/loupe/pkg/services"
	"github.com/loupe-hq/loupe/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica
// coordination. Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting Loupe",
		"version", version.Full(),
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database (runs embedded migrations)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Credential sealing key
	box, err := secrets.NewBoxFromEnv()
	if err != nil {
		slog.Error("Failed to initialize credential box", "error", err)
		os.Exit(1)
	}

	// 4. Domain services
	users := services.NewUserService(dbClient.Client)
	pages := services.NewPageService(dbClient.Client)
	analyses := services.NewAnalysisService(dbClient.Client)
	changes := services.NewChangeService(dbClient.Client)
	checkpoints := services.NewCheckpointService(dbClient.Client)
	suggestions := services.NewSuggestionService(dbClient.Client)
	feedback := services.NewFeedbackService(dbClient.Client)
	deploys := services.NewDeployService(dbClient.Client)
	connections := services.NewConnectionService(dbClient.Client, box)
	slog.Info("Services initialized")

	// 5. One-time startup orphan cleanup
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, analyses, podID); err != nil {
		// Non-fatal; the periodic orphan scan picks up anything missed.
		slog.Error("Failed to cleanup startup orphans", "error", err)
	}

	// 6. LLM gateway client and typed shim.
	// grpc.NewClient dials lazily; the connection happens on first RPC.
	llmAddr := getEnv("LLM_SERVICE_ADDR", "localhost:50051")
	llmClient, err := llm.NewGRPCClient(llmAddr)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "addr", llmAddr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := llmClient.Close(); err != nil {
			slog.Error("Error closing LLM client", "error", err)
		}
	}()
	shim := llm.NewShim(llmClient, llm.DefaultRetryConfig(), slog.Default())
	slog.Info("LLM client initialized", "addr", llmAddr)

	// 7. External collaborators
	captureService := capture.NewService(capture.Config{
		ServiceURL:      cfg.Capture.ServiceURL,
		StorageURL:      cfg.Capture.StorageURL,
		StorageBucket:   cfg.Capture.StorageBucket,
		StorageTokenEnv: cfg.Capture.StorageTokenEnv,
	}, &http.Client{Timeout: cfg.Capture.Timeout}, slog.Default())

	mail := mailer.NewService(cfg.Mail, cfg.Defaults.DashboardURL)
	if mail == nil {
		slog.Info("Mail delivery disabled")
	}

	publisher := events.NewPublisher(dbClient.DB())
	eventReader := events.NewReader(dbClient.DB())
	composer := progress.NewComposer(changes, suggestions, analyses, slog.Default())
	providerFactory := analytics.NewFactory(box)

	// 8. Executors and worker pool
	executorDeps := queue.ExecutorDeps{
		Config:      cfg,
		Users:       users,
		Pages:       pages,
		Analyses:    analyses,
		Changes:     changes,
		Suggestions: suggestions,
		Checkpoints: checkpoints,
		Feedback:    feedback,
		Deploys:     deploys,
		Capture:     captureService,
		Shim:        shim,
		Composer:    composer,
		Publisher:   publisher,
		Mail:        mail,
	}
	executor := queue.NewExecutor(executorDeps)
	deployExec := queue.NewDeployExecutor(executorDeps, deploys, executor)

	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, executor, analyses)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 9. Checkpoint engine and scheduler
	engine := checkpoint.NewEngine(checkpoint.EngineDeps{
		Config:      cfg,
		Users:       users,
		Pages:       pages,
		Analyses:    analyses,
		Changes:     changes,
		Checkpoints: checkpoints,
		Connections: connections,
		Feedback:    feedback,
		Factory:     providerFactory,
		Shim:        shim,
		Composer:    composer,
		Publisher:   publisher,
		Mail:        mail,
	})

	sched := scheduler.New(scheduler.Deps{
		Config:    cfg,
		Users:     users,
		Pages:     pages,
		Analyses:  analyses,
		Engine:    engine,
		Capture:   captureService,
		Mail:      mail,
		Publisher: publisher,
	})
	sched.Start(ctx)

	retention := cleanup.NewService(cfg.Retention, dbClient.Client, dbClient.DB())
	retention.Start(ctx)

	// 10. HTTP server (non-blocking)
	httpServer := api.NewServer(api.Deps{
		DB:          dbClient,
		Users:       users,
		Pages:       pages,
		Analyses:    analyses,
		Changes:     changes,
		Checkpoints: checkpoints,
		Suggestions: suggestions,
		Feedback:    feedback,
		Deploys:     deploys,
		Connections: connections,
		DeployExec:  deployExec,
		Engine:      engine,
		Pool:        workerPool,
		Capture:     captureService,
		Publisher:   publisher,
		EventReader: eventReader,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(":" + httpPort); err != nil {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Loupe started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 11. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 12. Graceful shutdown: scheduler first (stops queueing new work),
	// then the pool (drains active analyses), then HTTP.
	sched.Stop()
	retention.Stop()
	slog.Info("Scheduler stopped")

	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, incomplete analyses will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
