package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wellvoice/clinic-ops/internal/agents"
	"github.com/wellvoice/clinic-ops/internal/api/router"
	"github.com/wellvoice/clinic-ops/internal/appointments"
	appconfig "github.com/wellvoice/clinic-ops/internal/config"
	"github.com/wellvoice/clinic-ops/internal/http/handlers"
	"github.com/wellvoice/clinic-ops/internal/importer"
	"github.com/wellvoice/clinic-ops/internal/observability/metrics"
	"github.com/wellvoice/clinic-ops/internal/patients"
	"github.com/wellvoice/clinic-ops/internal/tasks"
	"github.com/wellvoice/clinic-ops/internal/voice"
	"github.com/wellvoice/clinic-ops/pkg/logging"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting clinic-ops API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	if cfg.DatabaseURL == "" {
		logger.Error("DATABASE_URL is required")
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	// Repositories
	patientRepo := patients.NewPostgresRepository(db)
	appointmentRepo := appointments.NewPostgresRepository(db)
	taskRepo := tasks.NewPostgresRepository(db)
	agentRepo := agents.NewPostgresRepository(db)

	// Services and writers
	patientSvc := patients.NewService(patientRepo, cfg.DefaultPhoneRegion, logger)
	apptWriter := appointments.NewWriter(appointmentRepo)
	resolver := agents.NewResolver(agentRepo, cfg.DefaultAgentID, logger)
	taskWriter := tasks.NewWriter(taskRepo, resolver, logger)

	// Metrics
	importMetrics := metrics.NewImportMetrics(prometheus.DefaultRegisterer)

	imp := importer.New(patientSvc, apptWriter, taskWriter, logger, importMetrics)

	// Voice-agent provisioning is optional; without a platform URL agents
	// register locally only.
	var provisioner agents.Provisioner
	if cfg.VoiceProvisioning && cfg.VoiceAPIBaseURL != "" {
		client := voice.NewClient(cfg.VoiceAPIBaseURL, cfg.VoiceAPIKey, cfg.VoiceAPITimeout, logger)
		provisioner = voice.NewProvisioner(client, logger)
		logger.Info("voice assistant provisioning enabled", "base_url", cfg.VoiceAPIBaseURL)
	}

	routerCfg := &router.Config{
		Logger:              logger,
		PatientsHandler:     patients.NewHandler(patientSvc, logger),
		AppointmentsHandler: appointments.NewHandler(appointmentRepo, logger),
		AgentsHandler:       agents.NewHandler(agentRepo, provisioner, logger),
		TasksHandler:        tasks.NewHandler(taskRepo, logger),
		ImportHandler:       handlers.NewImportHandler(imp, cfg.ImportMaxBytes, logger),
		MetricsHandler:      promhttp.Handler(),
		CORSAllowedOrigins:  cfg.CORSAllowedOrigins,
		ImportRatePerSec:    cfg.ImportRatePerSec,
		ImportBurst:         cfg.ImportBurst,
	}
	r := router.New(routerCfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
