package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	httpapi "medequip-backend/internal/api/http"
	"medequip-backend/internal/codec"
	"medequip-backend/internal/config"
	"medequip-backend/internal/jobs"
	"medequip-backend/internal/logger"
	"medequip-backend/internal/repository/postgres"
	"medequip-backend/internal/scheduler"
	"medequip-backend/internal/security"
	"medequip-backend/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting medical equipment loan backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db, postgres.TxConfig{
		AcquireTimeout: time.Duration(cfg.Store.TxTimeoutSeconds) * time.Second,
		MaxAttempts:    cfg.Store.TxMaxAttempts,
	})

	tokenManager := security.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry)

	var imageCodec codec.Codec
	if cfg.Codec.BaseURL != "" {
		logger.Info("Using code-image codec service", "base_url", cfg.Codec.BaseURL)
		imageCodec = codec.NewHTTPCodec(cfg.Codec.BaseURL, time.Duration(cfg.Codec.TimeoutSeconds)*time.Second)
	} else {
		logger.Warn("No codec service configured; issuing loans without code images")
	}

	inventorySvc := service.NewInventoryService(store.EquipmentRepository)
	loanSvc := service.NewLoanService(store, store.LoanRepository, store.ReturnHistoryRepository)
	reportSvc := service.NewReportService(store.ReportRepository)
	authSvc := service.NewAuthService(cfg.Auth.AdminPasswordHash, tokenManager)

	authHandler := httpapi.NewAuthHandler(authSvc)
	equipmentHandler := httpapi.NewEquipmentHandler(inventorySvc)
	loanHandler := httpapi.NewLoanHandler(loanSvc, imageCodec)
	reportHandler := httpapi.NewReportHandler(reportSvc)

	router := httpapi.NewRouter(tokenManager, authHandler, equipmentHandler, loanHandler, reportHandler)

	jobRunner := jobs.NewJobRunner(db, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
