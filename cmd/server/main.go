package main

import (
	"context"
	"flag"
	"log"
	"net/http"

	httpapi "lendify-backend/internal/api/http"
	"lendify-backend/internal/config"
	"lendify-backend/internal/logger"
	"lendify-backend/internal/repository/jsonfile"
	"lendify-backend/internal/security"
	"lendify-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Lendify backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress(), "static_dir", cfg.Server.StaticDir)
	logger.Info("Datastore configuration", "path", cfg.Store.Path)

	// Initialize datastore; the first Load seeds the file if it is absent
	store := jsonfile.NewStore(cfg.Store.Path)
	doc, err := store.Load(context.Background())
	if err != nil {
		logger.Error("Failed to initialize datastore", "error", err)
		log.Fatalf("Failed to initialize datastore: %v", err)
	}
	logger.Info("Datastore ready",
		"users", len(doc.Users),
		"tools", len(doc.Tools),
		"checkouts", len(doc.Checkouts),
		"ratings", len(doc.Ratings),
	)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Services
	accountSvc := service.NewAccountService(store, tokenManager)
	directorySvc := service.NewDirectoryService(store, cfg.Directory.RadiusMiles)
	checkoutSvc := service.NewCheckoutService(store)
	ledgerSvc := service.NewLedgerService(store, service.ScoringRules{
		ReturnOnTime: cfg.Scoring.ReturnOnTime,
		ReturnLate:   cfg.Scoring.ReturnLate,
		Damage:       cfg.Scoring.Damage,
		GoodRating:   cfg.Scoring.GoodRating,
		BadRating:    cfg.Scoring.BadRating,
	})

	// Initialize HTTP handlers and router
	router := httpapi.NewRouter(httpapi.Services{
		Account:   httpapi.NewAccountHandler(accountSvc),
		Directory: httpapi.NewDirectoryHandler(directorySvc),
		Checkout:  httpapi.NewCheckoutHandler(checkoutSvc, ledgerSvc),
	}, cfg.Server.StaticDir)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
