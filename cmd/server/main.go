package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yusufdinc974/LinguaReader-sub001/internal/api"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/config"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/db"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/jobs"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/logger"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/models"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/repository/sqlite"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/services"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/worker"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("LinguaReader Server Starting")
	log.Info("===========================================")

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("import_worker_count=%d", cfg.ImportWorkerCount)
	log.Debug("import_queue_size=%d", cfg.ImportQueueSize)
	log.Debug("forecast_days=%d", cfg.ForecastDays)

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	// Initialize repositories
	wordRepo := sqlite.NewWordRepository(database.DB)
	stateRepo := sqlite.NewLearningStateRepository(database.DB)
	sessionRepo := sqlite.NewSessionRepository(database.DB)
	settingsRepo := sqlite.NewSettingsRepository(database.DB)

	// Seed review settings from configuration; stored values take precedence
	// once the user has saved their own.
	if err := settingsRepo.Seed(context.Background(), models.Settings{
		NewCardsPerDay:    cfg.NewCardsPerDay,
		ReviewsPerDay:     cfg.ReviewsPerDay,
		LearnAhead:        cfg.LearnAhead,
		QuizBidirectional: cfg.QuizBidirectional,
	}); err != nil {
		log.Error("failed to seed settings: %v", err)
		os.Exit(1)
	}

	// Initialize worker pool for background imports
	importPool := worker.NewPool(cfg.ImportWorkerCount, cfg.ImportQueueSize)

	// Initialize services
	vocabService := services.NewVocabService(wordRepo)
	quizService := services.NewQuizService(wordRepo, stateRepo, sessionRepo, settingsRepo)
	statsService := services.NewStatsService(stateRepo, sessionRepo)
	settingsService := services.NewSettingsService(settingsRepo)

	importQueue := jobs.NewWorkerQueue(importPool, vocabService)

	srv := &api.Server{
		Quiz:     quizService,
		Stats:    statsService,
		Vocab:    vocabService,
		Settings: settingsService,
		Imports:  importQueue,

		ForecastDays: cfg.ForecastDays,
	}

	ctx, cancel := context.WithCancel(context.Background())
	importPool.Start(ctx)

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Cancel worker context
	log.Debug("stopping worker pool")
	cancel()

	// Shutdown HTTP server
	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	// Wait for workers to finish
	importPool.Stop()

	log.Info("===========================================")
	log.Info("LinguaReader Server Stopped")
	log.Info("===========================================")
}
