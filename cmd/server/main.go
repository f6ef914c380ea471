package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nivesh/planner-go/internal/cache"
	"github.com/nivesh/planner-go/internal/config"
	"github.com/nivesh/planner-go/internal/database"
	"github.com/nivesh/planner-go/internal/modules/behavioral"
	"github.com/nivesh/planner-go/internal/modules/goals"
	"github.com/nivesh/planner-go/internal/modules/market"
	"github.com/nivesh/planner-go/internal/modules/portfolio"
	"github.com/nivesh/planner-go/internal/modules/risk"
	"github.com/nivesh/planner-go/internal/scheduler"
	"github.com/nivesh/planner-go/internal/server"
	"github.com/nivesh/planner-go/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		l := logger.New(logger.Config{Level: "info", Pretty: true})
		l.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize logger
	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})

	log.Info().Msg("Starting planner")

	// Initialize database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	// Ensure module schemas
	if err := initSchemas(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize schemas")
	}

	// Shared result cache
	resultCache := cache.New()

	// Repositories
	goalsRepo := goals.NewRepository(db.Conn(), log)
	riskRepo := risk.NewRepository(db.Conn(), log)
	behavioralRepo := behavioral.NewRepository(db.Conn(), log)
	portfolioRepo := portfolio.NewRepository(db.Conn(), log)
	marketRepo := market.NewRepository(db.Conn(), log)

	// Services
	riskService := risk.NewService(riskRepo, goalsRepo, resultCache, cfg.CacheTTLRiskProfile, log)
	behavioralService := behavioral.NewService(behavioralRepo, log)
	portfolioService := portfolio.NewService(portfolioRepo, resultCache, cfg.CacheTTLPortfolio, log)
	marketService := market.NewService(marketRepo, log)

	// Scheduler and background jobs
	sched := scheduler.New(log)
	if err := sched.AddJob("@every 1m", scheduler.NewCacheSweepJob(resultCache, log)); err != nil {
		log.Fatal().Err(err).Msg("Failed to register cache sweep job")
	}
	if err := sched.AddJob("@hourly", scheduler.NewRiskRecomputeJob(riskService, log)); err != nil {
		log.Fatal().Err(err).Msg("Failed to register risk recompute job")
	}
	sched.Start()
	defer sched.Stop()

	// Initialize HTTP server
	srv := server.New(server.Config{
		Port:   cfg.Port,
		Log:    log,
		DB:     db,
		Config: cfg,
		Modules: server.Modules{
			Risk:       risk.NewHandler(riskService, log),
			Behavioral: behavioral.NewHandler(behavioralService, log),
			Goals:      goals.NewHandler(goalsRepo, riskService.InvalidateUser, log),
			Portfolio:  portfolio.NewHandler(portfolioService, log),
			Market:     market.NewHandler(marketService, log),
		},
		DevMode: cfg.DevMode,
	})

	// Start server in goroutine
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}

func initSchemas(db *database.DB) error {
	conn := db.Conn()
	if err := goals.InitSchema(conn); err != nil {
		return err
	}
	if err := risk.InitSchema(conn); err != nil {
		return err
	}
	if err := behavioral.InitSchema(conn); err != nil {
		return err
	}
	if err := portfolio.InitSchema(conn); err != nil {
		return err
	}
	return market.InitSchema(conn)
}
