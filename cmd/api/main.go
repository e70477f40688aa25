package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"metalfolio/internal/config"
	"metalfolio/internal/database"
	"metalfolio/internal/logger"
	"metalfolio/internal/middleware"
	"metalfolio/internal/pricing"
	"metalfolio/internal/provider"
	"metalfolio/internal/scheduler"
	"metalfolio/internal/server"
	"metalfolio/internal/services"
	"metalfolio/internal/validator"
)

// @title           Metalfolio API
// @version         1.0
// @description     Metalfolio values gold and silver holdings against live market prices in USD and PKR.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	validator.Register()

	// Create database manager
	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer dbManager.Close()

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Price pipeline
	source := newPriceSource(appConfig)

	// Initialize services
	db := dbManager.DB()
	holdingService := services.NewHoldingService(db)
	preferencesService := services.NewPreferencesService(db)
	priceService := services.NewPriceService(db, source)
	portfolioService := services.NewPortfolioService(holdingService, priceService)

	limiter := middleware.NewRateLimiter(appConfig.PriceRateLimitWindow)
	go limiter.Run(ctx, time.Minute)

	// Background jobs
	sched := scheduler.New(2 * appConfig.RequestTimeout)
	if err := sched.AddJob(appConfig.PriceHistorySchedule, scheduler.NewPriceHistoryJob(priceService)); err != nil {
		return fmt.Errorf("invalid PRICE_HISTORY_SCHEDULE %q: %w", appConfig.PriceHistorySchedule, err)
	}
	sched.Start()
	defer sched.Stop()

	router := server.NewRouter(server.Services{
		Holdings:    holdingService,
		Preferences: preferencesService,
		Prices:      priceService,
		Portfolio:   portfolioService,
	}, server.Options{
		JWTSecret:      appConfig.JWTSecret,
		PipelineAPIKey: appConfig.PipelineAPIKey,
		PriceLimiter:   limiter,
		HealthCheck:    dbManager.Ping,
		TrustedProxies: appConfig.TrustedProxies,
	})

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting Metalfolio server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	log.Info("Server stopped")
	return nil
}

// newPriceSource builds the live aggregator, or the fixed mock source when
// USE_MOCK_PRICES is set.
func newPriceSource(cfg *config.Config) pricing.Source {
	log := logger.Get()
	if cfg.UseMockPrices {
		log.Warn("USE_MOCK_PRICES is set; serving fixed mock prices")
		return pricing.MockSource{Now: time.Now}
	}

	if cfg.GoldAPIKey == "" {
		log.Warn("GOLDAPI_KEY is not set; metal prices will be unavailable")
	}
	if cfg.FreeCurrencyAPIKey == "" {
		log.Warn("FREECURRENCYAPI_KEY is not set; exchange rates will be unavailable")
	}

	httpClient := &http.Client{Timeout: cfg.RequestTimeout}
	metals := pricing.NewMetalPriceAdapter(
		provider.NewGoldAPIProvider(httpClient, cfg.GoldAPIBaseURL, cfg.GoldAPIKey),
		cfg.PriceCacheTTL, cfg.RequestTimeout, time.Now)
	fx := pricing.NewFXRateAdapter(
		provider.NewFreeCurrencyProvider(httpClient, cfg.FreeCurrencyAPIBaseURL, cfg.FreeCurrencyAPIKey),
		cfg.PriceCacheTTL, cfg.RequestTimeout, time.Now)

	return pricing.NewAggregator(metals, fx, cfg.SnapshotCacheTTL, time.Now)
}
