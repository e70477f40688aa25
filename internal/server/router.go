// Package server assembles the HTTP router.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "metalfolio/internal/docs" // Import swagger docs
	"metalfolio/internal/handlers"
	"metalfolio/internal/logger"
	"metalfolio/internal/middleware"
	"metalfolio/internal/services"
)

// Services bundles the business services the routes are backed by.
type Services struct {
	Holdings    services.HoldingServicer
	Preferences services.PreferencesServicer
	Prices      services.PriceServicer
	Portfolio   services.PortfolioServicer
}

// Options configures authentication, rate limiting and health checks.
type Options struct {
	JWTSecret      string
	PipelineAPIKey string
	// PriceLimiter throttles GET /prices per client IP. Nil disables it.
	PriceLimiter *middleware.RateLimiter
	// HealthCheck reports whether backing stores are reachable. Nil always
	// reports healthy.
	HealthCheck func(ctx context.Context) error
	// TrustedProxies are the peers allowed to set X-Forwarded-For. Nil
	// trusts none, so the client IP is always the connection's remote address.
	TrustedProxies []string
}

// NewRouter builds the gin engine with every API route registered.
func NewRouter(svc Services, opts Options) *gin.Engine {
	holdingHandler := handlers.NewHoldingHandler(svc.Holdings)
	preferencesHandler := handlers.NewPreferencesHandler(svc.Preferences)
	priceHandler := handlers.NewPriceHandler(svc.Prices)
	portfolioHandler := handlers.NewPortfolioHandler(svc.Portfolio)
	pipelineHandler := handlers.NewPipelineHandler(svc.Prices)

	router := gin.New()
	if err := router.SetTrustedProxies(opts.TrustedProxies); err != nil {
		logger.Named("http").Errorw("invalid trusted proxies, trusting none", "proxies", opts.TrustedProxies, "error", err)
		_ = router.SetTrustedProxies(nil)
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, "+middleware.APIKeyHeader)

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/api/health", healthHandler(opts.HealthCheck))

	v1 := router.Group("/api/v1")

	// Public price routes
	prices := v1.Group("/prices")
	if opts.PriceLimiter != nil {
		prices.GET("", middleware.RateLimit(opts.PriceLimiter), priceHandler.GetPrices)
	} else {
		prices.GET("", priceHandler.GetPrices)
	}
	prices.GET("/history", priceHandler.GetPriceHistory)

	// Machine-to-machine routes
	pipeline := v1.Group("/pipeline")
	pipeline.Use(middleware.PipelineAuthMiddleware(opts.PipelineAPIKey))
	pipeline.POST("/prices/record", pipelineHandler.RecordPrices)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(opts.JWTSecret))

	holdings := protected.Group("/holdings")
	holdings.POST("", holdingHandler.CreateHolding)
	holdings.GET("", holdingHandler.GetHoldings)
	holdings.GET("/:id", holdingHandler.GetHolding)
	holdings.PUT("/:id", holdingHandler.UpdateHolding)
	holdings.DELETE("/:id", holdingHandler.DeleteHolding)

	preferences := protected.Group("/preferences")
	preferences.GET("", preferencesHandler.GetPreferences)
	preferences.PUT("", preferencesHandler.UpdatePreferences)
	preferences.POST("", preferencesHandler.UpdatePreferences)

	portfolio := protected.Group("/portfolio")
	portfolio.GET("", portfolioHandler.GetPortfolio)
	portfolio.GET("/charts", portfolioHandler.GetCharts)

	return router
}

func healthHandler(check func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if check != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := check(ctx); err != nil {
				logger.Named("http").Warnw("health check failed", "error", err)
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
