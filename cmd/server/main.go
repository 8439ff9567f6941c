package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/voalerta/flight-service/config"
	_ "github.com/voalerta/flight-service/docs"
	"github.com/voalerta/flight-service/internal/amadeus"
	"github.com/voalerta/flight-service/internal/currency"
	"github.com/voalerta/flight-service/internal/database"
	"github.com/voalerta/flight-service/internal/handlers"
	httpx "github.com/voalerta/flight-service/internal/http"
	"github.com/voalerta/flight-service/internal/http/ratelimit"
	"github.com/voalerta/flight-service/internal/jobs"
	"github.com/voalerta/flight-service/internal/middleware"
	"github.com/voalerta/flight-service/internal/monitor"
	"github.com/voalerta/flight-service/internal/notify"
	"github.com/voalerta/flight-service/internal/search"
	"github.com/voalerta/flight-service/internal/telemetry"
)

// @title Flight Service API
// @version 1.0
// @description Flight price monitoring, smart search and alerting service.
// @BasePath /
func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := initLogger(cfg.Logging)

	logger.Info().Msg("Starting flight service")

	ctx := context.Background()

	telemetryCleanup := telemetry.MustInit(ctx, telemetry.GetConfigFromEnv())
	defer telemetryCleanup(ctx)

	dbURL := config.GetDatabaseURL()
	if dbURL == "" {
		logger.Fatal().Msg("DATABASE_URL not set")
	}

	if err := database.Connect(
		ctx,
		dbURL,
		cfg.Database.MaxConnections,
		cfg.Database.MinConnections,
		cfg.Database.MaxConnLifetime,
		cfg.Database.MaxConnIdleTime,
	); err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer database.Close()

	logger.Info().Msg("Database connected")

	if err := database.EnsureSchema(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Failed to apply database schema")
	}

	httpClient := httpx.NewClient(ratelimit.Config{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		MaxRetries:        cfg.RateLimit.MaxRetries,
		InitialBackoffMs:  cfg.RateLimit.InitialBackoffMs,
		MaxBackoffMs:      cfg.RateLimit.MaxBackoffMs,
	})
	converter := currency.NewConverter(httpClient, cfg.Currency.RatesURL, cfg.Currency.TTL)

	provider, err := amadeus.NewClient(
		cfg.Amadeus.BaseURL,
		cfg.Amadeus.ClientID,
		cfg.Amadeus.ClientSecret,
		httpClient,
		converter,
		amadeus.Options{CacheTTL: cfg.Cache.TTL},
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create flight offers client")
	}

	engine := search.NewEngine(provider, search.Config{
		FlexDays:     cfg.Search.FlexDays,
		MinDaysAhead: cfg.Search.MinDaysAhead,
		CallTimeout:  cfg.Search.CallTimeout,
	})

	dispatcher := notify.NewDispatcher(cfg.Notifications)
	checker := monitor.NewChecker(provider, dispatcher)

	worker := monitor.NewWorker(checker, cfg.Monitor)
	if err := worker.Start(); err != nil {
		logger.Fatal().Err(err).Msg("Failed to start monitoring worker")
	}

	maintenance := startMaintenance(ctx, cfg.Monitor, logger)

	handlers.Init(provider, engine, checker)

	if cfg.Logging.Level == "info" || cfg.Logging.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	setupMiddleware(router, logger)
	router.Use(middleware.RateLimitMiddleware(middleware.DefaultRateLimiterConfig()))

	router.GET("/health", handlers.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	flights := router.Group("/api/flights")
	{
		flights.POST("", handlers.CreateTrip)
		flights.GET("", handlers.ListTrips)
		flights.POST("/search/smart", handlers.SmartSearch)
		flights.GET("/airports/search", handlers.SearchAirports)
		flights.GET("/:id", handlers.GetTrip)
		flights.PUT("/:id", handlers.UpdateTrip)
		flights.DELETE("/:id", handlers.DeleteTrip)
		flights.POST("/:id/check", handlers.CheckTripNow)
		flights.GET("/:id/offers", handlers.TripOffers)
		flights.GET("/:id/history", handlers.TripHistory)
		flights.GET("/:id/history/export", handlers.ExportTripHistory)
		flights.GET("/:id/stats", handlers.TripStats)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info().Str("addr", addr).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")
	worker.Stop()
	<-maintenance.Stop().Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited")
}

// startMaintenance schedules the daily retention job.
func startMaintenance(ctx context.Context, cfg config.MonitorConfig, logger *zerolog.Logger) *cron.Cron {
	c := cron.New()
	retention := jobs.RetentionConfig{ObservationRetentionDays: cfg.RetentionDays}

	if _, err := c.AddFunc("0 3 * * *", func() { jobs.RunMaintenance(ctx, retention) }); err != nil {
		logger.Fatal().Err(err).Msg("Failed to schedule maintenance job")
	}

	c.Start()
	return c
}

func initLogger(cfg config.LoggingConfig) *zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var output io.Writer
	if cfg.Format == "json" {
		output = os.Stdout
	} else {
		output = zerolog.ConsoleWriter{Out: os.Stdout, NoColor: cfg.NoColor}
	}

	logger := zerolog.New(output).Level(level).With().Timestamp().Str("service", "flight-service").Logger()
	return &logger
}

func setupMiddleware(router *gin.Engine, logger *zerolog.Logger) {
	router.Use(func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		end := time.Now()
		latency := end.Sub(start)

		logger.Info().
			Str("method", c.Request.Method).
			Str("path", path).
			Str("query", query).
			Int("status", c.Writer.Status()).
			Dur("latency", latency).
			Str("ip", c.ClientIP()).
			Msg("HTTP request")
	})
}
