package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/fairclaim/complaint-api/internal/auth"
	"github.com/fairclaim/complaint-api/internal/config"
	"github.com/fairclaim/complaint-api/internal/database"
	"github.com/fairclaim/complaint-api/internal/handler"
	middlewarepkg "github.com/fairclaim/complaint-api/internal/middleware"
	"github.com/fairclaim/complaint-api/internal/repository"
	"github.com/fairclaim/complaint-api/internal/research"
	"github.com/fairclaim/complaint-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// The free tools run without a database; only admin auth and
	// analytics need one.
	var eventsRepo repository.EventsRepository
	var usersRepo repository.UsersRepository
	if cfg.DatabaseURL != "" {
		pool, err := database.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to connect database: %v", err)
		}
		defer pool.Close()
		eventsRepo = repository.NewPGXEventsRepository(pool)
		usersRepo = repository.NewPGXUsersRepository(pool)
	} else {
		log.Printf("DATABASE_URL not set; analytics and admin auth disabled")
	}

	analyticsService := service.NewAnalyticsService(eventsRepo)

	var searchProvider research.SearchProvider
	if cfg.ExaAPIKey != "" {
		searchProvider = research.NewExaClient(nil, "", cfg.ExaAPIKey)
	} else {
		log.Printf("EXA_API_KEY not set; company research runs in mock mode")
	}
	var scraper research.Scraper
	if cfg.FirecrawlAPIKey != "" {
		scraper = research.NewFirecrawlClient(nil, "", cfg.FirecrawlAPIKey)
	}
	aggregator := research.NewAggregator(searchProvider, scraper, cfg.PhoneRegion)

	toolsHandler := handler.NewToolsHandler(analyticsService)
	researchHandler := handler.NewResearchHandler(aggregator)
	letterHandler := handler.NewLetterHandler(nil, cfg.LetterServiceURL)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(echoMiddleware.Recover())

	e.GET("/healthz", func(c echo.Context) error {
		return handler.Success(c, http.StatusOK, "service healthy", map[string]any{"status": "ok"})
	})

	tools := e.Group("/api/tools")
	tools.POST("/flight-compensation", toolsHandler.FlightCompensation)
	tools.POST("/cooling-off", toolsHandler.CoolingOff)
	tools.POST("/refund-timeline", toolsHandler.RefundTimeline)
	tools.POST("/response-deadline", toolsHandler.ResponseDeadline)
	tools.POST("/cancel-subscription", toolsHandler.CancelSubscription)

	e.POST("/api/research/company", researchHandler.Research, middlewarepkg.ResearchRateLimiter(cfg.RateLimitResearch))
	e.POST("/api/generate/letter", letterHandler.Generate)

	if usersRepo != nil {
		jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
		authService := service.NewAuthService(usersRepo, jwtManager)
		if err := authService.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			log.Fatalf("failed to ensure admin account: %v", err)
		}

		authHandler := handler.NewAuthHandler(authService)
		analyticsHandler := handler.NewAnalyticsHandler(analyticsService)

		e.POST("/auth/login", authHandler.Login)

		admin := e.Group("/admin", middlewarepkg.JWT(jwtManager), middlewarepkg.RequireRole("admin"))
		admin.GET("/analytics/summary", analyticsHandler.Summary)
		admin.GET("/analytics/tools", analyticsHandler.Tools)
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
