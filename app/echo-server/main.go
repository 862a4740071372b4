package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SaiPranav00/EVMATCHFINAL/app/echo-server/router"
	"github.com/SaiPranav00/EVMATCHFINAL/business/matching"
	"github.com/SaiPranav00/EVMATCHFINAL/business/quiz"
	"github.com/SaiPranav00/EVMATCHFINAL/business/review"
	userService "github.com/SaiPranav00/EVMATCHFINAL/business/user"
	"github.com/SaiPranav00/EVMATCHFINAL/business/vehicle"
	"github.com/SaiPranav00/EVMATCHFINAL/internal/middleware"
	"github.com/SaiPranav00/EVMATCHFINAL/internal/repository/notification"
	psqlRepo "github.com/SaiPranav00/EVMATCHFINAL/internal/repository/postgres"
	redisRepo "github.com/SaiPranav00/EVMATCHFINAL/internal/repository/redis"
	"github.com/SaiPranav00/EVMATCHFINAL/internal/rest"
	"github.com/SaiPranav00/EVMATCHFINAL/pkg/config"
	"github.com/SaiPranav00/EVMATCHFINAL/pkg/database"
	redisDB "github.com/SaiPranav00/EVMATCHFINAL/pkg/database/redis"
	"github.com/SaiPranav00/EVMATCHFINAL/pkg/logger"
	"github.com/SaiPranav00/EVMATCHFINAL/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting EVMatch", "version", cfg.App.Version)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	redisClient, err := redisDB.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", "error", err)
	}

	logger.Info("Redis connected successfully")

	metrics.Init()

	// Init notification from mailjet
	mailjetEmail := notification.NewMailjetRepository(
		notification.MailjetConfig{
			MailjetBaseURL:           cfg.Mailjet.MailjetBaseUrl,
			MailjetBasicAuthUsername: cfg.Mailjet.MailjetBasicAuthUsername,
			MailjetBasicAuthPassword: cfg.Mailjet.MailjetBasicAuthPassword,
			MailjetSenderEmail:       cfg.Mailjet.MailjetSenderEmail,
			MailjetSenderName:        cfg.Mailjet.MailjetSenderName,
		},
	)

	// Init validate
	validate := validator.New()

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	vehicleRepo := psqlRepo.NewVehicleRepository(db)
	reviewRepo := psqlRepo.NewReviewRepository(db)
	prefRepo := psqlRepo.NewPreferenceRepository(db)
	quizRepo := psqlRepo.NewQuizRepository(db)
	matchCfgRepo := psqlRepo.NewMatchConfigRepository(db)
	sessionRepo := redisRepo.NewSessionRepository(redisClient)
	matchCache := redisRepo.NewMatchCacheRepository(redisClient)

	// Init service
	userSvc := userService.NewUserService(userRepo, validate, mailjetEmail, sessionRepo, cfg.App.AppEmailVerificationKey, cfg.App.AppDeploymentUrl)
	vehicleSvc := vehicle.NewVehicleService(vehicleRepo)
	reviewSvc := review.NewReviewService(reviewRepo, vehicleRepo)
	quizSvc := quiz.NewQuizService(prefRepo, quizRepo, vehicleRepo, matchCfgRepo, matchCache, matching.DefaultConfig())

	// Init handler
	userHandler := rest.NewUserHandler(userSvc)
	vehicleHandler := rest.NewVehicleHandler(vehicleSvc)
	reviewHandler := rest.NewReviewHandler(reviewSvc)
	quizHandler := rest.NewQuizHandler(quizSvc)
	matchAdminHandler := rest.NewMatchAdminHandler(matchCfgRepo)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Auth middleware
	authRequired := middleware.AuthMiddlewareWithRedis(userSvc)
	adminOnly := middleware.AdminOnly()

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupUserRoutes(api, userHandler, authRequired, adminOnly)
	router.SetupVehicleRoutes(api, vehicleHandler, authRequired, adminOnly)
	router.SetupReviewRoutes(api, reviewHandler, authRequired)
	router.SetupQuizRoutes(api, quizHandler, authRequired)
	router.SetupMatchAdminRoutes(api, matchAdminHandler, authRequired, adminOnly)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	if err := redisDB.CloseRedisClient(redisClient); err != nil {
		logger.Error("Redis shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
