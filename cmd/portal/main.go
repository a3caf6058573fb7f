package main

import (
	"fmt"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	portal "github.com/kauportal/portal"
	"github.com/kauportal/portal/api"
	"github.com/kauportal/portal/config"
	"github.com/kauportal/portal/course"
	"github.com/kauportal/portal/flow"
	"github.com/kauportal/portal/logger"
	"github.com/kauportal/portal/orcid"
	"github.com/kauportal/portal/persistence"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger.InitLogger(cfg.LogLevel)
	defer logger.Log.Sync()

	logger.Log.Info("starting portal backend",
		zap.Int("port", cfg.Port),
		zap.String("db_type", cfg.DBType),
	)

	repo, err := persistence.NewStorage(cfg.DBType, cfg.DSN, nil)
	if err != nil {
		logger.Log.Fatal("failed to initialize storage", zap.Error(err))
	}

	hasher := flow.NewBcryptHasher(0)
	regManager := portal.NewRegistrationManager(repo, hasher)
	loginManager := portal.NewLoginManager(repo, hasher)
	sessionManager := portal.NewSessionManager(repo, cfg.JWTSecret, cfg.SessionTTL)

	registry := orcid.NewClient(cfg.OrcidBaseURL, cfg.OrcidResearcherID)
	courses := course.NewService(repo)

	h := api.NewHandler(regManager, loginManager, sessionManager, repo, registry, repo, courses)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: true,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Log.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
			)
			return nil
		},
	}))

	g := e.Group("/api/v1")
	h.RegisterRoutes(g)

	if err := e.Start(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		logger.Log.Fatal("server stopped", zap.Error(err))
	}
}
