// Package main provides the entry point for the HTTP server.
package main

import (
	"log"

	"github.com/gin-gonic/gin"

	appConfig "github.com/avsafety/peer-review/internal/config"
	"github.com/avsafety/peer-review/internal/database"
	"github.com/avsafety/peer-review/internal/database/migrate"
	"github.com/avsafety/peer-review/internal/health"
	"github.com/avsafety/peer-review/internal/middleware"
	"github.com/avsafety/peer-review/pkg/logger"

	assignmentRouter "github.com/avsafety/peer-review/internal/assignment/router"
	matchingRouter "github.com/avsafety/peer-review/internal/matching/router"
	organizationRouter "github.com/avsafety/peer-review/internal/organization/router"
	reviewerRouter "github.com/avsafety/peer-review/internal/reviewer/router"
	statisticsRouter "github.com/avsafety/peer-review/internal/statistics/router"
)

func main() {
	cfg := appConfig.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zapLogger, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()

	db, err := database.New()
	if err != nil {
		zapLogger.Fatalw("failed to connect to database", "error", err)
	}
	defer func() {
		if closeErr := database.Close(db); closeErr != nil {
			zapLogger.Errorw("failed to close database connection", "error", closeErr)
		}
	}()

	if err := migrate.Migrate(db); err != nil {
		zapLogger.Fatalw("failed to apply migrations", "error", err)
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.Logger(zapLogger))
	r.Use(middleware.Recovery(zapLogger))

	healthHandler := health.New(db, zapLogger)
	r.GET("/health", healthHandler.Check)

	organizationRouter.RegisterRoutes(r, db, zapLogger)
	reviewerRouter.RegisterRoutes(r, db, zapLogger)
	matchingRouter.RegisterRoutes(r, db, zapLogger)
	assignmentRouter.RegisterRoutes(r, db, zapLogger)
	statisticsRouter.RegisterRoutes(r, db, zapLogger)

	address := cfg.Server.GetAddress()
	zapLogger.Infow("starting server", "address", address)
	if err := r.Run(address); err != nil {
		zapLogger.Fatalw("failed to start server", "error", err)
	}
}
