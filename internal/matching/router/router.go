// Package router wires the matching endpoints.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/avsafety/peer-review/internal/matching/engine"
	"github.com/avsafety/peer-review/internal/matching/handler"
	"github.com/avsafety/peer-review/internal/matching/repository"
	"github.com/avsafety/peer-review/internal/matching/service"
)

// RegisterRoutes builds the matching stack on db and mounts its routes on r.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	eng := engine.New(engine.DefaultConfig())
	svc := service.New(repo, eng, logger)
	h := handler.New(svc, logger)

	r.POST("/matching/findReviewers", h.FindReviewers)
	r.POST("/matching/buildTeam", h.BuildTeam)
	r.POST("/matching/canAssign", h.CanAssign)
}
