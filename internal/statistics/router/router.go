// Package router wires the statistics endpoints.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/avsafety/peer-review/internal/statistics/handler"
	"github.com/avsafety/peer-review/internal/statistics/repository"
	"github.com/avsafety/peer-review/internal/statistics/service"
)

// RegisterRoutes builds the statistics stack on db and mounts its routes on r.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.GET("/statistics/reviewers", h.GetReviewersStatistics)
	r.GET("/statistics/assignments", h.GetAssignmentStatistics)
}
