// Package router wires the assignment endpoints.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/avsafety/peer-review/internal/assignment/handler"
	"github.com/avsafety/peer-review/internal/assignment/repository"
	"github.com/avsafety/peer-review/internal/assignment/service"
	"github.com/avsafety/peer-review/internal/matching/engine"
	matchingRepository "github.com/avsafety/peer-review/internal/matching/repository"
	matchingService "github.com/avsafety/peer-review/internal/matching/service"
)

// RegisterRoutes builds the assignment stack on db and mounts its routes on r.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	matchingRepo := matchingRepository.New(db, logger)
	eng := engine.New(engine.DefaultConfig())
	matching := matchingService.New(matchingRepo, eng, logger)

	repo := repository.New(db, logger)
	svc := service.New(repo, db, matching, logger)
	h := handler.New(svc, logger)

	r.POST("/assignments/create", h.CreateAssignment)
	r.POST("/assignments/approve", h.ApproveAssignment)
	r.POST("/assignments/replaceReviewer", h.ReplaceReviewer)
	r.GET("/assignments/get", h.GetAssignment)
}
