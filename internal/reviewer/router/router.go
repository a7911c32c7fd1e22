// Package router wires the reviewer endpoints.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/avsafety/peer-review/internal/reviewer/handler"
	"github.com/avsafety/peer-review/internal/reviewer/repository"
	"github.com/avsafety/peer-review/internal/reviewer/service"
)

// RegisterRoutes builds the reviewer stack on db and mounts its routes on r.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.POST("/reviewers/setIsActive", h.SetIsActive)
	r.GET("/reviewers/getProfile", h.GetProfile)
	r.GET("/reviewers/getAssignments", h.GetAssignments)
}
