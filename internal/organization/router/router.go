// Package router wires the organization endpoints.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/avsafety/peer-review/internal/organization/handler"
	"github.com/avsafety/peer-review/internal/organization/repository"
	"github.com/avsafety/peer-review/internal/organization/service"
)

// RegisterRoutes builds the organization stack on db and mounts its routes on r.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.POST("/organizations/add", h.AddOrganization)
	r.GET("/organizations/get", h.GetOrganization)
}
