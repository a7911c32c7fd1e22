// Package handler provides HTTP handlers for organization endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/avsafety/peer-review/internal/organization/model"
	"github.com/avsafety/peer-review/internal/organization/service"
)

// Handler handles HTTP requests for organization endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new organization handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// AddOrganization handles POST /organizations/add request.
// @Summary Register an audited organization
// @Tags Organizations
// @Accept json
// @Produce json
// @Param request body model.AddOrganizationRequest true "Request"
// @Success 201 {object} model.OrganizationResponse
// @Failure 400 {object} ErrorResponse
// @Router /organizations/add [post].
func (h *Handler) AddOrganization(c *gin.Context) {
	var req model.AddOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.AddOrganization(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrOrganizationExists) {
			errorResponse(c, "ORGANIZATION_EXISTS", "org_id already exists", http.StatusBadRequest)
			return
		}
		if errors.Is(err, model.ErrInvalidOrgID) {
			errorResponse(c, "INVALID_REQUEST", "org_id is required", http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error adding organization", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, map[string]interface{}{
		"organization": resp,
	})
}

// GetOrganization handles GET /organizations/get request.
// @Summary Get an organization
// @Tags Organizations
// @Produce json
// @Param org_id query string true "Organization ID"
// @Success 200 {object} model.OrganizationResponse
// @Failure 404 {object} ErrorResponse
// @Router /organizations/get [get].
func (h *Handler) GetOrganization(c *gin.Context) {
	orgID := c.Query("org_id")
	if orgID == "" {
		errorResponse(c, "INVALID_REQUEST", "org_id parameter is required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.GetOrganization(c.Request.Context(), orgID)
	if err != nil {
		if errors.Is(err, model.ErrOrganizationNotFound) {
			notFoundResponse(c, "organization not found")
			return
		}
		h.logger.Errorw("error getting organization", "org_id", orgID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}
