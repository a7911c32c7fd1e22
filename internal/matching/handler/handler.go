// Package handler provides HTTP handlers for matching endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/avsafety/peer-review/internal/matching/model"
	"github.com/avsafety/peer-review/internal/matching/service"
)

// Handler handles HTTP requests for matching endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new matching handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// FindReviewers handles POST /matching/findReviewers request.
// @Summary Score and rank the reviewer pool against assignment criteria
// @Tags Matching
// @Accept json
// @Produce json
// @Param request body model.CriteriaRequest true "Request"
// @Success 200 {object} model.FindReviewersResponse
// @Failure 400 {object} ErrorResponse
// @Router /matching/findReviewers [post].
func (h *Handler) FindReviewers(c *gin.Context) {
	var req model.CriteriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	criteria, err := req.ToCriteria()
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid review period", http.StatusBadRequest)
		return
	}

	resp, err := h.service.FindReviewers(c.Request.Context(), criteria)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// BuildTeam handles POST /matching/buildTeam request.
// @Summary Assemble a review team for assignment criteria
// @Tags Matching
// @Accept json
// @Produce json
// @Param request body model.CriteriaRequest true "Request"
// @Success 200 {object} model.BuildTeamResponse
// @Failure 400 {object} ErrorResponse
// @Router /matching/buildTeam [post].
func (h *Handler) BuildTeam(c *gin.Context) {
	var req model.CriteriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	criteria, err := req.ToCriteria()
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid review period", http.StatusBadRequest)
		return
	}

	resp, err := h.service.BuildTeam(c.Request.Context(), criteria)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CanAssign handles POST /matching/canAssign request.
// @Summary Check whether one reviewer can be assigned
// @Tags Matching
// @Accept json
// @Produce json
// @Param request body model.CanAssignRequest true "Request"
// @Success 200 {object} model.CanAssignResponse
// @Failure 404 {object} ErrorResponse
// @Router /matching/canAssign [post].
func (h *Handler) CanAssign(c *gin.Context) {
	var req model.CanAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	criteria, err := req.Criteria.ToCriteria()
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid review period", http.StatusBadRequest)
		return
	}

	resp, err := h.service.CanAssign(c.Request.Context(), req.ReviewerID, criteria)
	if err != nil {
		if errors.Is(err, model.ErrReviewerNotFound) {
			notFoundResponse(c, "reviewer not found")
			return
		}
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidTargetOrganization):
		errorResponse(c, "INVALID_REQUEST", "target_organization_id is required", http.StatusBadRequest)
	case errors.Is(err, model.ErrInvalidDateRange):
		errorResponse(c, "INVALID_REQUEST", "invalid review period", http.StatusBadRequest)
	default:
		h.logger.Errorw("matching request failed", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}
