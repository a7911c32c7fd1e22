// Package handler provides HTTP handlers for reviewer endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/avsafety/peer-review/internal/reviewer/model"
	"github.com/avsafety/peer-review/internal/reviewer/service"
)

// Handler handles HTTP requests for reviewer endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new reviewer handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// SetIsActive handles POST /reviewers/setIsActive request.
// @Summary Set reviewer activity status
// @Tags Reviewers
// @Accept json
// @Produce json
// @Param request body model.SetIsActiveRequest true "Request"
// @Success 200 {object} model.SetIsActiveResponse
// @Failure 404 {object} ErrorResponse
// @Router /reviewers/setIsActive [post].
func (h *Handler) SetIsActive(c *gin.Context) {
	var req model.SetIsActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.SetIsActive(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrReviewerNotFound) {
			notFoundResponse(c, "reviewer not found")
			return
		}
		if errors.Is(err, model.ErrInvalidIsActive) {
			errorResponse(c, "INVALID_REQUEST", "is_active field is required", http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error setting reviewer activity", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetProfile handles GET /reviewers/getProfile request.
// @Summary Get a reviewer's full profile
// @Tags Reviewers
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} model.ProfileResponse
// @Failure 404 {object} ErrorResponse
// @Router /reviewers/getProfile [get].
func (h *Handler) GetProfile(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		errorResponse(c, "INVALID_REQUEST", "user_id parameter is required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrReviewerNotFound) {
			notFoundResponse(c, "reviewer not found")
			return
		}
		h.logger.Errorw("error getting reviewer profile", "user_id", userID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetAssignments handles GET /reviewers/getAssignments request.
// Returns 200 with empty list for nonexistent reviewers rather than 404.
// @Summary Get assignments the reviewer is a member of
// @Tags Reviewers
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} model.GetAssignmentsResponse
// @Failure 400 {object} ErrorResponse
// @Router /reviewers/getAssignments [get].
func (h *Handler) GetAssignments(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		errorResponse(c, "INVALID_REQUEST", "user_id parameter is required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.GetAssignments(c.Request.Context(), userID)
	if err != nil {
		h.logger.Errorw("error getting reviewer assignments", "user_id", userID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}
