// Package handler provides HTTP handlers for assignment endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/avsafety/peer-review/internal/assignment/model"
	"github.com/avsafety/peer-review/internal/assignment/service"
	matchingModel "github.com/avsafety/peer-review/internal/matching/model"
)

// Handler handles HTTP requests for assignment endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new assignment handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreateAssignment handles POST /assignments/create request.
// @Summary Persist a chosen review team as a draft assignment
// @Tags Assignments
// @Accept json
// @Produce json
// @Param request body model.CreateAssignmentRequest true "Request"
// @Success 201 {object} model.AssignmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /assignments/create [post].
func (h *Handler) CreateAssignment(c *gin.Context) {
	var req model.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.CreateAssignment(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ApproveAssignment handles POST /assignments/approve request.
// @Summary Approve a draft assignment (idempotent)
// @Tags Assignments
// @Accept json
// @Produce json
// @Param request body model.ApproveAssignmentRequest true "Request"
// @Success 200 {object} model.AssignmentResponse
// @Failure 404 {object} ErrorResponse
// @Router /assignments/approve [post].
func (h *Handler) ApproveAssignment(c *gin.Context) {
	var req model.ApproveAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.ApproveAssignment(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ReplaceReviewer handles POST /assignments/replaceReviewer request.
// @Summary Replace a team member with an eligibility-checked substitute
// @Tags Assignments
// @Accept json
// @Produce json
// @Param request body model.ReplaceReviewerRequest true "Request"
// @Success 200 {object} model.ReplaceReviewerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /assignments/replaceReviewer [post].
func (h *Handler) ReplaceReviewer(c *gin.Context) {
	var req model.ReplaceReviewerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.ReplaceReviewer(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetAssignment handles GET /assignments/get request.
// @Summary Get an assignment with its team
// @Tags Assignments
// @Produce json
// @Param assignment_id query string true "Assignment ID"
// @Success 200 {object} model.AssignmentResponse
// @Failure 404 {object} ErrorResponse
// @Router /assignments/get [get].
func (h *Handler) GetAssignment(c *gin.Context) {
	assignmentID := c.Query("assignment_id")
	if assignmentID == "" {
		errorResponse(c, "INVALID_REQUEST", "assignment_id is required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.GetAssignment(c.Request.Context(), assignmentID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidAssignmentID),
		errors.Is(err, model.ErrInvalidDates),
		errors.Is(err, model.ErrEmptyTeam):
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, model.ErrAssignmentNotFound):
		notFoundResponse(c, "assignment not found")
	case errors.Is(err, matchingModel.ErrReviewerNotFound):
		notFoundResponse(c, "reviewer not found")
	case errors.Is(err, model.ErrAssignmentExists):
		errorResponse(c, "ALREADY_EXISTS", "assignment already exists", http.StatusConflict)
	case errors.Is(err, model.ErrAssignmentApproved):
		errorResponse(c, "ASSIGNMENT_APPROVED", "approved assignment cannot be modified", http.StatusConflict)
	case errors.Is(err, model.ErrReviewerAlreadyAssigned):
		errorResponse(c, "ALREADY_ASSIGNED", "reviewer is already on the team", http.StatusConflict)
	case errors.Is(err, model.ErrReviewerNotAssigned):
		errorResponse(c, "NOT_ASSIGNED", "reviewer is not on the team", http.StatusConflict)
	case errors.Is(err, model.ErrReviewerNotAssignable):
		errorResponse(c, "NOT_ASSIGNABLE", "replacement reviewer is not eligible for this assignment", http.StatusConflict)
	default:
		h.logger.Errorw("assignment request failed", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}
