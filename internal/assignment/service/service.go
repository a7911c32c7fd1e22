// Package service provides business logic layer for assignment module.
package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	assignmentModel "github.com/avsafety/peer-review/internal/assignment/model"
	"github.com/avsafety/peer-review/internal/assignment/repository"
	matchingModel "github.com/avsafety/peer-review/internal/matching/model"
	matchingService "github.com/avsafety/peer-review/internal/matching/service"
)

// Service defines the interface for assignment business logic operations.
type Service interface {
	// CreateAssignment persists a chosen review team as a draft assignment.
	CreateAssignment(
		ctx context.Context,
		req *assignmentModel.CreateAssignmentRequest,
	) (*assignmentModel.AssignmentResponse, error)

	// ApproveAssignment marks an assignment as APPROVED (idempotent operation).
	ApproveAssignment(
		ctx context.Context,
		req *assignmentModel.ApproveAssignmentRequest,
	) (*assignmentModel.AssignmentResponse, error)

	// ReplaceReviewer swaps a team member for an engine-validated replacement.
	ReplaceReviewer(
		ctx context.Context,
		req *assignmentModel.ReplaceReviewerRequest,
	) (*assignmentModel.ReplaceReviewerResponse, error)

	// GetAssignment returns an assignment with its team.
	GetAssignment(ctx context.Context, assignmentID string) (*assignmentModel.AssignmentResponse, error)
}

type service struct {
	repo     repository.Repository
	db       *gorm.DB
	matching matchingService.Service
	logger   *zap.SugaredLogger
}

// New creates a new assignment service instance.
func New(
	repo repository.Repository,
	db *gorm.DB,
	matching matchingService.Service,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:     repo,
		db:       db,
		matching: matching,
		logger:   logger,
	}
}

// CreateAssignment persists a chosen review team as a draft assignment.
func (s *service) CreateAssignment(
	ctx context.Context,
	req *assignmentModel.CreateAssignmentRequest,
) (*assignmentModel.AssignmentResponse, error) {
	if req.AssignmentID == "" {
		return nil, assignmentModel.ErrInvalidAssignmentID
	}
	if len(req.ReviewerIDs) == 0 {
		return nil, assignmentModel.ErrEmptyTeam
	}

	start, err := time.Parse(time.DateOnly, req.StartDate)
	if err != nil {
		return nil, assignmentModel.ErrInvalidDates
	}
	end, err := time.Parse(time.DateOnly, req.EndDate)
	if err != nil {
		return nil, assignmentModel.ErrInvalidDates
	}
	if end.Before(start) {
		return nil, assignmentModel.ErrInvalidDates
	}

	// Transaction keeps the assignment row and its team atomic; the
	// duplicate check runs inside it to prevent a create race.
	var result *assignmentModel.AssignmentResponse
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)

		existing, checkErr := txRepo.GetByID(ctx, req.AssignmentID)
		if checkErr != nil && checkErr != assignmentModel.ErrAssignmentNotFound {
			return checkErr
		}
		if existing != nil {
			return assignmentModel.ErrAssignmentExists
		}

		a := &assignmentModel.Assignment{
			AssignmentID: req.AssignmentID,
			TargetOrgID:  req.TargetOrgID,
			Status:       assignmentModel.StatusDraft,
			StartDate:    start,
			EndDate:      end,
		}
		created, createErr := txRepo.Create(ctx, a)
		if createErr != nil {
			return createErr
		}

		for _, userID := range req.ReviewerIDs {
			isLead := userID == req.LeadUserID
			if addErr := txRepo.AddReviewer(ctx, req.AssignmentID, userID, isLead); addErr != nil {
				return addErr
			}
		}

		members, getErr := txRepo.GetReviewers(ctx, req.AssignmentID)
		if getErr != nil {
			return getErr
		}

		result = toResponse(created, members)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return result, nil
}

// ApproveAssignment marks an assignment as APPROVED (idempotent operation).
func (s *service) ApproveAssignment(
	ctx context.Context,
	req *assignmentModel.ApproveAssignmentRequest,
) (*assignmentModel.AssignmentResponse, error) {
	if req.AssignmentID == "" {
		return nil, assignmentModel.ErrInvalidAssignmentID
	}

	a, err := s.repo.GetByID(ctx, req.AssignmentID)
	if err != nil {
		return nil, err
	}

	// Already approved: return current state (idempotent).
	if a.Status == assignmentModel.StatusApproved {
		members, getErr := s.repo.GetReviewers(ctx, req.AssignmentID)
		if getErr != nil {
			return nil, getErr
		}
		return toResponse(a, members), nil
	}

	now := time.Now()
	if err := s.repo.UpdateStatus(ctx, req.AssignmentID, assignmentModel.StatusApproved, &now); err != nil {
		return nil, err
	}

	approved, err := s.repo.GetByID(ctx, req.AssignmentID)
	if err != nil {
		return nil, err
	}
	members, err := s.repo.GetReviewers(ctx, req.AssignmentID)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("assignment approved", "assignment_id", req.AssignmentID)
	return toResponse(approved, members), nil
}

// ReplaceReviewer swaps a team member for an engine-validated replacement.
func (s *service) ReplaceReviewer(
	ctx context.Context,
	req *assignmentModel.ReplaceReviewerRequest,
) (*assignmentModel.ReplaceReviewerResponse, error) {
	if req.AssignmentID == "" {
		return nil, assignmentModel.ErrInvalidAssignmentID
	}

	var result *assignmentModel.ReplaceReviewerResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)

		a, txErr := txRepo.GetByID(ctx, req.AssignmentID)
		if txErr != nil {
			return txErr
		}
		if a.Status == assignmentModel.StatusApproved {
			return assignmentModel.ErrAssignmentApproved
		}

		members, getErr := txRepo.GetReviewers(ctx, req.AssignmentID)
		if getErr != nil {
			return getErr
		}

		var old *assignmentModel.AssignmentReviewer
		for i := range members {
			if members[i].UserID == req.OldUserID {
				old = &members[i]
			}
			if members[i].UserID == req.NewUserID {
				return assignmentModel.ErrReviewerAlreadyAssigned
			}
		}
		if old == nil {
			return assignmentModel.ErrReviewerNotAssigned
		}

		// The replacement must pass the full matching eligibility check
		// for this assignment's target and window.
		check, checkErr := s.matching.CanAssign(ctx, req.NewUserID, &matchingModel.MatchingCriteria{
			TargetOrganizationID: a.TargetOrgID,
			StartDate:            a.StartDate,
			EndDate:              a.EndDate,
		})
		if checkErr != nil {
			return checkErr
		}
		if !check.Check.CanAssign {
			return assignmentModel.ErrReviewerNotAssignable
		}

		if removeErr := txRepo.RemoveReviewer(ctx, req.AssignmentID, req.OldUserID); removeErr != nil {
			return removeErr
		}
		if addErr := txRepo.AddReviewer(ctx, req.AssignmentID, req.NewUserID, old.IsLead); addErr != nil {
			return addErr
		}

		updated, updatedErr := txRepo.GetReviewers(ctx, req.AssignmentID)
		if updatedErr != nil {
			return updatedErr
		}

		result = &assignmentModel.ReplaceReviewerResponse{
			Assignment: toResponse(a, updated),
			ReplacedBy: req.NewUserID,
			Warnings:   check.Check.Reasons,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Infow("reviewer replaced",
		"assignment_id", req.AssignmentID,
		"old_user_id", req.OldUserID,
		"new_user_id", req.NewUserID,
	)
	return result, nil
}

// GetAssignment returns an assignment with its team.
func (s *service) GetAssignment(ctx context.Context, assignmentID string) (*assignmentModel.AssignmentResponse, error) {
	if assignmentID == "" {
		return nil, assignmentModel.ErrInvalidAssignmentID
	}

	a, err := s.repo.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	members, err := s.repo.GetReviewers(ctx, assignmentID)
	if err != nil {
		return nil, err
	}

	return toResponse(a, members), nil
}

func toResponse(a *assignmentModel.Assignment, members []assignmentModel.AssignmentReviewer) *assignmentModel.AssignmentResponse {
	reviewerIDs := make([]string, 0, len(members))
	leadUserID := ""
	for _, m := range members {
		reviewerIDs = append(reviewerIDs, m.UserID)
		if m.IsLead {
			leadUserID = m.UserID
		}
	}

	approvedAt := ""
	if a.ApprovedAt != nil {
		approvedAt = a.ApprovedAt.Format(time.RFC3339)
	}

	return &assignmentModel.AssignmentResponse{
		AssignmentID: a.AssignmentID,
		TargetOrgID:  a.TargetOrgID,
		Status:       a.Status,
		StartDate:    a.StartDate.Format(time.DateOnly),
		EndDate:      a.EndDate.Format(time.DateOnly),
		Reviewers:    reviewerIDs,
		LeadUserID:   leadUserID,
		CreatedAt:    a.CreatedAt.Format(time.RFC3339),
		ApprovedAt:   approvedAt,
	}
}
