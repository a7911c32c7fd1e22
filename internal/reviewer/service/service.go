// Package service provides business logic layer for reviewer module.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/avsafety/peer-review/internal/reviewer/model"
	"github.com/avsafety/peer-review/internal/reviewer/repository"
)

// Service defines the interface for reviewer business logic operations.
type Service interface {
	// SetIsActive updates a reviewer's activity status.
	SetIsActive(ctx context.Context, req *model.SetIsActiveRequest) (*model.SetIsActiveResponse, error)

	// GetProfile returns a reviewer's full profile.
	GetProfile(ctx context.Context, userID string) (*model.ProfileResponse, error)

	// GetAssignments returns assignments the reviewer is a member of.
	GetAssignments(ctx context.Context, userID string) (*model.GetAssignmentsResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new reviewer service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// SetIsActive updates a reviewer's activity status.
func (s *service) SetIsActive(ctx context.Context, req *model.SetIsActiveRequest) (*model.SetIsActiveResponse, error) {
	if req.UserID == "" {
		return nil, model.ErrReviewerNotFound
	}
	if req.IsActive == nil {
		return nil, model.ErrInvalidIsActive
	}

	reviewer, err := s.repo.UpdateIsActive(ctx, req.UserID, *req.IsActive)
	if err != nil {
		return nil, err
	}

	return &model.SetIsActiveResponse{Reviewer: *reviewer}, nil
}

// GetProfile returns a reviewer's full profile.
func (s *service) GetProfile(ctx context.Context, userID string) (*model.ProfileResponse, error) {
	if userID == "" {
		return nil, model.ErrInvalidUserID
	}

	return s.repo.GetProfile(ctx, userID)
}

// GetAssignments returns assignments the reviewer is a member of.
// Returns an empty list for unknown reviewers rather than an error.
func (s *service) GetAssignments(ctx context.Context, userID string) (*model.GetAssignmentsResponse, error) {
	if userID == "" {
		return nil, model.ErrInvalidUserID
	}

	assignments, err := s.repo.GetAssignments(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &model.GetAssignmentsResponse{
		UserID:      userID,
		Assignments: assignments,
	}, nil
}
