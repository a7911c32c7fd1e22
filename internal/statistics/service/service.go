// Package service provides business logic layer for statistics module.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/avsafety/peer-review/internal/statistics/model"
	"github.com/avsafety/peer-review/internal/statistics/repository"
)

// Service defines the interface for statistics business logic operations.
type Service interface {
	// GetReviewersStatistics returns statistics for all reviewers.
	GetReviewersStatistics(ctx context.Context) (*model.ReviewersStatisticsResponse, error)

	// GetAssignmentStatistics returns aggregate statistics for assignments.
	GetAssignmentStatistics(ctx context.Context) (*model.AssignmentStatisticsResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new statistics service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// GetReviewersStatistics returns statistics for all reviewers.
func (s *service) GetReviewersStatistics(ctx context.Context) (*model.ReviewersStatisticsResponse, error) {
	s.logger.Debugw("GetReviewersStatistics called")

	reviewers, err := s.repo.GetReviewersStatistics(ctx)
	if err != nil {
		s.logger.Errorw("GetReviewersStatistics failed", "error", err)
		return nil, err
	}

	if reviewers == nil {
		reviewers = []model.ReviewerStatistics{}
	}

	s.logger.Infow("GetReviewersStatistics completed", "count", len(reviewers))
	return &model.ReviewersStatisticsResponse{
		Reviewers: reviewers,
		Total:     len(reviewers),
	}, nil
}

// GetAssignmentStatistics returns aggregate statistics for assignments.
func (s *service) GetAssignmentStatistics(ctx context.Context) (*model.AssignmentStatisticsResponse, error) {
	s.logger.Debugw("GetAssignmentStatistics called")

	stats, err := s.repo.GetAssignmentStatistics(ctx)
	if err != nil {
		s.logger.Errorw("GetAssignmentStatistics failed", "error", err)
		return nil, err
	}

	s.logger.Infow("GetAssignmentStatistics completed", "total_assignments", stats.TotalAssignments)
	return &model.AssignmentStatisticsResponse{
		Statistics: *stats,
	}, nil
}
