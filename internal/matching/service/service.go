// Package service provides business logic layer for matching module.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/avsafety/peer-review/internal/matching/engine"
	"github.com/avsafety/peer-review/internal/matching/model"
	"github.com/avsafety/peer-review/internal/matching/repository"
)

// Service defines the interface for matching business logic operations.
type Service interface {
	// FindReviewers scores and ranks the active reviewer pool against criteria.
	FindReviewers(ctx context.Context, criteria *model.MatchingCriteria) (*model.FindReviewersResponse, error)

	// BuildTeam assembles a review team from the active reviewer pool.
	BuildTeam(ctx context.Context, criteria *model.MatchingCriteria) (*model.BuildTeamResponse, error)

	// CanAssign checks whether one reviewer could be assigned for criteria.
	CanAssign(ctx context.Context, reviewerID string, criteria *model.MatchingCriteria) (*model.CanAssignResponse, error)
}

type service struct {
	repo   repository.Repository
	engine *engine.Engine
	logger *zap.SugaredLogger
}

// New creates a new matching service instance.
func New(repo repository.Repository, eng *engine.Engine, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		engine: eng,
		logger: logger,
	}
}

func validateCriteria(criteria *model.MatchingCriteria) error {
	if criteria.TargetOrganizationID == "" {
		return model.ErrInvalidTargetOrganization
	}
	if criteria.EndDate.Before(criteria.StartDate) {
		return model.ErrInvalidDateRange
	}
	return nil
}

// FindReviewers scores and ranks the active reviewer pool against criteria.
func (s *service) FindReviewers(ctx context.Context, criteria *model.MatchingCriteria) (*model.FindReviewersResponse, error) {
	if err := validateCriteria(criteria); err != nil {
		return nil, err
	}

	candidates, err := s.repo.LoadCandidates(ctx)
	if err != nil {
		return nil, err
	}

	results := s.engine.FindMatchingReviewers(criteria, candidates)

	s.logger.Infow("reviewer matching completed",
		"target_org", criteria.TargetOrganizationID,
		"pool_size", len(candidates),
		"ranked", len(results),
	)

	return &model.FindReviewersResponse{Candidates: results}, nil
}

// BuildTeam assembles a review team from the active reviewer pool.
func (s *service) BuildTeam(ctx context.Context, criteria *model.MatchingCriteria) (*model.BuildTeamResponse, error) {
	if err := validateCriteria(criteria); err != nil {
		return nil, err
	}

	candidates, err := s.repo.LoadCandidates(ctx)
	if err != nil {
		return nil, err
	}

	ranked := s.engine.FindMatchingReviewers(criteria, candidates)
	result := s.engine.BuildOptimalTeam(criteria, ranked)

	s.logger.Infow("team composition completed",
		"target_org", criteria.TargetOrganizationID,
		"team_size", len(result.Team),
		"viable", result.IsViable,
		"balance", result.Coverage.TeamBalance,
	)

	return &model.BuildTeamResponse{Result: result}, nil
}

// CanAssign checks whether one reviewer could be assigned for criteria.
func (s *service) CanAssign(ctx context.Context, reviewerID string, criteria *model.MatchingCriteria) (*model.CanAssignResponse, error) {
	if err := validateCriteria(criteria); err != nil {
		return nil, err
	}

	candidate, err := s.repo.LoadCandidate(ctx, reviewerID)
	if err != nil {
		return nil, err
	}

	check := s.engine.CanAssignReviewer(candidate, criteria)

	return &model.CanAssignResponse{
		ReviewerID: reviewerID,
		Check:      check,
	}, nil
}
