// Package service provides business logic layer for organization module.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/avsafety/peer-review/internal/organization/model"
	"github.com/avsafety/peer-review/internal/organization/repository"
)

// Service defines the interface for organization business logic operations.
type Service interface {
	// AddOrganization registers a new audited organization.
	AddOrganization(ctx context.Context, req *model.AddOrganizationRequest) (*model.OrganizationResponse, error)

	// GetOrganization returns an organization by id.
	GetOrganization(ctx context.Context, orgID string) (*model.OrganizationResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new organization service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// AddOrganization registers a new audited organization.
func (s *service) AddOrganization(ctx context.Context, req *model.AddOrganizationRequest) (*model.OrganizationResponse, error) {
	if req.OrgID == "" {
		return nil, model.ErrInvalidOrgID
	}

	org := &model.Organization{
		OrgID:    req.OrgID,
		Name:     req.Name,
		Code:     req.Code,
		State:    req.State,
		IsActive: true,
	}

	created, err := s.repo.Create(ctx, org)
	if err != nil {
		return nil, err
	}

	return toResponse(created), nil
}

// GetOrganization returns an organization by id.
func (s *service) GetOrganization(ctx context.Context, orgID string) (*model.OrganizationResponse, error) {
	if orgID == "" {
		return nil, model.ErrInvalidOrgID
	}

	org, err := s.repo.GetByID(ctx, orgID)
	if err != nil {
		return nil, err
	}

	return toResponse(org), nil
}

func toResponse(org *model.Organization) *model.OrganizationResponse {
	return &model.OrganizationResponse{
		OrgID:    org.OrgID,
		Name:     org.Name,
		Code:     org.Code,
		State:    org.State,
		IsActive: org.IsActive,
	}
}
