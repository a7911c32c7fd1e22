// Package repository provides data access layer for organization module.
package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/avsafety/peer-review/internal/organization/model"
)

// Repository defines the interface for organization data access operations.
type Repository interface {
	// Create registers a new organization.
	Create(ctx context.Context, org *model.Organization) (*model.Organization, error)

	// GetByID finds an organization by org_id.
	GetByID(ctx context.Context, orgID string) (*model.Organization, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new organization repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// isDuplicateError checks if error is a duplicate key error.
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "UNIQUE constraint")
}

// Create registers a new organization.
func (r *repository) Create(ctx context.Context, org *model.Organization) (*model.Organization, error) {
	r.logger.Debugw("Create organization called", "org_id", org.OrgID)

	now := time.Now()
	org.CreatedAt = now
	org.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(org).Error; err != nil {
		if isDuplicateError(err) {
			return nil, model.ErrOrganizationExists
		}
		r.logger.Errorw("Create organization database error", "org_id", org.OrgID, "error", err)
		return nil, err
	}

	return org, nil
}

// GetByID finds an organization by org_id.
func (r *repository) GetByID(ctx context.Context, orgID string) (*model.Organization, error) {
	var org model.Organization
	err := r.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		First(&org).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrOrganizationNotFound
		}
		r.logger.Errorw("GetByID database error", "org_id", orgID, "error", err)
		return nil, err
	}

	return &org, nil
}
