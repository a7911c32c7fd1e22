// Package repository provides data access layer for reviewer module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/avsafety/peer-review/internal/reviewer/model"
)

// Repository defines the interface for reviewer data access operations.
type Repository interface {
	// GetByID finds reviewer by user_id.
	GetByID(ctx context.Context, userID string) (*model.Reviewer, error)

	// UpdateIsActive updates reviewer's is_active flag.
	UpdateIsActive(ctx context.Context, userID string, isActive bool) (*model.Reviewer, error)

	// GetProfile returns the reviewer row with all child records.
	GetProfile(ctx context.Context, userID string) (*model.ProfileResponse, error)

	// GetAssignments returns assignments where the reviewer is a team member.
	GetAssignments(ctx context.Context, userID string) ([]model.AssignmentShort, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new reviewer repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// GetByID finds reviewer by user_id.
func (r *repository) GetByID(ctx context.Context, userID string) (*model.Reviewer, error) {
	r.logger.Debugw("GetByID called", "user_id", userID)

	var reviewer model.Reviewer
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&reviewer).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Debugw("GetByID reviewer not found", "user_id", userID)
			return nil, model.ErrReviewerNotFound
		}
		r.logger.Errorw("GetByID database error", "user_id", userID, "error", err)
		return nil, err
	}

	return &reviewer, nil
}

// UpdateIsActive updates reviewer's is_active flag.
func (r *repository) UpdateIsActive(ctx context.Context, userID string, isActive bool) (*model.Reviewer, error) {
	r.logger.Infow("UpdateIsActive called", "user_id", userID, "new_state", isActive)

	result := r.db.WithContext(ctx).
		Model(&model.Reviewer{}).
		Where("user_id = ?", userID).
		Update("is_active", isActive)

	if result.Error != nil {
		r.logger.Errorw("UpdateIsActive database error", "user_id", userID, "error", result.Error)
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		r.logger.Debugw("UpdateIsActive reviewer not found", "user_id", userID)
		return nil, model.ErrReviewerNotFound
	}

	return r.GetByID(ctx, userID)
}

// GetProfile returns the reviewer row with all child records.
func (r *repository) GetProfile(ctx context.Context, userID string) (*model.ProfileResponse, error) {
	reviewer, err := r.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := &model.ProfileResponse{Reviewer: *reviewer}

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&profile.Expertise).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&profile.Languages).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&profile.Availability).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&profile.Conflicts).Error; err != nil {
		return nil, err
	}

	return profile, nil
}

// GetAssignments returns assignments where the reviewer is a team member.
func (r *repository) GetAssignments(ctx context.Context, userID string) ([]model.AssignmentShort, error) {
	r.logger.Debugw("GetAssignments called", "user_id", userID)

	var assignments []model.AssignmentShort

	err := r.db.WithContext(ctx).
		Table("assignments").
		Select("assignments.assignment_id, assignments.target_org_id, assignments.status").
		Joins("JOIN assignment_reviewers ON assignments.assignment_id = assignment_reviewers.assignment_id").
		Where("assignment_reviewers.user_id = ?", userID).
		Order("assignments.assignment_id ASC").
		Scan(&assignments).Error

	if err != nil {
		r.logger.Errorw("GetAssignments database error", "user_id", userID, "error", err)
		return nil, err
	}

	if assignments == nil {
		assignments = []model.AssignmentShort{}
	}

	return assignments, nil
}
