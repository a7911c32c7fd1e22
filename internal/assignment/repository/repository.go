// Package repository provides data access layer for assignment module.
package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/avsafety/peer-review/internal/assignment/model"
)

// Repository defines the interface for assignment data access operations.
type Repository interface {
	// Create creates a new assignment.
	Create(ctx context.Context, a *model.Assignment) (*model.Assignment, error)

	// GetByID finds assignment by assignment_id.
	GetByID(ctx context.Context, assignmentID string) (*model.Assignment, error)

	// UpdateStatus updates assignment status and approved_at timestamp.
	UpdateStatus(ctx context.Context, assignmentID string, status string, approvedAt *time.Time) error

	// AddReviewer adds a team member to an assignment.
	AddReviewer(ctx context.Context, assignmentID, userID string, isLead bool) error

	// RemoveReviewer removes a team member from an assignment.
	RemoveReviewer(ctx context.Context, assignmentID, userID string) error

	// GetReviewers returns team member records for an assignment in
	// assignment order.
	GetReviewers(ctx context.Context, assignmentID string) ([]model.AssignmentReviewer, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new assignment repository instance.
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

// Create creates a new assignment.
func (r *repository) Create(ctx context.Context, a *model.Assignment) (*model.Assignment, error) {
	a.CreatedAt = time.Now()

	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		if isDuplicateError(err) {
			return nil, model.ErrAssignmentExists
		}
		r.logger.Errorw("Create assignment database error", "assignment_id", a.AssignmentID, "error", err)
		return nil, err
	}

	return a, nil
}

// GetByID finds assignment by assignment_id.
func (r *repository) GetByID(ctx context.Context, assignmentID string) (*model.Assignment, error) {
	var a model.Assignment
	err := r.db.WithContext(ctx).
		Where("assignment_id = ?", assignmentID).
		First(&a).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrAssignmentNotFound
		}
		r.logger.Errorw("GetByID database error", "assignment_id", assignmentID, "error", err)
		return nil, err
	}

	return &a, nil
}

// UpdateStatus updates assignment status and approved_at timestamp.
func (r *repository) UpdateStatus(ctx context.Context, assignmentID string, status string, approvedAt *time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&model.Assignment{}).
		Where("assignment_id = ?", assignmentID).
		Updates(map[string]interface{}{
			"status":      status,
			"approved_at": approvedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("UpdateStatus database error", "assignment_id", assignmentID, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrAssignmentNotFound
	}

	return nil
}

// AddReviewer adds a team member to an assignment.
func (r *repository) AddReviewer(ctx context.Context, assignmentID, userID string, isLead bool) error {
	member := &model.AssignmentReviewer{
		AssignmentID: assignmentID,
		UserID:       userID,
		IsLead:       isLead,
		AssignedAt:   time.Now(),
	}

	if err := r.db.WithContext(ctx).Create(member).Error; err != nil {
		if isDuplicateError(err) {
			return model.ErrReviewerAlreadyAssigned
		}
		r.logger.Errorw("AddReviewer database error",
			"assignment_id", assignmentID, "user_id", userID, "error", err)
		return err
	}

	return nil
}

// RemoveReviewer removes a team member from an assignment.
func (r *repository) RemoveReviewer(ctx context.Context, assignmentID, userID string) error {
	result := r.db.WithContext(ctx).
		Where("assignment_id = ? AND user_id = ?", assignmentID, userID).
		Delete(&model.AssignmentReviewer{})

	if result.Error != nil {
		r.logger.Errorw("RemoveReviewer database error",
			"assignment_id", assignmentID, "user_id", userID, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrReviewerNotAssigned
	}

	return nil
}

// GetReviewers returns team member records for an assignment.
func (r *repository) GetReviewers(ctx context.Context, assignmentID string) ([]model.AssignmentReviewer, error) {
	var members []model.AssignmentReviewer

	err := r.db.WithContext(ctx).
		Where("assignment_id = ?", assignmentID).
		Order("id ASC").
		Find(&members).Error

	if err != nil {
		r.logger.Errorw("GetReviewers database error", "assignment_id", assignmentID, "error", err)
		return nil, err
	}

	if members == nil {
		members = []model.AssignmentReviewer{}
	}

	return members, nil
}
