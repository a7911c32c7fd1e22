// Package repository provides data access layer for statistics module.
package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/avsafety/peer-review/internal/statistics/model"
)

// Repository defines the interface for statistics data access operations.
type Repository interface {
	// GetReviewersStatistics returns statistics for all reviewers.
	GetReviewersStatistics(ctx context.Context) ([]model.ReviewerStatistics, error)

	// GetAssignmentStatistics returns aggregate statistics for assignments.
	GetAssignmentStatistics(ctx context.Context) (*model.AssignmentStatistics, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new statistics repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{
		db:     db,
		logger: logger,
	}
}

// GetReviewersStatistics returns statistics for all reviewers.
func (r *repository) GetReviewersStatistics(ctx context.Context) ([]model.ReviewerStatistics, error) {
	r.logger.Debugw("GetReviewersStatistics called")

	var stats []model.ReviewerStatistics

	err := r.db.WithContext(ctx).
		Table("reviewers").
		Select(`
			reviewers.user_id,
			reviewers.first_name,
			reviewers.last_name,
			reviewers.home_org_id,
			reviewers.is_active,
			COALESCE(COUNT(assignment_reviewers.user_id), 0) as assignment_count,
			COALESCE(SUM(CASE WHEN assignment_reviewers.is_lead THEN 1 ELSE 0 END), 0) as lead_count
		`).
		Joins("LEFT JOIN assignment_reviewers ON reviewers.user_id = assignment_reviewers.user_id").
		Group("reviewers.user_id, reviewers.first_name, reviewers.last_name, reviewers.home_org_id, reviewers.is_active").
		Order("assignment_count DESC, reviewers.user_id ASC").
		Scan(&stats).Error

	if err != nil {
		r.logger.Errorw("GetReviewersStatistics database error", "error", err)
		return nil, err
	}

	if stats == nil {
		stats = []model.ReviewerStatistics{}
	}

	r.logger.Debugw("GetReviewersStatistics completed", "count", len(stats))
	return stats, nil
}

// GetAssignmentStatistics returns aggregate statistics for assignments.
func (r *repository) GetAssignmentStatistics(ctx context.Context) (*model.AssignmentStatistics, error) {
	r.logger.Debugw("GetAssignmentStatistics called")

	var result struct {
		TotalAssignments       int64   `gorm:"column:total_assignments"`
		DraftAssignments       int64   `gorm:"column:draft_assignments"`
		ApprovedAssignments    int64   `gorm:"column:approved_assignments"`
		CancelledAssignments   int64   `gorm:"column:cancelled_assignments"`
		AverageTeamSize        float64 `gorm:"column:avg_team_size"`
		AssignmentsWithoutLead int64   `gorm:"column:assignments_without_lead"`
	}

	err := r.db.WithContext(ctx).
		Table("assignments").
		Select(`
			COUNT(*) as total_assignments,
			SUM(CASE WHEN status = 'DRAFT' THEN 1 ELSE 0 END) as draft_assignments,
			SUM(CASE WHEN status = 'APPROVED' THEN 1 ELSE 0 END) as approved_assignments,
			SUM(CASE WHEN status = 'CANCELLED' THEN 1 ELSE 0 END) as cancelled_assignments,
			COALESCE(AVG(team_counts.member_count), 0) as avg_team_size,
			SUM(CASE WHEN COALESCE(team_counts.lead_count, 0) = 0 THEN 1 ELSE 0 END) as assignments_without_lead
		`).
		Joins(`
			LEFT JOIN (
				SELECT assignment_id,
					CAST(COUNT(*) AS REAL) as member_count,
					SUM(CASE WHEN is_lead THEN 1 ELSE 0 END) as lead_count
				FROM assignment_reviewers
				GROUP BY assignment_id
			) team_counts ON assignments.assignment_id = team_counts.assignment_id
		`).
		Scan(&result).Error

	if err != nil {
		r.logger.Errorw("GetAssignmentStatistics database error", "error", err)
		return nil, err
	}

	stats := &model.AssignmentStatistics{
		TotalAssignments:       int(result.TotalAssignments),
		DraftAssignments:       int(result.DraftAssignments),
		ApprovedAssignments:    int(result.ApprovedAssignments),
		CancelledAssignments:   int(result.CancelledAssignments),
		AverageTeamSize:        result.AverageTeamSize,
		AssignmentsWithoutLead: int(result.AssignmentsWithoutLead),
	}

	r.logger.Debugw("GetAssignmentStatistics completed", "total_assignments", stats.TotalAssignments)
	return stats, nil
}
