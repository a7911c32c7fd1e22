package model

import (
	"time"
)

// Assignment statuses.
const (
	StatusDraft     = "DRAFT"
	StatusApproved  = "APPROVED"
	StatusCancelled = "CANCELLED"
)

// Assignment represents a review assignment entity in the system: a chosen
// team awaiting or past human approval. Matches the assignments table schema.
type Assignment struct {
	AssignmentID string     `gorm:"primaryKey;column:assignment_id;type:varchar(255)"                             json:"assignment_id"`
	TargetOrgID  string     `gorm:"column:target_org_id;type:varchar(255);not null;index:idx_assignments_target"  json:"target_org_id"`
	Status       string     `gorm:"column:status;type:varchar(32);not null;index:idx_assignments_status"          json:"status"`
	StartDate    time.Time  `gorm:"column:start_date;type:date;not null"                                          json:"start_date"`
	EndDate      time.Time  `gorm:"column:end_date;type:date;not null"                                            json:"end_date"`
	CreatedAt    time.Time  `gorm:"column:created_at;type:timestamptz;not null;default:now()"                     json:"createdAt"`
	ApprovedAt   *time.Time `gorm:"column:approved_at;type:timestamptz"                                           json:"approvedAt,omitempty"`
}

// TableName specifies the table name for GORM.
func (Assignment) TableName() string {
	return "assignments"
}

// AssignmentReviewer represents a team membership on a review assignment.
// Matches the assignment_reviewers table schema.
type AssignmentReviewer struct {
	ID           int64     `gorm:"primaryKey;column:id"                                                                     json:"id"`
	AssignmentID string    `gorm:"column:assignment_id;type:varchar(255);not null;index:idx_assignment_reviewers_assignment;uniqueIndex:idx_assignment_reviewers_member" json:"assignment_id"`
	UserID       string    `gorm:"column:user_id;type:varchar(255);not null;index:idx_assignment_reviewers_user;uniqueIndex:idx_assignment_reviewers_member"             json:"user_id"`
	IsLead       bool      `gorm:"column:is_lead;type:boolean;not null;default:false"                                        json:"is_lead"`
	AssignedAt   time.Time `gorm:"column:assigned_at;type:timestamptz;not null;default:now()"                                json:"assigned_at"`
}

// TableName specifies the table name for GORM.
func (AssignmentReviewer) TableName() string {
	return "assignment_reviewers"
}
