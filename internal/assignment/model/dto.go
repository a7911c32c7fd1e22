// Package model provides data transfer objects and domain models for the assignment module.
package model

// CreateAssignmentRequest represents the request to persist a chosen team.
type CreateAssignmentRequest struct {
	AssignmentID string   `json:"assignment_id"  binding:"required"`
	TargetOrgID  string   `json:"target_org_id"  binding:"required"`
	StartDate    string   `json:"start_date"     binding:"required"`
	EndDate      string   `json:"end_date"       binding:"required"`
	ReviewerIDs  []string `json:"reviewer_ids"   binding:"required"`
	LeadUserID   string   `json:"lead_user_id"`
}

// ApproveAssignmentRequest represents the request to approve an assignment.
type ApproveAssignmentRequest struct {
	AssignmentID string `json:"assignment_id" binding:"required"`
}

// ReplaceReviewerRequest represents the request to replace a team member.
type ReplaceReviewerRequest struct {
	AssignmentID string `json:"assignment_id" binding:"required"`
	OldUserID    string `json:"old_user_id"   binding:"required"`
	NewUserID    string `json:"new_user_id"   binding:"required"`
}

// AssignmentResponse represents the response after creating, approving or
// getting an assignment.
type AssignmentResponse struct {
	AssignmentID string   `json:"assignment_id"`
	TargetOrgID  string   `json:"target_org_id"`
	Status       string   `json:"status"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	Reviewers    []string `json:"reviewers"`
	LeadUserID   string   `json:"lead_user_id,omitempty"`
	CreatedAt    string   `json:"createdAt,omitempty"`
	ApprovedAt   string   `json:"approvedAt,omitempty"`
}

// ReplaceReviewerResponse represents the response after replacing a reviewer.
type ReplaceReviewerResponse struct {
	Assignment *AssignmentResponse `json:"assignment"`
	ReplacedBy string              `json:"replaced_by"`
	Warnings   []string            `json:"warnings,omitempty"`
}
