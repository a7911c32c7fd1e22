// Package model provides domain models and DTOs for reviewer module.
package model

// SetIsActiveRequest represents the request to update reviewer activity status.
type SetIsActiveRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	IsActive *bool  `json:"is_active" binding:"required"`
}

// SetIsActiveResponse represents the response after updating reviewer activity.
type SetIsActiveResponse struct {
	Reviewer Reviewer `json:"reviewer"`
}

// ProfileResponse represents a reviewer's full profile.
type ProfileResponse struct {
	Reviewer     Reviewer               `json:"reviewer"`
	Expertise    []ReviewerExpertise    `json:"expertise"`
	Languages    []ReviewerLanguage     `json:"languages"`
	Availability []ReviewerAvailability `json:"availability"`
	Conflicts    []ReviewerConflict     `json:"conflicts_of_interest"`
}

// AssignmentShort represents a shortened review assignment information.
// Used in GetAssignmentsResponse.
type AssignmentShort struct {
	AssignmentID string `json:"assignment_id"`
	TargetOrgID  string `json:"target_org_id"`
	Status       string `json:"status"` // DRAFT, APPROVED or CANCELLED
}

// GetAssignmentsResponse represents the response for getting a reviewer's
// review assignments.
type GetAssignmentsResponse struct {
	UserID      string            `json:"user_id"`
	Assignments []AssignmentShort `json:"assignments"`
}
