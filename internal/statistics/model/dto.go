// Package model provides data transfer objects for statistics module.
package model

// ReviewerStatistics represents statistics for a reviewer.
type ReviewerStatistics struct {
	UserID          string `json:"user_id"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	HomeOrgID       string `json:"home_org_id"`
	AssignmentCount int    `json:"assignment_count"`
	LeadCount       int    `json:"lead_count"`
	IsActive        bool   `json:"is_active"`
}

// ReviewersStatisticsResponse represents response for reviewers statistics.
type ReviewersStatisticsResponse struct {
	Reviewers []ReviewerStatistics `json:"reviewers"`
	Total     int                  `json:"total"`
}

// AssignmentStatistics represents aggregate statistics for assignments.
type AssignmentStatistics struct {
	TotalAssignments       int     `json:"total_assignments"`
	DraftAssignments       int     `json:"draft_assignments"`
	ApprovedAssignments    int     `json:"approved_assignments"`
	CancelledAssignments   int     `json:"cancelled_assignments"`
	AverageTeamSize        float64 `json:"average_team_size"`
	AssignmentsWithoutLead int     `json:"assignments_without_lead"`
}

// AssignmentStatisticsResponse represents response for assignment statistics.
type AssignmentStatisticsResponse struct {
	Statistics AssignmentStatistics `json:"statistics"`
}
