package model

import "time"

// CriteriaRequest is the wire form of MatchingCriteria. Dates are accepted
// as YYYY-MM-DD strings.
type CriteriaRequest struct {
	TargetOrganizationID string          `json:"target_organization_id" binding:"required"`
	RequiredExpertise    []ExpertiseArea `json:"required_expertise"`
	PreferredExpertise   []ExpertiseArea `json:"preferred_expertise"`
	RequiredLanguages    []Language      `json:"required_languages"`
	StartDate            string          `json:"start_date" binding:"required"`
	EndDate              string          `json:"end_date" binding:"required"`
	TeamSize             int             `json:"team_size"`
	MustIncludeReviewers []string        `json:"must_include_reviewers"`
	ExcludeReviewers     []string        `json:"exclude_reviewers"`
}

// ToCriteria parses the wire form into engine criteria.
func (r *CriteriaRequest) ToCriteria() (*MatchingCriteria, error) {
	start, err := time.Parse(time.DateOnly, r.StartDate)
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	end, err := time.Parse(time.DateOnly, r.EndDate)
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	if end.Before(start) {
		return nil, ErrInvalidDateRange
	}

	return &MatchingCriteria{
		TargetOrganizationID: r.TargetOrganizationID,
		RequiredExpertise:    r.RequiredExpertise,
		PreferredExpertise:   r.PreferredExpertise,
		RequiredLanguages:    r.RequiredLanguages,
		StartDate:            start,
		EndDate:              end,
		TeamSize:             r.TeamSize,
		MustIncludeReviewers: r.MustIncludeReviewers,
		ExcludeReviewers:     r.ExcludeReviewers,
	}, nil
}

// FindReviewersResponse is the response for POST /matching/findReviewers.
type FindReviewersResponse struct {
	Candidates []MatchResult `json:"candidates"`
}

// BuildTeamResponse is the response for POST /matching/buildTeam.
type BuildTeamResponse struct {
	Result TeamBuildResult `json:"result"`
}

// CanAssignRequest is the request for POST /matching/canAssign.
type CanAssignRequest struct {
	ReviewerID string          `json:"reviewer_id" binding:"required"`
	Criteria   CriteriaRequest `json:"criteria" binding:"required"`
}

// CanAssignResponse is the response for POST /matching/canAssign.
type CanAssignResponse struct {
	ReviewerID string             `json:"reviewer_id"`
	Check      AssignabilityCheck `json:"check"`
}
