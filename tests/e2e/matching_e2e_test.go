//go:build e2e
// +build e2e

package e2e

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	assignmentModel "github.com/avsafety/peer-review/internal/assignment/model"
	organizationModel "github.com/avsafety/peer-review/internal/organization/model"
)

func TestE2ETestSuite(t *testing.T) {
	suite.Run(t, new(E2ETestSuite))
}

func (s *E2ETestSuite) seedReviewPool() {
	resp := s.addOrganization(&organizationModel.AddOrganizationRequest{
		OrgID: "org_ansp_fd",
		Name:  "Freedonia ANSP",
		Code:  "ANSP-FD",
		State: "Freedonia",
	})
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode)

	s.seedReviewer(seededProfile{
		UserID: "u1", HomeOrgID: "org_caa_sy",
		YearsExperience: 15, ReviewsCompleted: 9, IsLeadQualified: true,
		ExpertiseArea: "ATS", ExpertiseLevel: "EXPERT",
		Language: "EN", Proficiency: "NATIVE",
		AvailableFrom: "2026-02-01", AvailableTo: "2026-04-30",
	})
	s.seedReviewer(seededProfile{
		UserID: "u2", HomeOrgID: "org_caa_sy",
		YearsExperience: 8, ReviewsCompleted: 4,
		ExpertiseArea: "ATS", ExpertiseLevel: "PROFICIENT",
		Language: "EN", Proficiency: "ADVANCED",
		AvailableFrom: "2026-02-01", AvailableTo: "2026-04-30",
	})
	s.seedReviewer(seededProfile{
		UserID: "u3", HomeOrgID: "org_caa_at",
		YearsExperience: 10, ReviewsCompleted: 5,
		ExpertiseArea: "ATS", ExpertiseLevel: "EXPERT",
		Language: "EN", Proficiency: "NATIVE",
		AvailableFrom: "2026-02-01", AvailableTo: "2026-04-30",
	})
}

func (s *E2ETestSuite) reviewCriteria() map[string]interface{} {
	return map[string]interface{}{
		"target_organization_id": "org_ansp_fd",
		"required_expertise":     []string{"ATS"},
		"required_languages":     []string{"EN"},
		"start_date":             "2026-03-01",
		"end_date":               "2026-03-10",
		"team_size":              3,
	}
}

func (s *E2ETestSuite) TestFindReviewersRanking() {
	s.seedReviewPool()

	resp, found := s.findReviewers(s.reviewCriteria())
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	require.Len(s.T(), found.Candidates, 3)

	for i := 1; i < len(found.Candidates); i++ {
		assert.GreaterOrEqual(s.T(), found.Candidates[i-1].TotalScore, found.Candidates[i].TotalScore)
	}
	for _, c := range found.Candidates {
		assert.True(s.T(), c.IsEligible)
	}
}

func (s *E2ETestSuite) TestHomeOrganizationConflictBlocksAssignment() {
	s.seedReviewPool()
	s.seedReviewer(seededProfile{
		UserID: "u_home", HomeOrgID: "org_ansp_fd",
		YearsExperience: 20, ReviewsCompleted: 12, IsLeadQualified: true,
		ExpertiseArea: "ATS", ExpertiseLevel: "EXPERT",
		Language: "EN", Proficiency: "NATIVE",
		AvailableFrom: "2026-02-01", AvailableTo: "2026-04-30",
	})

	resp, check := s.canAssign("u_home", s.reviewCriteria())
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	assert.False(s.T(), check.Check.CanAssign)
	assert.NotEmpty(s.T(), check.Check.Reasons)

	resp, found := s.findReviewers(s.reviewCriteria())
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	for _, c := range found.Candidates {
		assert.NotEqual(s.T(), "u_home", c.UserID)
	}
}

func (s *E2ETestSuite) TestAssignmentLifecycle() {
	s.seedReviewPool()

	resp, built := s.buildTeam(s.reviewCriteria())
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	require.True(s.T(), built.Result.IsViable)
	require.Len(s.T(), built.Result.Team, 3)

	memberIDs := make([]string, 0, 3)
	leadID := ""
	for _, m := range built.Result.Team {
		memberIDs = append(memberIDs, m.UserID)
		if m.IsLeadQualified && leadID == "" {
			leadID = m.UserID
		}
	}
	require.NotEmpty(s.T(), leadID)

	resp, created, _ := s.createAssignment(&assignmentModel.CreateAssignmentRequest{
		AssignmentID: "asg_fd_2026_03",
		TargetOrgID:  "org_ansp_fd",
		StartDate:    "2026-03-01",
		EndDate:      "2026-03-10",
		ReviewerIDs:  memberIDs,
		LeadUserID:   leadID,
	})
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode)
	assert.Equal(s.T(), assignmentModel.StatusDraft, created.Status)

	// Duplicate create must conflict
	resp, _, respBody := s.createAssignment(&assignmentModel.CreateAssignmentRequest{
		AssignmentID: "asg_fd_2026_03",
		TargetOrgID:  "org_ansp_fd",
		StartDate:    "2026-03-01",
		EndDate:      "2026-03-10",
		ReviewerIDs:  memberIDs,
		LeadUserID:   leadID,
	})
	require.Equal(s.T(), http.StatusConflict, resp.StatusCode)
	code, _ := s.parseErrorResponse(respBody)
	assert.Equal(s.T(), "ALREADY_EXISTS", code)

	resp, approved := s.approveAssignment("asg_fd_2026_03")
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	assert.Equal(s.T(), assignmentModel.StatusApproved, approved.Status)
	assert.NotEmpty(s.T(), approved.ApprovedAt)

	// Approve again, same result
	resp, again := s.approveAssignment("asg_fd_2026_03")
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	assert.Equal(s.T(), approved.ApprovedAt, again.ApprovedAt)

	// Approved assignments are frozen
	resp, _, respBody = s.replaceReviewer("asg_fd_2026_03", memberIDs[1], "u_new")
	require.Equal(s.T(), http.StatusConflict, resp.StatusCode)
	code, _ = s.parseErrorResponse(respBody)
	assert.Equal(s.T(), "ASSIGNMENT_APPROVED", code)
}

func (s *E2ETestSuite) TestReplaceReviewerOnDraft() {
	s.seedReviewPool()
	s.seedReviewer(seededProfile{
		UserID: "u4", HomeOrgID: "org_caa_at",
		YearsExperience: 9, ReviewsCompleted: 3,
		ExpertiseArea: "ATS", ExpertiseLevel: "PROFICIENT",
		Language: "EN", Proficiency: "ADVANCED",
		AvailableFrom: "2026-02-01", AvailableTo: "2026-04-30",
	})

	resp, _, _ := s.createAssignment(&assignmentModel.CreateAssignmentRequest{
		AssignmentID: "asg1",
		TargetOrgID:  "org_ansp_fd",
		StartDate:    "2026-03-01",
		EndDate:      "2026-03-10",
		ReviewerIDs:  []string{"u1", "u2", "u3"},
		LeadUserID:   "u1",
	})
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode)

	resp, replaced, _ := s.replaceReviewer("asg1", "u2", "u4")
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	assert.Equal(s.T(), "u4", replaced.ReplacedBy)
	assert.Contains(s.T(), replaced.Assignment.Reviewers, "u4")
	assert.NotContains(s.T(), replaced.Assignment.Reviewers, "u2")
	assert.Equal(s.T(), "u1", replaced.Assignment.LeadUserID)
}

func (s *E2ETestSuite) TestDeclaredConflictProducesWarning() {
	s.seedReviewPool()
	// Former employee of the target, a soft conflict
	s.seedReviewer(seededProfile{
		UserID: "u_former", HomeOrgID: "org_caa_at",
		YearsExperience: 11, ReviewsCompleted: 6,
		ExpertiseArea: "ATS", ExpertiseLevel: "EXPERT",
		Language: "EN", Proficiency: "NATIVE",
		AvailableFrom: "2026-02-01", AvailableTo: "2026-04-30",
		ConflictOrgID: "org_ansp_fd", ConflictType: "FORMER_EMPLOYEE",
	})

	resp, check := s.canAssign("u_former", s.reviewCriteria())
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	assert.True(s.T(), check.Check.CanAssign)
	assert.NotEmpty(s.T(), check.Check.Reasons)
}

func (s *E2ETestSuite) TestStatisticsEndpoints() {
	s.seedReviewPool()

	resp, _, _ := s.createAssignment(&assignmentModel.CreateAssignmentRequest{
		AssignmentID: "asg1",
		TargetOrgID:  "org_ansp_fd",
		StartDate:    "2026-03-01",
		EndDate:      "2026-03-10",
		ReviewerIDs:  []string{"u1", "u2"},
		LeadUserID:   "u1",
	})
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode)

	resp, respBody := s.doRequest("GET", "/statistics/reviewers", nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	assert.Contains(s.T(), string(respBody), "u1")

	resp, respBody = s.doRequest("GET", "/statistics/assignments", nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	assert.Contains(s.T(), string(respBody), "total_assignments")
}
