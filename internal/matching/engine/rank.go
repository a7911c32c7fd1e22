package engine

import (
	"sort"

	"github.com/avsafety/peer-review/internal/matching/model"
)

// FindMatchingReviewers filters, scores and ranks the candidate pool.
// Candidates on the exclusion list and candidates whose home organization is
// the target organization are dropped entirely: they never appear in the
// output, not even as COI-flagged results. Eligible candidates sort before
// ineligible ones; within each group, descending total score (stable).
func (e *Engine) FindMatchingReviewers(
	criteria *model.MatchingCriteria,
	candidates []model.ReviewerCandidate,
) []model.MatchResult {
	excluded := make(map[string]bool, len(criteria.ExcludeReviewers))
	for _, id := range criteria.ExcludeReviewers {
		excluded[id] = true
	}

	results := make([]model.MatchResult, 0, len(candidates))
	for i := range candidates {
		c := &candidates[i]
		if excluded[c.UserID] {
			continue
		}
		if c.HomeOrganizationID == criteria.TargetOrganizationID {
			continue
		}
		results = append(results, e.CalculateMatchScore(c, criteria))
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].IsEligible != results[j].IsEligible {
			return results[i].IsEligible
		}
		return results[i].TotalScore > results[j].TotalScore
	})

	return results
}
