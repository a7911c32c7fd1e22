package engine

import "github.com/avsafety/peer-review/internal/matching/model"

// FilterByMinScore returns the results with a total score of at least min.
func FilterByMinScore(results []model.MatchResult, min float64) []model.MatchResult {
	filtered := make([]model.MatchResult, 0, len(results))
	for _, r := range results {
		if r.TotalScore >= min {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// FilterEligibleOnly returns only the eligible results.
func FilterEligibleOnly(results []model.MatchResult) []model.MatchResult {
	filtered := make([]model.MatchResult, 0, len(results))
	for _, r := range results {
		if r.IsEligible {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// TopCandidates returns at most limit results from the front of the list.
func TopCandidates(results []model.MatchResult, limit int) []model.MatchResult {
	if limit < 0 {
		limit = 0
	}
	if limit > len(results) {
		limit = len(results)
	}
	return results[:limit]
}

// CanAssignReviewer runs the full single-candidate match and reports whether
// the reviewer could be assigned, with the match warnings as reasons.
func (e *Engine) CanAssignReviewer(
	candidate *model.ReviewerCandidate,
	criteria *model.MatchingCriteria,
) model.AssignabilityCheck {
	result := e.CalculateMatchScore(candidate, criteria)
	return model.AssignabilityCheck{
		CanAssign: result.IsEligible,
		Reasons:   result.Warnings,
	}
}
