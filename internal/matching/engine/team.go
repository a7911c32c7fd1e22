package engine

import (
	"fmt"

	"github.com/avsafety/peer-review/internal/matching/model"
)

// teamState tracks incremental coverage while the team is being assembled.
type teamState struct {
	expertiseCovered map[model.ExpertiseArea]bool
	languagesCovered map[model.Language]bool
	hasLead          bool
}

func (s *teamState) add(m *model.MatchResult) {
	for _, a := range m.Expertise.RequiredMatched {
		s.expertiseCovered[a] = true
	}
	for _, a := range m.Expertise.PreferredMatched {
		s.expertiseCovered[a] = true
	}
	for _, l := range m.Language.Matched {
		s.languagesCovered[l] = true
	}
	if m.IsLeadQualified {
		s.hasLead = true
	}
}

// incrementalValue scores what a candidate would newly contribute to the
// current team: a bonus per not-yet-covered required expertise area and
// required language, plus a one-time bonus for the first lead-qualified
// member.
func (e *Engine) incrementalValue(s *teamState, m *model.MatchResult) float64 {
	value := 0.0
	for _, a := range m.Expertise.RequiredMatched {
		if !s.expertiseCovered[a] {
			value += e.cfg.ExpertiseGapBonus
		}
	}
	for _, l := range m.Language.Matched {
		if !s.languagesCovered[l] {
			value += e.cfg.LanguageGapBonus
		}
	}
	if !s.hasLead && m.IsLeadQualified {
		value += e.cfg.LeadQualifiedBonus
	}
	return value
}

// clampTeamSize bounds the requested size to the programme limits.
func (e *Engine) clampTeamSize(requested int) int {
	if requested < e.cfg.MinTeamSize {
		return e.cfg.MinTeamSize
	}
	if requested > e.cfg.MaxTeamSize {
		return e.cfg.MaxTeamSize
	}
	return requested
}

// BuildOptimalTeam greedily assembles a team from ranked candidates. Each
// iteration picks the candidate maximizing a combination of individual score
// and incremental coverage value; ties keep pool input order. This is a
// local heuristic, not an exact solver.
func (e *Engine) BuildOptimalTeam(
	criteria *model.MatchingCriteria,
	ranked []model.MatchResult,
) model.TeamBuildResult {
	target := e.clampTeamSize(criteria.TeamSize)

	warnings := make([]string, 0)
	team := make([]model.MatchResult, 0, target)
	inTeam := make(map[string]bool, target)
	state := &teamState{
		expertiseCovered: make(map[model.ExpertiseArea]bool),
		languagesCovered: make(map[model.Language]bool),
	}

	byID := make(map[string]*model.MatchResult, len(ranked))
	for i := range ranked {
		byID[ranked[i].UserID] = &ranked[i]
	}

	// Forced members join first, in the order given, eligible or not.
	for _, id := range criteria.MustIncludeReviewers {
		m, ok := byID[id]
		if !ok {
			warnings = append(warnings, fmt.Sprintf("required member %s is not in the candidate pool", id))
			continue
		}
		if inTeam[m.UserID] {
			continue
		}
		if !m.IsEligible {
			reason := "not eligible"
			if m.IneligibleReason != nil {
				reason = m.IneligibleReason.EN
			}
			warnings = append(warnings, fmt.Sprintf("required member %s is ineligible: %s", m.DisplayName, reason))
		}
		team = append(team, *m)
		inTeam[m.UserID] = true
		state.add(m)
	}

	pool := make([]*model.MatchResult, 0, len(ranked))
	for i := range ranked {
		if ranked[i].IsEligible && !inTeam[ranked[i].UserID] {
			pool = append(pool, &ranked[i])
		}
	}

	for len(team) < target && len(pool) > 0 {
		bestIdx := 0
		bestScore := -1.0
		for i, m := range pool {
			combined := e.cfg.ScoreWeight*m.TotalScore + e.cfg.CoverageWeight*e.incrementalValue(state, m)
			if combined > bestScore {
				bestScore = combined
				bestIdx = i
			}
		}
		chosen := pool[bestIdx]
		team = append(team, *chosen)
		inTeam[chosen.UserID] = true
		state.add(chosen)
		pool = append(pool[:bestIdx], pool[bestIdx+1:]...)
	}

	coverage := e.buildCoverageReport(criteria, team, state)

	totalScore := 0.0
	for i := range team {
		totalScore += team[i].TotalScore
	}
	averageScore := 0.0
	if len(team) > 0 {
		averageScore = totalScore / float64(len(team))
	}

	if len(team) < target {
		warnings = append(warnings, fmt.Sprintf("team has %d members, %d requested", len(team), target))
	}
	if !coverage.HasLeadQualified {
		warnings = append(warnings, "team has no lead-qualified member")
	}
	if len(coverage.ExpertiseMissing) > 0 {
		warnings = append(warnings, fmt.Sprintf("expertise not covered by team: %s", joinAreas(coverage.ExpertiseMissing)))
	}
	if len(coverage.LanguagesMissing) > 0 {
		warnings = append(warnings, fmt.Sprintf("languages not covered by team: %s", joinLanguages(coverage.LanguagesMissing)))
	}

	isViable := len(team) >= e.cfg.MinTeamSize &&
		float64(len(team)) >= 0.8*float64(target) &&
		coverage.ExpertiseCoverage >= 0.5 &&
		coverage.LanguageCoverage >= 0.5

	return model.TeamBuildResult{
		Team:         team,
		Coverage:     coverage,
		TotalScore:   totalScore,
		AverageScore: averageScore,
		Warnings:     warnings,
		IsViable:     isViable,
	}
}

func (e *Engine) buildCoverageReport(
	criteria *model.MatchingCriteria,
	team []model.MatchResult,
	state *teamState,
) model.CoverageReport {
	requiredExpertise := dedupeAreas(criteria.RequiredExpertise)
	requiredLanguages := dedupeLanguages(criteria.RequiredLanguages)

	covered := make([]model.ExpertiseArea, 0, len(state.expertiseCovered))
	seenArea := make(map[model.ExpertiseArea]bool, len(state.expertiseCovered))
	for i := range team {
		for _, a := range team[i].Expertise.RequiredMatched {
			if !seenArea[a] {
				seenArea[a] = true
				covered = append(covered, a)
			}
		}
		for _, a := range team[i].Expertise.PreferredMatched {
			if !seenArea[a] {
				seenArea[a] = true
				covered = append(covered, a)
			}
		}
	}

	coveredLangs := make([]model.Language, 0, len(state.languagesCovered))
	seenLang := make(map[model.Language]bool, len(state.languagesCovered))
	for i := range team {
		for _, l := range team[i].Language.Matched {
			if !seenLang[l] {
				seenLang[l] = true
				coveredLangs = append(coveredLangs, l)
			}
		}
	}

	missingExpertise := make([]model.ExpertiseArea, 0)
	coveredRequired := 0
	for _, a := range requiredExpertise {
		if seenArea[a] {
			coveredRequired++
		} else {
			missingExpertise = append(missingExpertise, a)
		}
	}
	expertiseCoverage := 1.0
	if len(requiredExpertise) > 0 {
		expertiseCoverage = float64(coveredRequired) / float64(len(requiredExpertise))
	}

	missingLanguages := make([]model.Language, 0)
	coveredReqLangs := 0
	for _, l := range requiredLanguages {
		if seenLang[l] {
			coveredReqLangs++
		} else {
			missingLanguages = append(missingLanguages, l)
		}
	}
	languageCoverage := 1.0
	if len(requiredLanguages) > 0 {
		languageCoverage = float64(coveredReqLangs) / float64(len(requiredLanguages))
	}

	balance := model.BalanceGood
	if expertiseCoverage < 0.8 || languageCoverage < 1 || !state.hasLead {
		balance = model.BalanceFair
	}
	if expertiseCoverage < 0.5 || languageCoverage < 0.5 {
		balance = model.BalancePoor
	}

	return model.CoverageReport{
		ExpertiseCovered:  covered,
		ExpertiseMissing:  missingExpertise,
		ExpertiseCoverage: expertiseCoverage,
		LanguagesCovered:  coveredLangs,
		LanguagesMissing:  missingLanguages,
		LanguageCoverage:  languageCoverage,
		HasLeadQualified:  state.hasLead,
		TeamBalance:       balance,
	}
}
