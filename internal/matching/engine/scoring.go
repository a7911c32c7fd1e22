package engine

import (
	"fmt"
	"time"

	"github.com/avsafety/peer-review/internal/matching/model"
)

// dedupeAreas drops duplicates preserving input order.
func dedupeAreas(areas []model.ExpertiseArea) []model.ExpertiseArea {
	seen := make(map[model.ExpertiseArea]bool, len(areas))
	out := make([]model.ExpertiseArea, 0, len(areas))
	for _, a := range areas {
		if !seen[a] {
			seen[a] = true
			out = append(out, a)
		}
	}
	return out
}

// dedupeLanguages drops duplicates preserving input order.
func dedupeLanguages(langs []model.Language) []model.Language {
	seen := make(map[model.Language]bool, len(langs))
	out := make([]model.Language, 0, len(langs))
	for _, l := range langs {
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	return out
}

// ScoreExpertise computes the expertise dimension. An empty required list
// means no constraint and yields the full maximum.
func (e *Engine) ScoreExpertise(
	expertise []model.Expertise,
	required []model.ExpertiseArea,
	preferred []model.ExpertiseArea,
) model.ExpertiseDetails {
	required = dedupeAreas(required)

	if len(required) == 0 {
		return model.ExpertiseDetails{
			Score:            e.cfg.ExpertiseMax,
			RequiredMatched:  []model.ExpertiseArea{},
			RequiredMissing:  []model.ExpertiseArea{},
			PreferredMatched: []model.ExpertiseArea{},
		}
	}

	// First record per area wins when a profile carries duplicates.
	levels := make(map[model.ExpertiseArea]model.ProficiencyLevel, len(expertise))
	for _, exp := range expertise {
		if _, ok := levels[exp.Area]; !ok {
			levels[exp.Area] = exp.Level
		}
	}

	requiredSet := make(map[model.ExpertiseArea]bool, len(required))
	for _, a := range required {
		requiredSet[a] = true
	}

	matched := make([]model.ExpertiseArea, 0, len(required))
	missing := make([]model.ExpertiseArea, 0)

	share := e.cfg.RequiredExpertisePool / float64(len(required))
	requiredScore := 0.0
	for _, area := range required {
		level, ok := levels[area]
		if !ok {
			missing = append(missing, area)
			continue
		}
		matched = append(matched, area)
		requiredScore += share * proficiencyMultiplier(level)
	}
	requiredScore = clamp(requiredScore, 0, e.cfg.RequiredExpertisePool)

	// Preferred areas already listed as required do not score twice.
	preferredOnly := make([]model.ExpertiseArea, 0, len(preferred))
	for _, a := range dedupeAreas(preferred) {
		if !requiredSet[a] {
			preferredOnly = append(preferredOnly, a)
		}
	}

	preferredMatched := make([]model.ExpertiseArea, 0, len(preferredOnly))
	preferredScore := 0.0
	if len(preferredOnly) > 0 {
		prefShare := e.cfg.PreferredExpertisePool / float64(len(preferredOnly))
		for _, area := range preferredOnly {
			level, ok := levels[area]
			if !ok {
				continue
			}
			preferredMatched = append(preferredMatched, area)
			preferredScore += prefShare * proficiencyMultiplier(level)
		}
		preferredScore = clamp(preferredScore, 0, e.cfg.PreferredExpertisePool)
	}

	return model.ExpertiseDetails{
		Score:            clamp(requiredScore+preferredScore, 0, e.cfg.ExpertiseMax),
		RequiredMatched:  matched,
		RequiredMissing:  missing,
		PreferredMatched: preferredMatched,
	}
}

// ScoreLanguages computes the language dimension. Per matched language the
// even share pays out 60% unconditionally, up to 25% scaled by proficiency
// and 15% when the reviewer can personally conduct interviews in it.
func (e *Engine) ScoreLanguages(
	languages []model.LanguageSkill,
	required []model.Language,
) model.LanguageDetails {
	required = dedupeLanguages(required)

	if len(required) == 0 {
		return model.LanguageDetails{
			Score:            e.cfg.LanguageMax,
			Matched:          []model.Language{},
			Missing:          []model.Language{},
			CanConductReview: true,
		}
	}

	skills := make(map[model.Language]model.LanguageSkill, len(languages))
	for _, l := range languages {
		if _, ok := skills[l.Language]; !ok {
			skills[l.Language] = l
		}
	}

	matched := make([]model.Language, 0, len(required))
	missing := make([]model.Language, 0)

	share := e.cfg.LanguageMax / float64(len(required))
	score := 0.0
	allPresentAtLeastIntermediate := true
	for _, lang := range required {
		skill, ok := skills[lang]
		if !ok {
			missing = append(missing, lang)
			continue
		}
		matched = append(matched, lang)

		score += share * 0.6
		score += share * 0.25 * languageBonus(skill.Proficiency)
		if skill.CanConductInterviews {
			score += share * 0.15
		}

		if skill.Proficiency == model.LanguageBasic {
			allPresentAtLeastIntermediate = false
		}
	}

	return model.LanguageDetails{
		Score:            clamp(score, 0, e.cfg.LanguageMax),
		Matched:          matched,
		Missing:          missing,
		CanConductReview: allPresentAtLeastIntermediate && len(missing) == 0,
	}
}

// toDate truncates a timestamp to a UTC calendar day.
func toDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ScoreAvailability computes availability coverage over the inclusive review
// window. Periods are overlaid day by day in input order; later periods
// overwrite earlier ones for overlapping days (last write wins). An invalid
// window degrades to a zero score with an explicit conflict note.
func (e *Engine) ScoreAvailability(
	periods []model.AvailabilityPeriod,
	startDate, endDate time.Time,
) model.AvailabilityStatus {
	start := toDate(startDate)
	end := toDate(endDate)

	totalDays := int(end.Sub(start).Hours()/24) + 1
	if totalDays <= 0 {
		return model.AvailabilityStatus{
			Score:     0,
			Coverage:  0,
			TotalDays: 0,
			Conflicts: []string{
				fmt.Sprintf("invalid review period: %s to %s",
					start.Format(time.DateOnly), end.Format(time.DateOnly)),
			},
		}
	}

	days := make([]model.AvailabilityType, totalDays)
	for i := range days {
		days[i] = model.AvailabilityUnavailable
	}

	conflicts := make([]string, 0)
	seenNotes := make(map[string]bool)
	for _, p := range periods {
		pStart := toDate(p.StartDate)
		pEnd := toDate(p.EndDate)
		if pEnd.Before(start) || pStart.After(end) {
			continue
		}

		for i := 0; i < totalDays; i++ {
			day := start.AddDate(0, 0, i)
			if !day.Before(pStart) && !day.After(pEnd) {
				days[i] = p.Type
			}
		}

		if p.Type == model.AvailabilityOnAssignment && p.Notes != "" && !seenNotes[p.Notes] {
			seenNotes[p.Notes] = true
			conflicts = append(conflicts, p.Notes)
		}
	}

	weighted := 0.0
	for _, t := range days {
		weighted += availabilityWeight(t)
	}
	coverage := weighted / float64(totalDays)

	return model.AvailabilityStatus{
		Score:         clamp(coverage*e.cfg.AvailabilityMax, 0, e.cfg.AvailabilityMax),
		Coverage:      coverage,
		AvailableDays: weighted,
		TotalDays:     totalDays,
		Conflicts:     conflicts,
	}
}

// ScoreExperience computes the experience dimension from years of aviation
// experience and completed reviews, each on a 0-5 ramp.
func (e *Engine) ScoreExperience(years float64, reviewsCompleted int) float64 {
	min, mid, full := e.cfg.MinYearsExperience, e.cfg.MidYearsExperience, e.cfg.FullYearsExperience
	var yearsScore float64
	switch {
	case years < min:
		yearsScore = 0
	case years < mid:
		yearsScore = 1 + (years-min)*2/(mid-min)
	case years < full:
		yearsScore = 3 + (years-mid)*2/(full-mid)
	default:
		yearsScore = 5
	}

	reviews := float64(reviewsCompleted)
	var reviewsScore float64
	switch {
	case reviews < 2:
		reviewsScore = 0.5 * reviews
	case reviews < 5:
		reviewsScore = 1 + (reviews-2)*2/3
	case reviews < 10:
		reviewsScore = 3 + (reviews-5)*2/5
	default:
		reviewsScore = 5
	}

	return clamp(yearsScore+reviewsScore, 0, e.cfg.ExperienceMax)
}
