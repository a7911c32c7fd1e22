package engine

import "github.com/avsafety/peer-review/internal/matching/model"

// ineligibilityReason phrases a hard-COI disqualification. Types without a
// specific phrasing fall back to the generic conflict message.
func ineligibilityReason(t model.ConflictType) model.Reason {
	switch t {
	case model.ConflictHomeOrganization:
		return model.Reason{
			EN: "Conflict of interest: reviewer's current employer",
			FR: "Conflit d'intérêts : employeur actuel de l'examinateur",
		}
	case model.ConflictFamilyRelationship:
		return model.Reason{
			EN: "Conflict of interest: family relationship",
			FR: "Conflit d'intérêts : lien familial",
		}
	}
	return model.Reason{
		EN: "Disqualifying conflict of interest",
		FR: "Conflit d'intérêts disqualifiant",
	}
}

// requiredCoverage is matched/(matched+missing); no requirements counts as 1.
func requiredCoverage(matched, missing int) float64 {
	total := matched + missing
	if total == 0 {
		return 1
	}
	return float64(matched) / float64(total)
}

// DetermineEligibility converts the per-dimension results into a binary
// verdict. Rules are checked in order and the first failing rule wins; a
// SOFT conflict never blocks eligibility.
func (e *Engine) DetermineEligibility(
	coi model.COIStatus,
	expertise model.ExpertiseDetails,
	language model.LanguageDetails,
	availability model.AvailabilityStatus,
) (bool, *model.Reason) {
	if coi.HasConflict && coi.Severity != nil && *coi.Severity == model.SeverityHard {
		reason := ineligibilityReason(*coi.Type)
		return false, &reason
	}

	expCoverage := requiredCoverage(len(expertise.RequiredMatched), len(expertise.RequiredMissing))
	if expCoverage < e.cfg.MinExpertiseCoverage {
		return false, &model.Reason{
			EN: "Insufficient expertise in required areas",
			FR: "Expertise insuffisante dans les domaines requis",
		}
	}

	if !language.CanConductReview && len(language.Missing) > 0 {
		return false, &model.Reason{
			EN: "Cannot conduct review in required languages",
			FR: "Ne peut pas mener l'examen dans les langues requises",
		}
	}

	if availability.Coverage < e.cfg.MinAvailabilityCoverage {
		return false, &model.Reason{
			EN: "Unavailable during the review period",
			FR: "Indisponible pendant la période d'examen",
		}
	}

	return true, nil
}
