package engine

import "github.com/avsafety/peer-review/internal/matching/model"

// conflictReason maps each conflict type to its bilingual description.
func conflictReason(t model.ConflictType) model.Reason {
	switch t {
	case model.ConflictHomeOrganization:
		return model.Reason{EN: "Current employer", FR: "Employeur actuel"}
	case model.ConflictFamilyRelationship:
		return model.Reason{EN: "Family relationship with target organization staff", FR: "Lien familial avec le personnel de l'organisation cible"}
	case model.ConflictFormerEmployee, model.ConflictEmployment:
		return model.Reason{EN: "Former employee of target organization", FR: "Ancien employé de l'organisation cible"}
	case model.ConflictBusinessInterest, model.ConflictFinancial:
		return model.Reason{EN: "Business or financial interest in target organization", FR: "Intérêt commercial ou financier dans l'organisation cible"}
	case model.ConflictContractual:
		return model.Reason{EN: "Contractual relationship with target organization", FR: "Relation contractuelle avec l'organisation cible"}
	case model.ConflictPersonal:
		return model.Reason{EN: "Personal relationship with target organization staff", FR: "Relation personnelle avec le personnel de l'organisation cible"}
	case model.ConflictRecentReview, model.ConflictPreviousReview:
		return model.Reason{EN: "Participated in a recent review of target organization", FR: "A participé à un examen récent de l'organisation cible"}
	case model.ConflictOther:
		return model.Reason{EN: "Declared conflict of interest", FR: "Conflit d'intérêts déclaré"}
	}
	return model.Reason{EN: "Declared conflict of interest", FR: "Conflit d'intérêts déclaré"}
}

// isHardConflict reports whether a conflict type disqualifies outright.
func isHardConflict(t model.ConflictType) bool {
	return t == model.ConflictHomeOrganization || t == model.ConflictFamilyRelationship
}

// CheckCOI classifies a reviewer's conflict-of-interest status against a
// target organization. The home-organization identity check always runs
// first, independent of declared conflicts.
func (e *Engine) CheckCOI(
	conflicts []model.ConflictOfInterest,
	targetOrgID, homeOrgID string,
) model.COIStatus {
	if homeOrgID == targetOrgID {
		return hardStatus(model.ConflictHomeOrganization)
	}

	// First declared match wins, not the most severe one. Existing behavior
	// preserved as documented; product owners to confirm whether a
	// severity-max scan should replace it.
	for _, c := range conflicts {
		if c.TargetOrganizationID != targetOrgID {
			continue
		}
		if isHardConflict(c.Type) {
			return hardStatus(c.Type)
		}
		sev := model.SeveritySoft
		typ := c.Type
		reason := conflictReason(c.Type)
		return model.COIStatus{
			HasConflict: true,
			Severity:    &sev,
			Type:        &typ,
			Reason:      &reason,
			IsWaivable:  true,
		}
	}

	return model.COIStatus{HasConflict: false, IsWaivable: false}
}

func hardStatus(t model.ConflictType) model.COIStatus {
	sev := model.SeverityHard
	reason := conflictReason(t)
	return model.COIStatus{
		HasConflict: true,
		Severity:    &sev,
		Type:        &t,
		Reason:      &reason,
		IsWaivable:  false,
	}
}
