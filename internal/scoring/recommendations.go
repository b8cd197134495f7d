package scoring

import "github.com/Ajauregui69/livo-backend/constants"

// Factor thresholds below which a remediation suggestion is emitted.
const weakFactorThreshold = 60

// recommendations is deterministic: the same breakdown always yields the
// same messages in the same order.
func recommendations(bd FactorBreakdown, tier constants.RiskTier) []string {
	var out []string
	if bd.Income < weakFactorThreshold {
		out = append(out, "Income is below the comfortable range for this purchase; consider adding a co-applicant or documenting additional income sources.")
	}
	if bd.Employment < weakFactorThreshold {
		out = append(out, "Employment history looks short or undocumented; upload an employment letter showing tenure with your current employer.")
	}
	if bd.Banking < weakFactorThreshold {
		out = append(out, "Banking history is weak; maintain a higher average balance and avoid overdrafts for the next few statements.")
	}
	if bd.Debt < weakFactorThreshold {
		out = append(out, "Monthly debt payments take a large share of income; reducing outstanding debt will raise your loan capacity.")
	}

	switch tier {
	case constants.RiskLow:
		out = append(out, "Your profile qualifies for preferred financing terms.")
	case constants.RiskMedium:
		out = append(out, "Your profile qualifies for standard financing; improving the flagged areas unlocks better terms.")
	default:
		out = append(out, "Your profile currently needs a larger down payment; address the flagged areas and rescore.")
	}
	return out
}
