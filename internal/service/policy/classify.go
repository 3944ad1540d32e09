package policy

import "github.com/Dhruvsinh6969/Trade-Order-Sheet/internal/domain/models"

// excessThreshold is the tolerated overshoot over reference demand before an
// order is escalated.
const excessThreshold = 1.2

// Classify flags an ordered quantity against the reference demand computed at
// submission time. The max(ref, 1) floor keeps small positive orders against a
// zero-demand SKU from being escalated.
func Classify(orderedQty, referenceDemand int) models.Flag {
	ref := referenceDemand
	if ref < 1 {
		ref = 1
	}

	if float64(orderedQty) > excessThreshold*float64(ref) {
		return models.FlagExcessOrder
	}
	return models.FlagOK
}
