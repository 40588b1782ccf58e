package finagent

import (
	"fmt"
	"math"
)

// discrepancyThreshold is the relative price difference above which the
// two sources are flagged as disagreeing.
const discrepancyThreshold = 0.02

// Reconcile compares a price observed in web data against the reference
// price from the finance source. When both are present and the reference
// is nonzero, a relative difference above the threshold yields a
// human-readable warning; otherwise the result is empty. An absent side
// skips the check silently.
func Reconcile(observed, reference Price) string {
	if !observed.OK || !reference.OK || reference.Value == 0 {
		return ""
	}
	diff := math.Abs(observed.Value-reference.Value) / reference.Value
	if diff > discrepancyThreshold {
		return fmt.Sprintf("Warning: Price discrepancy detected (%.2f%%)", diff*100)
	}
	return ""
}
