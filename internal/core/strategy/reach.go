package strategy

import (
	"ad-strategy/internal/core/domain"
	"math"
)

const reachPerThousand = 50000.0

// conversionsPerThousand is the expected conversions per 1000 of budget.
var conversionsPerThousand = map[string]float64{
	"conversions": 25,
	"sales":       20,
	"traffic":     100,
	"leads":       30,
	"awareness":   0,
	"engagement":  50,
}

const defaultConversionsPerThousand = 20.0

const (
	narrowAgeSpan = 15
	broadAgeSpan  = 30
)

// EstimateReach projects reach and conversions from budget, objective and
// targeting breadth. Adjustments are applied as floats and truncated once;
// results beyond the int range saturate at math.MaxInt.
func EstimateReach(spec domain.CampaignSpec, _ domain.BudgetPlan, t domain.Targeting) (int, int) {
	budget := spec.Budget

	rate, ok := conversionsPerThousand[spec.NormalizedObjective()]
	if !ok {
		rate = defaultConversionsPerThousand
	}

	reach := budget / 1000 * reachPerThousand
	conversions := budget / 1000 * rate

	switch span := t.AgeSpan(); {
	case span < narrowAgeSpan:
		reach *= 0.7
		conversions *= 1.2
	case span > broadAgeSpan:
		reach *= 1.3
		conversions *= 0.9
	}

	switch {
	case budget > tieredStructureThreshold:
		conversions *= 1.1
	case budget < mixedStructureThreshold:
		conversions *= 0.9
	}

	return saturatingInt(reach), saturatingInt(conversions)
}

// saturatingInt truncates f toward zero, pinning values outside the int
// range to its bounds.
func saturatingInt(f float64) int {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt:
		return math.MaxInt
	case f <= math.MinInt:
		return math.MinInt
	}
	return int(f)
}
