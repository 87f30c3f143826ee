package strategy

import (
	"ad-strategy/internal/core/domain"
	"fmt"
)

// Budget magnitude thresholds for the adset layout.
const (
	mixedStructureThreshold  = 1000.0
	tieredStructureThreshold = 5000.0
)

// DesignAdsets lays out the adsets of a campaign. Small budgets get a
// single adset, mid-size budgets a high tier adset plus a mixed one, and
// large budgets one adset per tier. The product groups and plan are not
// consulted yet: the layout depends on budget magnitude only.
func DesignAdsets(spec domain.CampaignSpec, _ []domain.ProductGroup, _ domain.BudgetPlan) domain.AdsetStructure {
	total := spec.Budget
	daily := total / float64(spec.DurationDays())

	s := domain.AdsetStructure{
		CampaignName:      fmt.Sprintf("%s_%s_campaign", spec.Category, spec.Objective),
		CampaignObjective: spec.Objective,
		DailyBudget:       daily,
	}

	switch {
	case total < mixedStructureThreshold:
		s.Adsets = []domain.Adset{
			newAdset("Single Adset - All Products", daily, domain.PriorityHigh, domain.PriorityMedium, domain.PriorityLow),
		}
	case total < tieredStructureThreshold:
		s.Adsets = []domain.Adset{
			newAdset("High Priority Products", daily*0.7, domain.PriorityHigh),
			newAdset("Mixed Priority Products", daily*0.3, domain.PriorityHigh, domain.PriorityMedium),
		}
	default:
		s.Adsets = []domain.Adset{
			newAdset("High Priority Products", daily*0.6, domain.PriorityHigh),
			newAdset("Medium Priority Products", daily*0.3, domain.PriorityMedium),
			newAdset("Low Priority Products", daily*0.1, domain.PriorityLow),
		}
	}
	return s
}

func newAdset(name string, daily float64, tiers ...string) domain.Adset {
	return domain.Adset{
		Name:          name,
		DailyBudget:   daily,
		Targeting:     map[string]any{},
		ProductGroups: tiers,
	}
}
