// Package strategy holds the deterministic strategy engine: budget
// allocation, audience targeting, bidding selection, adset layout and
// reach estimation. Every function is pure and safe for concurrent use.
package strategy

import "ad-strategy/internal/core/domain"

// allocationRules are the raw tier weights. They are normalised per call,
// so a missing tier never leaves budget unallocated.
var allocationRules = map[string]float64{
	domain.PriorityHigh:   0.65,
	domain.PriorityMedium: 0.25,
	domain.PriorityLow:    0.10,
}

// defaultTierWeight applies to tier names outside allocationRules.
const defaultTierWeight = 0.10

// baseScores rank creatives by the tier of their product.
var baseScores = map[string]float64{
	domain.PriorityHigh:   3.0,
	domain.PriorityMedium: 2.0,
	domain.PriorityLow:    1.0,
}

const (
	primaryVariant           = "A"
	alternateVariantWeight   = 0.67
	defaultCreativeBaseScore = 1.0
)

// AllocationRules returns a copy of the raw tier weights.
func AllocationRules() map[string]float64 {
	out := make(map[string]float64, len(allocationRules))
	for k, v := range allocationRules {
		out[k] = v
	}
	return out
}

// AllocateBudget splits total across the tiers present in groups and then
// across creatives within each tier. Creatives whose product is not part
// of any group fall into the low tier. Degenerate inputs yield empty
// allocations rather than errors.
func AllocateBudget(total float64, groups []domain.ProductGroup, creatives []domain.Creative) domain.BudgetPlan {
	weights := make(map[string]float64, len(groups))
	var tiers []string
	for _, g := range groups {
		p := g.Priority()
		if _, seen := weights[p]; !seen {
			tiers = append(tiers, p)
		}
		if w, ok := allocationRules[p]; ok {
			weights[p] = w
		} else {
			weights[p] = defaultTierWeight
		}
	}

	// Summed in first-seen order so repeated calls agree bit for bit.
	var weightSum float64
	for _, p := range tiers {
		weightSum += weights[p]
	}
	if weightSum > 0 {
		for _, p := range tiers {
			weights[p] /= weightSum
		}
	}

	groupAlloc := make(map[string]float64, len(weights))
	for p, w := range weights {
		groupAlloc[p] = total * w
	}

	productTier := make(map[string]string)
	for _, g := range groups {
		p := g.Priority()
		for _, prod := range g.Products {
			productTier[prod.ProductID] = p
		}
	}

	buckets := make(map[string][]domain.Creative)
	var order []string
	for _, c := range creatives {
		tier, ok := productTier[c.ProductID]
		if !ok {
			tier = domain.PriorityLow
		}
		if _, seen := buckets[tier]; !seen {
			order = append(order, tier)
		}
		buckets[tier] = append(buckets[tier], c)
	}

	creativeAlloc := make(map[string]float64, len(creatives))
	for _, tier := range order {
		allocateTier(creativeAlloc, tier, groupAlloc[tier], buckets[tier])
	}

	return domain.BudgetPlan{
		TotalBudget:        total,
		GroupAllocation:    groupAlloc,
		CreativeAllocation: creativeAlloc,
		GroupWeights:       weights,
	}
}

func allocateTier(dst map[string]float64, tier string, budget float64, creatives []domain.Creative) {
	if len(creatives) == 0 {
		return
	}
	base, ok := baseScores[tier]
	if !ok {
		base = defaultCreativeBaseScore
	}

	scores := make([]float64, len(creatives))
	var sum float64
	for i, c := range creatives {
		s := base * variantMultiplier(c.VariantID)
		if style, ok := c.StyleScore(); ok {
			s *= style
		}
		scores[i] = s
		sum += s
	}

	if sum > 0 {
		for i, c := range creatives {
			dst[c.CreativeID] = budget * (scores[i] / sum)
		}
		return
	}
	even := budget / float64(len(creatives))
	for _, c := range creatives {
		dst[c.CreativeID] = even
	}
}

func variantMultiplier(variant string) float64 {
	if variant == primaryVariant {
		return 1.0
	}
	return alternateVariantWeight
}

// DefaultBudgetPlan is the simplified plan used when a request carries no
// product groups or no creatives: a fixed 65/25/10 split with no
// per-creative detail.
func DefaultBudgetPlan(total float64) domain.BudgetPlan {
	groupAlloc := make(map[string]float64, len(allocationRules))
	for p, w := range allocationRules {
		groupAlloc[p] = total * w
	}
	return domain.BudgetPlan{
		TotalBudget:        total,
		GroupAllocation:    groupAlloc,
		CreativeAllocation: map[string]float64{},
		GroupWeights:       AllocationRules(),
	}
}
