package domain

// BudgetPlan is the result of splitting a total budget across priority
// tiers and then across creatives inside each tier.
type BudgetPlan struct {
	TotalBudget        float64            `json:"total_budget"`
	GroupAllocation    map[string]float64 `json:"group_allocation"`
	CreativeAllocation map[string]float64 `json:"creative_allocation"`
	GroupWeights       map[string]float64 `json:"group_weights"`
}
