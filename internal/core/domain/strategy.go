package domain

// Adset is a named budget unit within a campaign structure.
type Adset struct {
	Name          string         `json:"adset_name"`
	DailyBudget   float64        `json:"daily_budget"`
	Targeting     map[string]any `json:"targeting"`
	ProductGroups []string       `json:"product_groups"`
}

// AdsetStructure is the campaign layout handed to a platform.
type AdsetStructure struct {
	CampaignName      string  `json:"campaign_name"`
	CampaignObjective string  `json:"campaign_objective"`
	DailyBudget       float64 `json:"daily_budget"`
	Adsets            []Adset `json:"adsets"`
}

// StrategyConstraints bound the abstract strategy.
type StrategyConstraints struct {
	Platform    string  `json:"platform"`
	Category    string  `json:"category"`
	BudgetLimit float64 `json:"budget_limit"`
}

// AbstractStrategy is the platform independent part of a strategy.
type AbstractStrategy struct {
	Objective       string              `json:"objective"`
	BudgetSplit     map[string]float64  `json:"budget_split"`
	BiddingStrategy string              `json:"bidding_strategy"`
	Constraints     StrategyConstraints `json:"constraints"`
	Metadata        map[string]any      `json:"metadata,omitempty"`
}

// PlatformStrategyMetadata carries the derived budget figures.
type PlatformStrategyMetadata struct {
	DailyBudget     float64 `json:"daily_budget"`
	TotalBudget     float64 `json:"total_budget"`
	BiddingStrategy string  `json:"bidding_strategy"`
	DurationDays    int     `json:"duration_days"`
}

// PlatformStrategy is the strategy rendered for one ad platform.
type PlatformStrategy struct {
	Platform          string                   `json:"platform"`
	CampaignStructure AdsetStructure           `json:"campaign_structure"`
	OptimizationGoal  string                   `json:"optimization_goal"`
	Targeting         Targeting                `json:"targeting"`
	Placements        []string                 `json:"placements,omitempty"`
	Metadata          PlatformStrategyMetadata `json:"metadata"`
}
