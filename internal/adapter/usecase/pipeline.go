package usecase

import (
	"ad-strategy/internal/core/domain"
	"ad-strategy/internal/core/port"
	"ad-strategy/internal/core/strategy"
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"time"
)

// Orchestrator states, in execution order.
const (
	stateReceiveRequest   = "ReceiveRequest"
	stateNormalizeFormat  = "NormalizeFormat"
	stateValidateBudget   = "ValidateBudget"
	stateValidatePlatform = "ValidatePlatform"
	stateAllocate         = "Allocate"
	stateTarget           = "Target"
	stateSelectBidding    = "SelectBidding"
	stateStructureAdsets  = "StructureAdsets"
	stateEstimate         = "Estimate"
	stateAssemble         = "Assemble"
	stateRespond          = "Respond"
)

var metaPlacements = []string{"facebook_feed", "instagram_feed", "instagram_stories"}

// defaultBudgetSplit is reported as the variant split of every strategy.
// It is not derived from the creative allocation.
var defaultBudgetSplit = map[string]float64{"A": 0.6, "B": 0.4}

// pipeline carries the request through the orchestrator states. Each
// state reads what the previous ones produced and fills in its own part.
type pipeline struct {
	req    port.GenerateRequest
	now    time.Time
	logger *slog.Logger

	states []string
	input  port.StrategyInput

	plan        domain.BudgetPlan
	targeting   domain.Targeting
	bidding     string
	adsets      domain.AdsetStructure
	reach       int
	conversions int

	resp port.GenerateResponse
}

type step struct {
	state string
	run   func(ctx context.Context, p *pipeline) *domain.StrategyError
}

func defaultSteps() []step {
	return []step{
		{state: stateNormalizeFormat, run: normalizeFormat},
		{state: stateValidateBudget, run: validateBudget},
		{state: stateValidatePlatform, run: validatePlatform},
		{state: stateAllocate, run: allocate},
		{state: stateTarget, run: target},
		{state: stateSelectBidding, run: selectBidding},
		{state: stateStructureAdsets, run: structureAdsets},
		{state: stateEstimate, run: estimate},
		{state: stateAssemble, run: assemble},
	}
}

func normalizeFormat(_ context.Context, p *pipeline) *domain.StrategyError {
	in, serr := normalizeRequest(p.req, p.now)
	if serr != nil {
		return serr
	}
	p.input = in
	if in.Format == port.FormatLegacy {
		p.logger.Info("using legacy request format")
	}
	p.logger.Info("generating strategy",
		slog.String("platform", in.Spec.Platform),
		slog.String("objective", in.Spec.Objective),
		slog.Float64("budget", in.Spec.Budget),
		slog.Int("product_groups", len(in.ProductGroups)),
		slog.Int("creatives", len(in.Creatives)),
	)
	return nil
}

func validateBudget(_ context.Context, p *pipeline) *domain.StrategyError {
	if budget := p.input.Spec.Budget; budget <= 0 {
		return domain.NewStrategyError(
			domain.CodeInvalidBudget,
			"Budget must be greater than 0",
			map[string]any{"budget": budget},
		)
	}
	return nil
}

func validatePlatform(_ context.Context, p *pipeline) *domain.StrategyError {
	if platform := p.input.Spec.Platform; !domain.IsSupportedPlatform(platform) {
		return domain.NewStrategyError(
			domain.CodeUnsupportedPlatform,
			fmt.Sprintf("Platform '%s' is not supported. Supported platforms: meta, tiktok, google", platform),
			map[string]any{"platform": platform},
		)
	}
	return nil
}

func allocate(_ context.Context, p *pipeline) *domain.StrategyError {
	in := p.input
	if len(in.ProductGroups) == 0 || len(in.Creatives) == 0 {
		p.logger.Warn("product groups or creatives missing, using default allocation")
		p.plan = strategy.DefaultBudgetPlan(in.Spec.Budget)
		return nil
	}

	p.plan = strategy.AllocateBudget(in.Spec.Budget, in.ProductGroups, in.Creatives)
	p.logger.Info("budget allocated",
		slog.Float64(domain.PriorityHigh, p.plan.GroupAllocation[domain.PriorityHigh]),
		slog.Float64(domain.PriorityMedium, p.plan.GroupAllocation[domain.PriorityMedium]),
		slog.Float64(domain.PriorityLow, p.plan.GroupAllocation[domain.PriorityLow]),
	)
	return nil
}

func target(_ context.Context, p *pipeline) *domain.StrategyError {
	in := p.input
	if in.Spec.Platform != domain.PlatformMeta {
		p.targeting = strategy.BaseTargeting()
		return nil
	}

	p.targeting = strategy.BuildTargeting(in.Spec, in.ProductGroups, in.Creatives)
	p.logger.Info("targeting built",
		slog.Int("age_min", p.targeting.AgeMin),
		slog.Int("age_max", p.targeting.AgeMax),
		slog.Int("interests", len(p.targeting.Interests)),
		slog.Any("locations", p.targeting.Locations),
	)
	return nil
}

func selectBidding(_ context.Context, p *pipeline) *domain.StrategyError {
	p.bidding = strategy.ChooseBidding(p.input.Spec.Objective)
	p.logger.Debug("bidding strategy selected", slog.String("bidding_strategy", p.bidding))
	return nil
}

func structureAdsets(_ context.Context, p *pipeline) *domain.StrategyError {
	p.adsets = strategy.DesignAdsets(p.input.Spec, p.input.ProductGroups, p.plan)
	p.logger.Debug("adsets designed", slog.Int("adsets", len(p.adsets.Adsets)))
	return nil
}

func estimate(_ context.Context, p *pipeline) *domain.StrategyError {
	p.reach, p.conversions = strategy.EstimateReach(p.input.Spec, p.plan, p.targeting)
	return nil
}

func assemble(_ context.Context, p *pipeline) *domain.StrategyError {
	spec := p.input.Spec

	abstract := &domain.AbstractStrategy{
		Objective:       spec.Objective,
		BudgetSplit:     maps.Clone(defaultBudgetSplit),
		BiddingStrategy: p.bidding,
		Constraints: domain.StrategyConstraints{
			Platform:    spec.Platform,
			Category:    spec.Category,
			BudgetLimit: spec.Budget,
		},
		Metadata: map[string]any{
			"total_budget": spec.Budget,
			"platform":     spec.Platform,
		},
	}

	platform := domain.PlatformStrategy{
		Platform:          spec.Platform,
		CampaignStructure: p.adsets,
		OptimizationGoal:  strings.ToUpper(spec.Objective),
		Targeting:         p.targeting,
		Metadata: domain.PlatformStrategyMetadata{
			DailyBudget:     p.adsets.DailyBudget,
			TotalBudget:     spec.Budget,
			BiddingStrategy: p.bidding,
			DurationDays:    spec.DurationDays(),
		},
	}
	if spec.Platform == domain.PlatformMeta {
		platform.Placements = slices.Clone(metaPlacements)
	}

	var cpa float64
	if p.conversions > 0 {
		cpa = spec.Budget / float64(p.conversions)
	}

	reach, conversions := p.reach, p.conversions
	p.resp = port.GenerateResponse{
		Status:             port.StatusSuccess,
		AbstractStrategy:   abstract,
		PlatformStrategies: []domain.PlatformStrategy{platform},
		Debug: &port.Debug{
			RequestFormat: p.input.Format,
			BudgetPlan:    p.plan,
			TargetingPlan: p.targeting,
			RulesApplied:  rulesApplied(spec, p.bidding, len(p.adsets.Adsets)),
			ScoreDetails: port.ScoreDetails{
				GroupWeights:      p.plan.GroupWeights,
				CreativeCount:     len(p.input.Creatives),
				ProductGroupCount: len(p.input.ProductGroups),
			},
			EstimatedMetrics: port.EstimatedMetrics{
				Reach:       reach,
				Conversions: conversions,
				CPA:         cpa,
			},
		},
		EstimatedReach:       &reach,
		EstimatedConversions: &conversions,
	}
	return nil
}

func rulesApplied(spec domain.CampaignSpec, bidding string, adsets int) []string {
	rules := strategy.AllocationRules()
	return []string{
		fmt.Sprintf("Budget allocation: high=%.1f%%, medium=%.1f%%, low=%.1f%%",
			rules[domain.PriorityHigh]*100, rules[domain.PriorityMedium]*100, rules[domain.PriorityLow]*100),
		fmt.Sprintf("Bidding strategy: %s (based on objective: %s)", bidding, spec.Objective),
		fmt.Sprintf("Adset structure: %d adsets (budget-based design)", adsets),
	}
}
