package usecase

import (
	"ad-strategy/internal/core/domain"
	"ad-strategy/internal/core/port"
	"fmt"
	"strings"
	"time"
)

// legacyPlatforms maps legacy platform names to supported platforms.
var legacyPlatforms = map[string]string{
	"facebook":   domain.PlatformMeta,
	"instagram":  domain.PlatformMeta,
	"meta":       domain.PlatformMeta,
	"tiktok":     domain.PlatformTikTok,
	"google_ads": domain.PlatformGoogle,
	"google":     domain.PlatformGoogle,
}

const legacyCategory = "general"

// normalizeRequest resolves the two accepted request shapes into a single
// StrategyInput. A request carrying campaign_spec is taken as is; otherwise
// the legacy fields must provide at least an objective and a non-zero
// total budget.
func normalizeRequest(req port.GenerateRequest, now time.Time) (port.StrategyInput, *domain.StrategyError) {
	if req.CampaignSpec != nil {
		return port.StrategyInput{
			Format:        port.FormatCurrent,
			Spec:          *req.CampaignSpec,
			ProductGroups: req.ProductGroups,
			Creatives:     req.Creatives,
		}, nil
	}

	if req.CampaignObjective == "" || req.TotalBudget == nil || *req.TotalBudget == 0 {
		return port.StrategyInput{}, domain.NewStrategyError(
			domain.CodeMissingRequiredFields,
			"Either new format (campaign_spec) or legacy format (campaign_objective, total_budget) is required",
			nil,
		)
	}

	platform := domain.PlatformMeta
	if len(req.Platforms) > 0 {
		if p, ok := legacyPlatforms[strings.ToLower(req.Platforms[0])]; ok {
			platform = p
		}
	}

	var timeRange *domain.TimeRange
	if req.DurationDays != nil && *req.DurationDays != 0 {
		start := now.UTC()
		end := start.AddDate(0, 0, *req.DurationDays)
		timeRange = &domain.TimeRange{
			Start: start.Format(time.RFC3339),
			End:   end.Format(time.RFC3339),
		}
	}

	query := req.TargetAudience
	if query == "" {
		query = fmt.Sprintf("Campaign for %s", req.CampaignObjective)
	}

	return port.StrategyInput{
		Format: port.FormatLegacy,
		Spec: domain.CampaignSpec{
			UserQuery: query,
			Platform:  platform,
			Budget:    *req.TotalBudget,
			Objective: req.CampaignObjective,
			Category:  legacyCategory,
			TimeRange: timeRange,
			Metadata:  map[string]any{},
		},
		ProductGroups: []domain.ProductGroup{},
		Creatives:     []domain.Creative{},
	}, nil
}
