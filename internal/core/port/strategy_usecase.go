package port

import (
	"ad-strategy/internal/core/domain"
	"context"
	"encoding/json"
)

// Response status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// StrategyUseCase defines the business operations exposed by the strategy
// engine. It is the primary port into the application domain.
type StrategyUseCase interface {
	// GenerateStrategy runs the strategy pipeline for a request in either
	// the current or the legacy shape. Validation and internal failures
	// are reported inside the response, never as a Go error.
	GenerateStrategy(ctx context.Context, req GenerateRequest) GenerateResponse

	// GetRun returns a recorded run by id. ErrRunNotFound is returned for
	// unknown ids and ErrHistoryDisabled when no run store is configured.
	GetRun(ctx context.Context, id string) (*domain.StrategyRun, error)

	// ListRuns returns the most recent runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]domain.StrategyRun, error)
}

// GenerateRequest accepts two shapes. The current shape carries
// CampaignSpec, ProductGroups and Creatives; the legacy shape carries the
// flat Campaign*/TotalBudget/DurationDays/TargetAudience/Platforms fields.
// It is resolved once into a StrategyInput before any computation.
type GenerateRequest struct {
	CampaignSpec  *domain.CampaignSpec  `json:"campaign_spec,omitempty"`
	ProductGroups []domain.ProductGroup `json:"product_groups,omitempty"`
	Creatives     []domain.Creative     `json:"creatives,omitempty"`

	CampaignObjective string   `json:"campaign_objective,omitempty"`
	TotalBudget       *float64 `json:"total_budget,omitempty"`
	DurationDays      *int     `json:"duration_days,omitempty"`
	TargetAudience    string   `json:"target_audience,omitempty"`
	Platforms         []string `json:"platforms,omitempty"`
}

// Request formats.
const (
	FormatCurrent = "current"
	FormatLegacy  = "legacy"
)

// StrategyInput is the canonical request every pipeline step works on.
type StrategyInput struct {
	Format        string
	Spec          domain.CampaignSpec
	ProductGroups []domain.ProductGroup
	Creatives     []domain.Creative
}

// ScoreDetails summarises the allocation inputs.
type ScoreDetails struct {
	GroupWeights      map[string]float64 `json:"group_weights"`
	CreativeCount     int                `json:"creative_count"`
	ProductGroupCount int                `json:"product_group_count"`
}

// EstimatedMetrics are the projected campaign results.
type EstimatedMetrics struct {
	Reach       int     `json:"reach"`
	Conversions int     `json:"conversions"`
	CPA         float64 `json:"cpa"`
}

// Debug exposes the intermediate results of a strategy run.
type Debug struct {
	RequestFormat    string            `json:"request_format"`
	States           []string          `json:"states"`
	BudgetPlan       domain.BudgetPlan `json:"budget_plan"`
	TargetingPlan    domain.Targeting  `json:"targeting_plan"`
	RulesApplied     []string          `json:"rules_applied"`
	ScoreDetails     ScoreDetails      `json:"score_details"`
	EstimatedMetrics EstimatedMetrics  `json:"estimated_metrics"`
}

// GenerateResponse is either a full strategy (Status "success") or a
// terminal failure (Status "error" with Error set).
type GenerateResponse struct {
	Status               string                    `json:"status"`
	AbstractStrategy     *domain.AbstractStrategy  `json:"abstract_strategy,omitempty"`
	PlatformStrategies   []domain.PlatformStrategy `json:"platform_strategies,omitempty"`
	Debug                *Debug                    `json:"debug,omitempty"`
	EstimatedReach       *int                      `json:"estimated_reach,omitempty"`
	EstimatedConversions *int                      `json:"estimated_conversions,omitempty"`

	Error *domain.StrategyError `json:"-"`
}

// ErrorResponse wraps a strategy error in a response.
func ErrorResponse(err *domain.StrategyError) GenerateResponse {
	return GenerateResponse{Status: StatusError, Error: err}
}

// MarshalJSON renders failures as {status, error_code, message, details}.
func (r GenerateResponse) MarshalJSON() ([]byte, error) {
	if r.Error != nil {
		return json.Marshal(struct {
			Status string `json:"status"`
			*domain.StrategyError
		}{Status: StatusError, StrategyError: r.Error})
	}
	type plain GenerateResponse
	return json.Marshal(plain(r))
}
