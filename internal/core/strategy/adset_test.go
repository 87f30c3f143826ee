package strategy

import (
	"ad-strategy/internal/core/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDesignAdsets_BudgetTiers(t *testing.T) {
	tests := []struct {
		budget float64
		want   int
	}{
		{budget: 500, want: 1},
		{budget: 999.99, want: 1},
		{budget: 1000, want: 2},
		{budget: 4999.99, want: 2},
		{budget: 5000, want: 3},
		{budget: 10000, want: 3},
	}
	for _, tt := range tests {
		spec := domain.CampaignSpec{Budget: tt.budget, Objective: "conversions", Category: "general"}
		got := DesignAdsets(spec, nil, DefaultBudgetPlan(tt.budget))
		assert.Len(t, got.Adsets, tt.want, "budget %v", tt.budget)
	}
}

func TestDesignAdsets_SplitsDailyBudget(t *testing.T) {
	spec := domain.CampaignSpec{
		Budget:    5000,
		Objective: "conversions",
		Category:  "electronics",
		TimeRange: &domain.TimeRange{Start: "2025-01-01", End: "2025-01-31"},
	}

	got := DesignAdsets(spec, nil, domain.BudgetPlan{})

	assert.Equal(t, "electronics_conversions_campaign", got.CampaignName)
	assert.Equal(t, "conversions", got.CampaignObjective)
	assert.InDelta(t, 5000.0/30, got.DailyBudget, 1e-9)
	require.Len(t, got.Adsets, 3)
	assert.Equal(t, "High Priority Products", got.Adsets[0].Name)
	assert.Equal(t, []string{"high"}, got.Adsets[0].ProductGroups)
	assert.InDelta(t, got.DailyBudget*0.6, got.Adsets[0].DailyBudget, 1e-9)
	assert.InDelta(t, got.DailyBudget*0.3, got.Adsets[1].DailyBudget, 1e-9)
	assert.InDelta(t, got.DailyBudget*0.1, got.Adsets[2].DailyBudget, 1e-9)
}

func TestDesignAdsets_MixedLayout(t *testing.T) {
	got := DesignAdsets(domain.CampaignSpec{Budget: 3000}, nil, domain.BudgetPlan{})

	require.Len(t, got.Adsets, 2)
	assert.InDelta(t, 100.0, got.DailyBudget, 1e-9)
	assert.InDelta(t, 70.0, got.Adsets[0].DailyBudget, 1e-9)
	assert.Equal(t, []string{"high", "medium"}, got.Adsets[1].ProductGroups)
	assert.InDelta(t, 30.0, got.Adsets[1].DailyBudget, 1e-9)
}

func TestDesignAdsets_SingleLayoutCoversAllTiers(t *testing.T) {
	got := DesignAdsets(domain.CampaignSpec{Budget: 300}, nil, domain.BudgetPlan{})

	require.Len(t, got.Adsets, 1)
	assert.Equal(t, []string{"high", "medium", "low"}, got.Adsets[0].ProductGroups)
	assert.InDelta(t, 10.0, got.Adsets[0].DailyBudget, 1e-9)
	assert.NotNil(t, got.Adsets[0].Targeting)
}

func TestCampaignSpec_DurationDays(t *testing.T) {
	tests := []struct {
		name string
		tr   *domain.TimeRange
		want int
	}{
		{name: "absent", tr: nil, want: 30},
		{name: "dates", tr: &domain.TimeRange{Start: "2025-01-01", End: "2025-01-15"}, want: 14},
		{name: "rfc3339", tr: &domain.TimeRange{Start: "2025-03-01T00:00:00Z", End: "2025-03-08T12:00:00Z"}, want: 7},
		{name: "space separated", tr: &domain.TimeRange{Start: "2025-03-01 09:30:00", End: "2025-03-11 09:30:00"}, want: 10},
		{name: "space separated fraction", tr: &domain.TimeRange{Start: "2025-03-01 00:00:00.250", End: "2025-03-04 00:00:00.250"}, want: 3},
		{name: "same day floors to one", tr: &domain.TimeRange{Start: "2025-01-01", End: "2025-01-01"}, want: 1},
		{name: "reversed floors to one", tr: &domain.TimeRange{Start: "2025-02-01", End: "2025-01-01"}, want: 1},
		{name: "garbage", tr: &domain.TimeRange{Start: "soon", End: "later"}, want: 30},
		{name: "open ended", tr: &domain.TimeRange{Start: "2025-01-01"}, want: 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.CampaignSpec{TimeRange: tt.tr}.DurationDays())
		})
	}
}
