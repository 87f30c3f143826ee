package strategy

import (
	"ad-strategy/internal/core/domain"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func window(lo, hi int) domain.Targeting {
	return domain.Targeting{AgeMin: lo, AgeMax: hi}
}

func TestEstimateReach(t *testing.T) {
	tests := []struct {
		name            string
		budget          float64
		objective       string
		targeting       domain.Targeting
		wantReach       int
		wantConversions int
	}{
		{name: "narrow at threshold", budget: 1000, objective: "sales", targeting: window(25, 35), wantReach: 35000, wantConversions: 24},
		{name: "narrow small budget", budget: 900, objective: "sales", targeting: window(25, 35), wantReach: 31499, wantConversions: 19},
		{name: "neutral window", budget: 5000, objective: "conversions", targeting: window(35, 65), wantReach: 250000, wantConversions: 125},
		{name: "broad large budget", budget: 10000, objective: "conversions", targeting: window(18, 55), wantReach: 650000, wantConversions: 247},
		{name: "awareness has no conversions", budget: 2000, objective: "awareness", targeting: window(25, 45), wantReach: 100000, wantConversions: 0},
		{name: "unknown objective", budget: 2000, objective: "installs", targeting: window(25, 45), wantReach: 100000, wantConversions: 40},
		{name: "traffic case insensitive", budget: 2000, objective: "TRAFFIC", targeting: window(25, 45), wantReach: 100000, wantConversions: 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := domain.CampaignSpec{Budget: tt.budget, Objective: tt.objective}
			reach, conversions := EstimateReach(spec, domain.BudgetPlan{}, tt.targeting)
			assert.Equal(t, tt.wantReach, reach)
			assert.Equal(t, tt.wantConversions, conversions)
		})
	}
}

func TestEstimateReach_HugeBudgetSaturates(t *testing.T) {
	salesConversions := func(budget float64) int {
		c := budget / 1000 * 20
		c *= 1.1
		return int(c)
	}
	tests := []struct {
		name            string
		budget          float64
		wantReach       int
		wantConversions int
	}{
		{name: "still in range", budget: 1e15, wantReach: 50000000000000000, wantConversions: salesConversions(1e15)},
		{name: "reach overflows", budget: 1e20, wantReach: math.MaxInt, wantConversions: salesConversions(1e20)},
		{name: "both overflow", budget: 1e300, wantReach: math.MaxInt, wantConversions: math.MaxInt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := domain.CampaignSpec{Budget: tt.budget, Objective: "sales", Category: "toys"}
			reach, conversions := EstimateReach(spec, domain.BudgetPlan{}, window(25, 45))
			assert.Equal(t, tt.wantReach, reach)
			assert.Equal(t, tt.wantConversions, conversions)
			assert.Positive(t, conversions)
		})
	}
}

func TestSaturatingInt(t *testing.T) {
	assert.Equal(t, 0, saturatingInt(math.NaN()))
	assert.Equal(t, math.MaxInt, saturatingInt(math.Inf(1)))
	assert.Equal(t, math.MinInt, saturatingInt(math.Inf(-1)))
	assert.Equal(t, 41, saturatingInt(41.99))
}
