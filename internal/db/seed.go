package db

import (
	"ad-strategy/internal/core/domain"
	"ad-strategy/internal/core/port"
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
)

var (
	seedPlatforms  = []string{domain.PlatformMeta, domain.PlatformTikTok, domain.PlatformGoogle}
	seedObjectives = []string{"sales", "conversions", "traffic", "leads", "awareness", "engagement"}
	seedCategories = []string{"toys", "fashion", "electronics", "beauty", "sports", "food"}
	seedPriorities = []string{domain.PriorityHigh, domain.PriorityMedium, domain.PriorityLow}
)

// Seed runs n randomised demo campaigns through the strategy engine. Each
// request is recorded by the use case, so the run history is populated
// with realistic responses. A failed strategy is reported as an error.
func Seed(ctx context.Context, svc port.StrategyUseCase, n int) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	for i := 1; i <= n; i++ {
		req := seedRequest(r, i)
		ctx := port.WithRequestID(ctx, uuid.NewString()[:8])

		resp := svc.GenerateStrategy(ctx, req)
		if resp.Error != nil {
			return eris.Wrapf(resp.Error, "seed: campaign %d", i)
		}
	}
	return nil
}

func seedRequest(r *rand.Rand, i int) port.GenerateRequest {
	category := seedCategories[r.Intn(len(seedCategories))]
	start := time.Now().UTC().Truncate(24 * time.Hour)
	end := start.AddDate(0, 0, 7+r.Intn(24))

	spec := &domain.CampaignSpec{
		UserQuery: fmt.Sprintf("Demo campaign %d", i),
		Platform:  seedPlatforms[r.Intn(len(seedPlatforms))],
		Budget:    float64(500 + r.Intn(9500)),
		Objective: seedObjectives[r.Intn(len(seedObjectives))],
		Category:  category,
		TimeRange: &domain.TimeRange{
			Start: start.Format(time.DateOnly),
			End:   end.Format(time.DateOnly),
		},
		Metadata: map[string]any{"locale": "en_US"},
	}

	var (
		groups    []domain.ProductGroup
		creatives []domain.Creative
	)
	for _, priority := range seedPriorities[:1+r.Intn(len(seedPriorities))] {
		productID := fmt.Sprintf("P%d-%s", i, priority)
		groups = append(groups, domain.ProductGroup{
			Group: priority,
			Products: []domain.Product{{
				ProductID: productID,
				Title:     fmt.Sprintf("%s product %d", category, i),
				Price:     float64(10 + r.Intn(290)),
				Category:  category,
			}},
		})
		for _, variant := range []string{"A", "B"} {
			creatives = append(creatives, domain.Creative{
				CreativeID:   fmt.Sprintf("C-%s-%s", productID, variant),
				ProductID:    productID,
				VariantID:    variant,
				StyleProfile: map[string]any{"score": 50 + r.Intn(50)},
			})
		}
	}

	return port.GenerateRequest{CampaignSpec: spec, ProductGroups: groups, Creatives: creatives}
}
