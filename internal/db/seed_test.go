package db

import (
	"ad-strategy/internal/core/domain"
	"ad-strategy/internal/core/port"
	"ad-strategy/internal/core/port/mocks"
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	svc := mocks.NewMockStrategyUseCase(t)
	svc.EXPECT().
		GenerateStrategy(mock.Anything, mock.MatchedBy(func(req port.GenerateRequest) bool {
			return req.CampaignSpec != nil && req.CampaignSpec.Budget >= 500 && len(req.ProductGroups) > 0
		})).
		RunAndReturn(func(ctx context.Context, _ port.GenerateRequest) port.GenerateResponse {
			assert.Len(t, port.RequestIDFrom(ctx), 8)
			return port.GenerateResponse{Status: port.StatusSuccess}
		}).
		Times(3)

	require.NoError(t, Seed(context.Background(), svc, 3))
}

func TestSeed_StopsOnFailure(t *testing.T) {
	svc := mocks.NewMockStrategyUseCase(t)
	svc.EXPECT().
		GenerateStrategy(mock.Anything, mock.Anything).
		Return(port.ErrorResponse(domain.NewStrategyError(domain.CodeInternalError, "Internal server error", nil))).
		Once()

	err := Seed(context.Background(), svc, 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "campaign 1")
}

func TestSeedRequest_IsValid(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 1; i <= 50; i++ {
		req := seedRequest(r, i)
		spec := req.CampaignSpec
		require.NotNil(t, spec)
		assert.True(t, domain.IsSupportedPlatform(spec.Platform))
		assert.Positive(t, spec.Budget)
		assert.GreaterOrEqual(t, spec.DurationDays(), 7)
		assert.Len(t, req.Creatives, 2*len(req.ProductGroups))
		assert.Equal(t, domain.PriorityHigh, req.ProductGroups[0].Priority())
	}
}
