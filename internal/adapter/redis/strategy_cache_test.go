package redis

import (
	"ad-strategy/internal/config/configs"
	"ad-strategy/internal/core/domain"
	"ad-strategy/internal/core/port"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, ttl time.Duration) (*StrategyCache, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewStrategyCache(client, ttl), mr
}

func TestStrategyCache_Miss(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)

	resp, ok, err := cache.Get(context.Background(), "strategy:v1:missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, resp)
}

func TestStrategyCache_RoundTrip(t *testing.T) {
	cache, mr := newTestCache(t, 10*time.Minute)
	ctx := context.Background()

	reach, conversions := 35000, 24
	want := port.GenerateResponse{
		Status: port.StatusSuccess,
		AbstractStrategy: &domain.AbstractStrategy{
			Objective:       "sales",
			BudgetSplit:     map[string]float64{"A": 0.6, "B": 0.4},
			BiddingStrategy: "LOWEST_COST_WITH_CAP",
			Constraints:     domain.StrategyConstraints{Platform: "meta", Category: "toys", BudgetLimit: 1000},
		},
		EstimatedReach:       &reach,
		EstimatedConversions: &conversions,
	}

	require.NoError(t, cache.Set(ctx, "strategy:v1:abc", want))
	assert.True(t, mr.Exists("strategy:v1:abc"))
	assert.Equal(t, 10*time.Minute, mr.TTL("strategy:v1:abc"))

	got, ok, err := cache.Get(ctx, "strategy:v1:abc")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want.Status, got.Status)
	assert.Equal(t, want.AbstractStrategy, got.AbstractStrategy)
	assert.Equal(t, reach, *got.EstimatedReach)
	assert.Equal(t, conversions, *got.EstimatedConversions)
}

func TestStrategyCache_Expiry(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", port.GenerateResponse{Status: port.StatusSuccess}))
	mr.FastForward(2 * time.Minute)

	_, ok, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStrategyCache_CorruptEntry(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	require.NoError(t, mr.Set("k", "{not json"))

	_, ok, err := cache.Get(context.Background(), "k")
	require.Error(t, err)
	assert.False(t, ok)
}

func TestStrategyCache_ServerDown(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	mr.Close()

	_, _, err := cache.Get(context.Background(), "k")
	assert.Error(t, err)
	assert.Error(t, cache.Set(context.Background(), "k", port.GenerateResponse{Status: port.StatusSuccess}))
}

func TestNewClient(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client, err := NewClient(context.Background(), configs.Redis{Addr: mr.Addr()})
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, client.Ping(context.Background()).Err())
}
