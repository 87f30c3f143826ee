package usecase

import (
	"ad-strategy/internal/core/domain"
	"ad-strategy/internal/core/port"
	"ad-strategy/internal/metrics"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName     = "ad-strategy/usecase"
	cacheKeyPrefix = "strategy:v1:"
	recordTimeout  = 3 * time.Second

	DefaultRunsLimit = 20
	MaxRunsLimit     = 100
)

// StrategyUseCase implements port.StrategyUseCase. The run repository and
// the cache are optional; a nil value disables the feature.
type StrategyUseCase struct {
	runs   port.RunRepository
	cache  port.StrategyCache
	logger *slog.Logger
	tracer trace.Tracer
	now    func() time.Time
	steps  []step
}

// NewStrategyUseCase creates a new StrategyUseCase. Pass a nil runs or
// cache to run without history or response caching.
func NewStrategyUseCase(runs port.RunRepository, cache port.StrategyCache, logger *slog.Logger) *StrategyUseCase {
	return &StrategyUseCase{
		runs:   runs,
		cache:  cache,
		logger: logger,
		tracer: otel.Tracer(tracerName),
		now:    time.Now,
		steps:  defaultSteps(),
	}
}

// GenerateStrategy runs the orchestrator for req. Validation failures and
// recovered panics are returned as error responses.
func (uc *StrategyUseCase) GenerateStrategy(ctx context.Context, req port.GenerateRequest) port.GenerateResponse {
	ctx, span := uc.tracer.Start(ctx, "strategy.GenerateStrategy")
	defer span.End()

	start := uc.now()
	logger := uc.logger.With(slog.String("request_id", port.RequestIDFrom(ctx)))

	key, err := cacheKey(req)
	if err != nil {
		logger.Warn("failed to fingerprint request, cache bypassed", slog.Any("error", err))
	}
	if cached, ok := uc.lookup(ctx, logger, key); ok {
		span.SetAttributes(attribute.Bool("strategy.cache_hit", true))
		metrics.StrategyRequests.WithLabelValues(cached.Status, "").Inc()
		return cached
	}

	resp, in := uc.execute(ctx, logger, req)

	code := ""
	if resp.Error != nil {
		code = resp.Error.Code
		span.SetStatus(codes.Error, code)
	}
	metrics.StrategyRequests.WithLabelValues(resp.Status, code).Inc()
	metrics.StrategyDuration.WithLabelValues(resp.Status).Observe(uc.now().Sub(start).Seconds())

	if resp.Status == port.StatusSuccess {
		uc.store(ctx, logger, key, resp)
	}
	uc.record(ctx, logger, in, resp)
	return resp
}

// execute walks the states in order and stops at the first failure.
func (uc *StrategyUseCase) execute(ctx context.Context, logger *slog.Logger, req port.GenerateRequest) (resp port.GenerateResponse, in port.StrategyInput) {
	p := &pipeline{
		req:    req,
		now:    uc.now(),
		logger: logger,
		states: []string{stateReceiveRequest},
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Error("strategy generation failed",
				slog.Any("panic", r),
				slog.Any("states", p.states),
			)
			resp = port.ErrorResponse(domain.NewStrategyError(
				domain.CodeInternalError,
				"Internal server error",
				map[string]any{"error_type": fmt.Sprintf("%T", r)},
			))
			in = p.input
		}
	}()

	for _, s := range uc.steps {
		p.states = append(p.states, s.state)
		if serr := uc.runStep(ctx, s, p); serr != nil {
			logger.Warn("strategy request rejected",
				slog.String("state", s.state),
				slog.String("error_code", serr.Code),
				slog.String("message", serr.Message),
			)
			return port.ErrorResponse(serr), p.input
		}
	}

	p.states = append(p.states, stateRespond)
	if p.resp.Debug != nil {
		p.resp.Debug.States = p.states
	}
	if p.resp.Status == "" {
		p.resp.Status = port.StatusSuccess
	}

	reach, conversions := 0, 0
	if p.resp.EstimatedReach != nil {
		reach = *p.resp.EstimatedReach
	}
	if p.resp.EstimatedConversions != nil {
		conversions = *p.resp.EstimatedConversions
	}
	logger.Info("strategy generated",
		slog.Int("reach", reach),
		slog.Int("conversions", conversions),
	)
	return p.resp, p.input
}

func (uc *StrategyUseCase) runStep(ctx context.Context, s step, p *pipeline) *domain.StrategyError {
	ctx, span := uc.tracer.Start(ctx, "strategy."+s.state)
	defer span.End()

	p.logger.Debug("entering state", slog.String("state", s.state))
	serr := s.run(ctx, p)
	if serr != nil {
		span.SetStatus(codes.Error, serr.Message)
		span.SetAttributes(attribute.String("error.code", serr.Code))
	}
	return serr
}

func (uc *StrategyUseCase) lookup(ctx context.Context, logger *slog.Logger, key string) (port.GenerateResponse, bool) {
	if uc.cache == nil || key == "" {
		return port.GenerateResponse{}, false
	}
	cached, ok, err := uc.cache.Get(ctx, key)
	if err != nil {
		logger.Warn("strategy cache read failed", slog.Any("error", err))
		return port.GenerateResponse{}, false
	}
	if !ok || cached == nil {
		return port.GenerateResponse{}, false
	}
	metrics.StrategyCacheHits.Inc()
	logger.Debug("strategy served from cache", slog.String("key", key))
	return *cached, true
}

func (uc *StrategyUseCase) store(ctx context.Context, logger *slog.Logger, key string, resp port.GenerateResponse) {
	if uc.cache == nil || key == "" {
		return
	}
	if err := uc.cache.Set(ctx, key, resp); err != nil {
		logger.Warn("strategy cache write failed", slog.Any("error", err))
	}
}

// record saves the run to history. Failures are logged and never change
// the response.
func (uc *StrategyUseCase) record(ctx context.Context, logger *slog.Logger, in port.StrategyInput, resp port.GenerateResponse) {
	if uc.runs == nil {
		return
	}

	body, err := json.Marshal(resp)
	if err != nil {
		logger.Error("failed to encode strategy run", slog.Any("error", err))
		metrics.StrategyRunsRecorded.WithLabelValues("failed").Inc()
		return
	}

	run := domain.StrategyRun{
		ID:        uuid.NewString(),
		RequestID: port.RequestIDFrom(ctx),
		Status:    resp.Status,
		Platform:  in.Spec.Platform,
		Objective: in.Spec.Objective,
		Budget:    in.Spec.Budget,
		Response:  body,
		CreatedAt: uc.now().UTC(),
	}
	if resp.Error != nil {
		run.ErrorCode = resp.Error.Code
	}
	if resp.EstimatedReach != nil {
		run.EstimatedReach = *resp.EstimatedReach
	}
	if resp.EstimatedConversions != nil {
		run.EstimatedConversions = *resp.EstimatedConversions
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()

	if err := uc.runs.SaveRun(ctx, run); err != nil {
		logger.Error("failed to record strategy run", slog.String("run_id", run.ID), slog.Any("error", err))
		metrics.StrategyRunsRecorded.WithLabelValues("failed").Inc()
		return
	}
	metrics.StrategyRunsRecorded.WithLabelValues("ok").Inc()
}

// GetRun returns a recorded run by id.
func (uc *StrategyUseCase) GetRun(ctx context.Context, id string) (*domain.StrategyRun, error) {
	if uc.runs == nil {
		return nil, port.ErrHistoryDisabled
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, port.ErrRunNotFound
	}
	return uc.runs.GetRun(ctx, id)
}

// ListRuns returns the latest runs. Limits outside 1..MaxRunsLimit are
// replaced by DefaultRunsLimit or capped.
func (uc *StrategyUseCase) ListRuns(ctx context.Context, limit int) ([]domain.StrategyRun, error) {
	if uc.runs == nil {
		return nil, port.ErrHistoryDisabled
	}
	switch {
	case limit <= 0:
		limit = DefaultRunsLimit
	case limit > MaxRunsLimit:
		limit = MaxRunsLimit
	}
	return uc.runs.ListRuns(ctx, limit)
}

// cacheKey fingerprints the request body.
func cacheKey(req port.GenerateRequest) (string, error) {
	b, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return cacheKeyPrefix + hex.EncodeToString(sum[:]), nil
}
