package port

import (
	"ad-strategy/internal/core/domain"
	"context"
	"errors"
)

var (
	ErrRunNotFound     = errors.New("strategy run not found")
	ErrHistoryDisabled = errors.New("strategy run history is disabled")
)

// RunRepository persists strategy runs. It is an outbound port;
// implementations must be safe for concurrent use.
type RunRepository interface {
	// SaveRun stores a run. The run's ID and CreatedAt are set by the caller.
	SaveRun(ctx context.Context, run domain.StrategyRun) error
	// GetRun returns a run by id or ErrRunNotFound.
	GetRun(ctx context.Context, id string) (*domain.StrategyRun, error)
	// ListRuns returns up to limit runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]domain.StrategyRun, error)
}
