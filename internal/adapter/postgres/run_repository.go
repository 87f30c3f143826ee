package postgres

import (
	"ad-strategy/internal/core/domain"
	"ad-strategy/internal/core/port"
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rotisserie/eris"
)

// DBTX is the subset of pgxpool.Pool used by the repository.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// RunRepository implements port.RunRepository on PostgreSQL.
type RunRepository struct {
	pool DBTX
}

// NewRunRepository returns a new repository instance.
func NewRunRepository(pool DBTX) *RunRepository {
	return &RunRepository{pool: pool}
}

const runColumns = `
            id::text,
            request_id,
            status,
            COALESCE(error_code, ''),
            platform,
            objective,
            budget,
            estimated_reach,
            estimated_conversions,
            response,
            created_at`

// SaveRun inserts a run. An empty error code is stored as NULL.
func (r *RunRepository) SaveRun(ctx context.Context, run domain.StrategyRun) error {
	var errorCode *string
	if run.ErrorCode != "" {
		errorCode = &run.ErrorCode
	}

	_, err := r.pool.Exec(ctx, `
        INSERT INTO strategy_runs (
            id, request_id, status, error_code, platform, objective, budget,
            estimated_reach, estimated_conversions, response, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		run.ID,
		run.RequestID,
		run.Status,
		errorCode,
		run.Platform,
		run.Objective,
		run.Budget,
		run.EstimatedReach,
		run.EstimatedConversions,
		[]byte(run.Response),
		run.CreatedAt,
	)
	if err != nil {
		return eris.Wrapf(err, "postgres: insert strategy run %s", run.ID)
	}
	return nil
}

// GetRun returns a run by id.
func (r *RunRepository) GetRun(ctx context.Context, id string) (*domain.StrategyRun, error) {
	row := r.pool.QueryRow(ctx, `SELECT`+runColumns+`
        FROM strategy_runs
        WHERE id = $1`, id)

	run, err := scanRun(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, port.ErrRunNotFound
		}
		return nil, eris.Wrapf(err, "postgres: get strategy run %s", id)
	}
	return &run, nil
}

// ListRuns returns up to limit runs, newest first.
func (r *RunRepository) ListRuns(ctx context.Context, limit int) ([]domain.StrategyRun, error) {
	rows, err := r.pool.Query(ctx, `SELECT`+runColumns+`
        FROM strategy_runs
        ORDER BY created_at DESC
        LIMIT $1`, limit)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list strategy runs")
	}

	runs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.StrategyRun, error) {
		return scanRun(row)
	})
	if err != nil {
		return nil, eris.Wrap(err, "postgres: scan strategy runs")
	}
	return runs, nil
}

func scanRun(row pgx.Row) (domain.StrategyRun, error) {
	var (
		run      domain.StrategyRun
		response []byte
	)
	err := row.Scan(
		&run.ID,
		&run.RequestID,
		&run.Status,
		&run.ErrorCode,
		&run.Platform,
		&run.Objective,
		&run.Budget,
		&run.EstimatedReach,
		&run.EstimatedConversions,
		&response,
		&run.CreatedAt,
	)
	if err != nil {
		return domain.StrategyRun{}, err
	}
	run.Response = response
	return run, nil
}
