package postgres

import (
	"ad-strategy/internal/core/domain"
	"ad-strategy/internal/core/port"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var runColumnNames = []string{
	"id", "request_id", "status", "error_code", "platform", "objective", "budget",
	"estimated_reach", "estimated_conversions", "response", "created_at",
}

func sampleRun() domain.StrategyRun {
	return domain.StrategyRun{
		ID:                   "0b7f2b46-6a43-4a52-9f4b-8f3c5b2f1f11",
		RequestID:            "abcd1234",
		Status:               domain.RunStatusSuccess,
		Platform:             domain.PlatformMeta,
		Objective:            "sales",
		Budget:               1000,
		EstimatedReach:       35000,
		EstimatedConversions: 24,
		Response:             json.RawMessage(`{"status":"success"}`),
		CreatedAt:            time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestSaveRun(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	run := sampleRun()
	mock.ExpectExec("INSERT INTO strategy_runs").
		WithArgs(
			run.ID, run.RequestID, run.Status, pgxmock.AnyArg(), run.Platform, run.Objective,
			run.Budget, run.EstimatedReach, run.EstimatedConversions, pgxmock.AnyArg(), run.CreatedAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	repo := NewRunRepository(mock)
	require.NoError(t, repo.SaveRun(context.Background(), run))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveRun_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("INSERT INTO strategy_runs").
		WillReturnError(errors.New("relation \"strategy_runs\" does not exist"))

	repo := NewRunRepository(mock)
	err = repo.SaveRun(context.Background(), sampleRun())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert strategy run")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRun(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	want := sampleRun()
	mock.ExpectQuery("FROM strategy_runs").
		WithArgs(want.ID).
		WillReturnRows(pgxmock.NewRows(runColumnNames).AddRow(
			want.ID, want.RequestID, want.Status, "", want.Platform, want.Objective, want.Budget,
			want.EstimatedReach, want.EstimatedConversions, []byte(want.Response), want.CreatedAt,
		))

	repo := NewRunRepository(mock)
	got, err := repo.GetRun(context.Background(), want.ID)
	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.RequestID, got.RequestID)
	assert.Empty(t, got.ErrorCode)
	assert.Equal(t, want.Budget, got.Budget)
	assert.Equal(t, want.EstimatedReach, got.EstimatedReach)
	assert.JSONEq(t, string(want.Response), string(got.Response))
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRun_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("FROM strategy_runs").
		WithArgs("0b7f2b46-6a43-4a52-9f4b-8f3c5b2f1f11").
		WillReturnRows(pgxmock.NewRows(runColumnNames))

	repo := NewRunRepository(mock)
	_, err = repo.GetRun(context.Background(), "0b7f2b46-6a43-4a52-9f4b-8f3c5b2f1f11")
	assert.ErrorIs(t, err, port.ErrRunNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRuns(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	first := sampleRun()
	second := sampleRun()
	second.ID = "5c1d7a0e-32b4-4a8f-8d0c-0d9f4f1e2a33"
	second.Status = domain.RunStatusError
	second.ErrorCode = domain.CodeInvalidBudget
	second.CreatedAt = first.CreatedAt.Add(-time.Minute)

	rows := pgxmock.NewRows(runColumnNames)
	for _, r := range []domain.StrategyRun{first, second} {
		rows.AddRow(
			r.ID, r.RequestID, r.Status, r.ErrorCode, r.Platform, r.Objective, r.Budget,
			r.EstimatedReach, r.EstimatedConversions, []byte(r.Response), r.CreatedAt,
		)
	}
	mock.ExpectQuery("ORDER BY created_at DESC").
		WithArgs(10).
		WillReturnRows(rows)

	repo := NewRunRepository(mock)
	runs, err := repo.ListRuns(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, first.ID, runs[0].ID)
	assert.Equal(t, domain.CodeInvalidBudget, runs[1].ErrorCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRuns_QueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("FROM strategy_runs").
		WithArgs(5).
		WillReturnError(errors.New("connection reset"))

	repo := NewRunRepository(mock)
	_, err = repo.ListRuns(context.Background(), 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list strategy runs")
}
