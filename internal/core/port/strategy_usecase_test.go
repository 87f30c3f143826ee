package port

import (
	"ad-strategy/internal/core/domain"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateResponse_MarshalError(t *testing.T) {
	resp := ErrorResponse(domain.NewStrategyError(domain.CodeUnsupportedPlatform, "Platform 'x' is not supported", map[string]any{"platform": "x"}))

	b, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"status": "error",
		"error_code": "UNSUPPORTED_PLATFORM",
		"message": "Platform 'x' is not supported",
		"details": {"platform": "x"}
	}`, string(b))
}

func TestGenerateResponse_MarshalErrorWithoutDetails(t *testing.T) {
	b, err := json.Marshal(ErrorResponse(domain.NewStrategyError(domain.CodeMissingRequiredFields, "missing", nil)))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"error","error_code":"MISSING_REQUIRED_FIELDS","message":"missing","details":{}}`, string(b))
}

func TestGenerateResponse_MarshalSuccess(t *testing.T) {
	reach := 100
	resp := GenerateResponse{Status: StatusSuccess, EstimatedReach: &reach}

	b, err := json.Marshal(resp)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, "success", out["status"])
	assert.Equal(t, 100.0, out["estimated_reach"])
	assert.NotContains(t, out, "error_code")
	assert.NotContains(t, out, "debug")
}

func TestRequestID(t *testing.T) {
	assert.Empty(t, RequestIDFrom(context.Background()))
	assert.Equal(t, "abc", RequestIDFrom(WithRequestID(context.Background(), "abc")))
}
