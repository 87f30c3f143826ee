package domain

import (
	"encoding/json"
	"time"
)

// Run status values.
const (
	RunStatusSuccess = "success"
	RunStatusError   = "error"
)

// StrategyRun is a recorded strategy generation, kept for auditing.
type StrategyRun struct {
	ID                   string          `json:"id"`
	RequestID            string          `json:"request_id"`
	Status               string          `json:"status"`
	ErrorCode            string          `json:"error_code,omitempty"`
	Platform             string          `json:"platform"`
	Objective            string          `json:"objective"`
	Budget               float64         `json:"budget"`
	EstimatedReach       int             `json:"estimated_reach"`
	EstimatedConversions int             `json:"estimated_conversions"`
	Response             json.RawMessage `json:"response"`
	CreatedAt            time.Time       `json:"created_at"`
}
