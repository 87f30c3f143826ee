package domain

import "fmt"

// Error codes reported in failed strategy responses.
const (
	CodeMissingRequiredFields = "MISSING_REQUIRED_FIELDS"
	CodeInvalidBudget         = "INVALID_BUDGET"
	CodeUnsupportedPlatform   = "UNSUPPORTED_PLATFORM"
	CodeInternalError         = "INTERNAL_ERROR"
	CodeValidationError       = "VALIDATION_ERROR"
)

// StrategyError is a terminal failure of strategy generation. It is
// reported to the client as an error body rather than a transport error.
type StrategyError struct {
	Code    string         `json:"error_code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details"`
}

func (e *StrategyError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewStrategyError builds a StrategyError with non-nil details.
func NewStrategyError(code, message string, details map[string]any) *StrategyError {
	if details == nil {
		details = map[string]any{}
	}
	return &StrategyError{Code: code, Message: message, Details: details}
}
