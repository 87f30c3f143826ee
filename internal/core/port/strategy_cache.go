package port

import "context"

// StrategyCache stores successful responses keyed by a request
// fingerprint. A miss is reported with ok=false and a nil error.
type StrategyCache interface {
	Get(ctx context.Context, key string) (resp *GenerateResponse, ok bool, err error)
	Set(ctx context.Context, key string, resp GenerateResponse) error
}
