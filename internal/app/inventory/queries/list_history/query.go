package list_history

import (
	"context"

	"github.com/light-bringer/storeadmin-service/internal/app/inventory/contracts"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// Request selects a product's ledger page.
type Request struct {
	ProductID string
	Limit     int64
}

// Query lists ledger rows for one product.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list history query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{readModel: readModel}
}

// Execute runs the query. Limits outside 1..MaxLimit fall back to
// DefaultLimit or are capped at MaxLimit.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.HistoryDTO, error) {
	return q.readModel.ListHistory(ctx, req.ProductID, clampLimit(req.Limit))
}

func clampLimit(limit int64) int64 {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	default:
		return limit
	}
}
