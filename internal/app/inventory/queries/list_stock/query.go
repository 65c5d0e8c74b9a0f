package list_stock

import (
	"context"

	"github.com/light-bringer/storeadmin-service/internal/app/inventory/contracts"
)

// Query lists stock levels for the inventory screen.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list stock query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{readModel: readModel}
}

// Execute runs the query.
func (q *Query) Execute(ctx context.Context) ([]*contracts.StockDTO, error) {
	return q.readModel.ListStock(ctx)
}
