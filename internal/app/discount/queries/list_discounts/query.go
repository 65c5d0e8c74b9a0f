package list_discounts

import (
	"context"

	"github.com/light-bringer/storeadmin-service/internal/app/discount/contracts"
)

// Query lists every discount, newest first, with its product summary.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list discounts query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{readModel: readModel}
}

// Execute runs the query.
func (q *Query) Execute(ctx context.Context) ([]*contracts.DiscountDTO, error) {
	return q.readModel.ListDiscounts(ctx)
}
