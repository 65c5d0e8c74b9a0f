package list_orders

import (
	"context"

	"github.com/light-bringer/storeadmin-service/internal/app/order/contracts"
)

// Query lists all orders, newest first.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list orders query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{readModel: readModel}
}

// Execute runs the query.
func (q *Query) Execute(ctx context.Context) ([]*contracts.OrderDTO, error) {
	return q.readModel.ListOrders(ctx)
}
