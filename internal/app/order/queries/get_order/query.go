package get_order

import (
	"context"

	"github.com/light-bringer/storeadmin-service/internal/app/order/contracts"
)

// Request contains the order ID to retrieve.
type Request struct {
	OrderID string
}

// Query handles the get order query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new get order query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{readModel: readModel}
}

// Execute retrieves an order with its lines.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.OrderDTO, error) {
	return q.readModel.GetOrder(ctx, req.OrderID)
}
