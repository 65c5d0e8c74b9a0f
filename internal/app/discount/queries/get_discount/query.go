package get_discount

import (
	"context"

	"github.com/light-bringer/storeadmin-service/internal/app/discount/contracts"
)

// Request contains the discount ID to retrieve.
type Request struct {
	DiscountID string
}

// Query handles the get discount query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new get discount query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{readModel: readModel}
}

// Execute retrieves a discount with its product summary.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.DiscountDTO, error) {
	return q.readModel.GetDiscount(ctx, req.DiscountID)
}
