package list_products

import (
	"context"

	"github.com/light-bringer/storeadmin-service/internal/app/product/contracts"
)

// Query handles the list products query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list products query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute lists every product, newest first.
func (q *Query) Execute(ctx context.Context) ([]*contracts.ProductDTO, error) {
	return q.readModel.ListProducts(ctx)
}
