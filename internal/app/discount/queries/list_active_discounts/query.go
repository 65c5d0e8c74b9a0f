package list_active_discounts

import (
	"context"

	"github.com/light-bringer/storeadmin-service/internal/app/discount/contracts"
	"github.com/light-bringer/storeadmin-service/internal/pkg/clock"
)

// Query lists the discounts active right now, global ones included.
type Query struct {
	readModel contracts.ReadModel
	clock     clock.Clock
}

// NewQuery creates a new active discounts query.
func NewQuery(readModel contracts.ReadModel, clock clock.Clock) *Query {
	return &Query{readModel: readModel, clock: clock}
}

// Execute runs the query.
func (q *Query) Execute(ctx context.Context) ([]*contracts.DiscountDTO, error) {
	return q.readModel.ListActive(ctx, q.clock.Now())
}
