package get_summary

import (
	"context"

	"github.com/light-bringer/storeadmin-service/internal/app/analytics/contracts"
	"github.com/light-bringer/storeadmin-service/internal/app/analytics/domain"
	"github.com/light-bringer/storeadmin-service/internal/pkg/clock"
)

// Request selects the rollup window.
type Request struct {
	Period string
}

// Query builds the analytics summary.
type Query struct {
	readModel contracts.ReadModel
	clock     clock.Clock
}

// NewQuery creates a new summary query.
func NewQuery(readModel contracts.ReadModel, clock clock.Clock) *Query {
	return &Query{readModel: readModel, clock: clock}
}

// Execute runs the rollups. Revenue totals ignore the period; the order
// series and the ranking cover only the period's window.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.Summary, error) {
	now := q.clock.Now()
	windowStart := domain.ParsePeriod(req.Period).WindowStart(now)
	dayStart := domain.DayStart(now)
	monthStart := domain.MonthStart(now)

	total, err := q.readModel.Revenue(ctx, nil)
	if err != nil {
		return nil, err
	}
	today, err := q.readModel.Revenue(ctx, &dayStart)
	if err != nil {
		return nil, err
	}
	month, err := q.readModel.Revenue(ctx, &monthStart)
	if err != nil {
		return nil, err
	}

	orders, err := q.readModel.OrdersSince(ctx, windowStart)
	if err != nil {
		return nil, err
	}
	sales, err := q.readModel.ProductSales(ctx, windowStart, domain.TopProductsLimit)
	if err != nil {
		return nil, err
	}

	return &contracts.Summary{
		TotalRevenue: total.Float64(),
		TodayRevenue: today.Float64(),
		MonthRevenue: month.Float64(),
		OrdersByDate: orders,
		TopProducts:  domain.Rank(sales),
	}, nil
}
