package contracts

import (
	"context"
	"time"

	"github.com/light-bringer/storeadmin-service/internal/app/analytics/domain"
	"github.com/light-bringer/storeadmin-service/internal/pkg/money"
)

// ItemPoint is one order line in the orders-by-date series.
type ItemPoint struct {
	Quantity  int64  `json:"quantity"`
	ProductID string `json:"productId"`
}

// OrderPoint is one order in the orders-by-date series.
type OrderPoint struct {
	CreatedAt   time.Time   `json:"createdAt"`
	TotalAmount float64     `json:"totalAmount"`
	Items       []ItemPoint `json:"items"`
}

// Summary is the analytics response.
type Summary struct {
	TotalRevenue float64             `json:"totalRevenue"`
	TodayRevenue float64             `json:"todayRevenue"`
	MonthRevenue float64             `json:"monthRevenue"`
	OrdersByDate []OrderPoint        `json:"ordersByDate"`
	TopProducts  []domain.TopProduct `json:"topProducts"`
}

// ReadModel defines the analytics reads.
type ReadModel interface {
	// Revenue sums order totals created at or after since. A nil since sums all orders.
	Revenue(ctx context.Context, since *time.Time) (money.Money, error)

	// OrdersSince returns orders created at or after since, oldest first.
	OrdersSince(ctx context.Context, since time.Time) ([]OrderPoint, error)

	// ProductSales ranks products by units sold since, highest first.
	ProductSales(ctx context.Context, since time.Time, limit int64) ([]domain.ProductSales, error)
}
