package repo

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/storeadmin-service/internal/app/analytics/contracts"
	"github.com/light-bringer/storeadmin-service/internal/app/analytics/domain"
	"github.com/light-bringer/storeadmin-service/internal/pkg/money"
)

const ordersSinceSQL = `SELECT o.created_at, o.total_amount,
	ARRAY(SELECT AS STRUCT oi.quantity, oi.product_id
	      FROM order_items oi WHERE oi.order_id = o.order_id) AS items
FROM orders o
WHERE o.created_at >= @since
ORDER BY o.created_at ASC`

const productSalesSQL = `SELECT oi.product_id,
	SUM(oi.quantity) AS total_quantity,
	COUNT(oi.order_item_id) AS order_count,
	ANY_VALUE(p.name) AS product_name,
	ANY_VALUE(p.price) AS price
FROM order_items oi
JOIN orders o ON o.order_id = oi.order_id
LEFT JOIN products p ON p.product_id = oi.product_id
WHERE o.created_at >= @since
GROUP BY oi.product_id
ORDER BY total_quantity DESC
LIMIT @limit`

type itemRow struct {
	Quantity  int64  `spanner:"quantity"`
	ProductID string `spanner:"product_id"`
}

// ReadModelImpl implements ReadModel for Spanner.
type ReadModelImpl struct {
	client *spanner.Client
}

// NewReadModel creates a new ReadModel implementation.
func NewReadModel(client *spanner.Client) contracts.ReadModel {
	return &ReadModelImpl{client: client}
}

// Revenue sums order totals.
func (rm *ReadModelImpl) Revenue(ctx context.Context, since *time.Time) (money.Money, error) {
	stmt := spanner.Statement{SQL: "SELECT SUM(total_amount) FROM orders"}
	if since != nil {
		stmt.SQL += " WHERE created_at >= @since"
		stmt.Params = map[string]interface{}{"since": *since}
	}

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return money.Zero(), fmt.Errorf("failed to sum revenue: %w", err)
	}
	var sum spanner.NullNumeric
	if err := row.Column(0, &sum); err != nil {
		return money.Zero(), fmt.Errorf("failed to parse revenue: %w", err)
	}
	if !sum.Valid {
		return money.Zero(), nil
	}
	return money.FromRat(&sum.Numeric), nil
}

// OrdersSince returns the orders in the window with their lines.
func (rm *ReadModelImpl) OrdersSince(ctx context.Context, since time.Time) ([]contracts.OrderPoint, error) {
	stmt := spanner.Statement{SQL: ordersSinceSQL, Params: map[string]interface{}{"since": since}}
	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	points := make([]contracts.OrderPoint, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate orders: %w", err)
		}

		var (
			createdAt time.Time
			total     big.Rat
			items     []*itemRow
		)
		if err := row.Columns(&createdAt, &total, &items); err != nil {
			return nil, fmt.Errorf("failed to parse order: %w", err)
		}

		point := contracts.OrderPoint{
			CreatedAt:   createdAt,
			TotalAmount: money.FromRat(&total).Float64(),
			Items:       make([]contracts.ItemPoint, 0, len(items)),
		}
		for _, it := range items {
			point.Items = append(point.Items, contracts.ItemPoint{Quantity: it.Quantity, ProductID: it.ProductID})
		}
		points = append(points, point)
	}
	return points, nil
}

// ProductSales ranks products by units sold in the window.
func (rm *ReadModelImpl) ProductSales(ctx context.Context, since time.Time, limit int64) ([]domain.ProductSales, error) {
	stmt := spanner.Statement{
		SQL:    productSalesSQL,
		Params: map[string]interface{}{"since": since, "limit": limit},
	}
	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	sales := make([]domain.ProductSales, 0, limit)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate product sales: %w", err)
		}

		var (
			s     domain.ProductSales
			name  spanner.NullString
			price spanner.NullNumeric
		)
		if err := row.Columns(&s.ProductID, &s.TotalQuantity, &s.OrderCount, &name, &price); err != nil {
			return nil, fmt.Errorf("failed to parse product sales: %w", err)
		}
		if name.Valid {
			n := name.StringVal
			s.Name = &n
		}
		if price.Valid {
			p := money.FromRat(&price.Numeric)
			s.Price = &p
		}
		sales = append(sales, s)
	}
	return sales, nil
}
