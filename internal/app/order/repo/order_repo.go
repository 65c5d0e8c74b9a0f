package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/storeadmin-service/internal/app/order/contracts"
	"github.com/light-bringer/storeadmin-service/internal/app/order/domain"
	"github.com/light-bringer/storeadmin-service/internal/models/m_order"
	"github.com/light-bringer/storeadmin-service/internal/models/m_order_item"
	"github.com/light-bringer/storeadmin-service/internal/pkg/committer"
	"github.com/light-bringer/storeadmin-service/internal/pkg/money"
	"github.com/light-bringer/storeadmin-service/internal/pkg/query"
)

// OrderRepo implements OrderRepository for Spanner.
type OrderRepo struct {
	orders *m_order.Model
	items  *m_order_item.Model
}

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo() contracts.OrderRepository {
	return &OrderRepo{orders: m_order.NewModel(), items: m_order_item.NewModel()}
}

func (r *OrderRepo) InsertMut(order *domain.Order) *spanner.Mutation {
	data := &m_order.Data{
		OrderID:     order.ID(),
		OrderNumber: order.Number(),
		CreatedAt:   order.CreatedAt(),
	}
	data.TotalAmount.Set(order.Total().Rat())
	return r.orders.InsertMut(data)
}

func (r *OrderRepo) InsertItemMut(orderID string, item domain.Item) *spanner.Mutation {
	data := &m_order_item.Data{
		OrderID:     orderID,
		OrderItemID: item.ID,
		ProductID:   item.ProductID,
		Quantity:    item.Quantity,
	}
	data.Price.Set(item.UnitPrice.Rat())
	return r.items.InsertMut(data)
}

func (r *OrderRepo) DeleteItemsMut(orderID string) *spanner.Mutation {
	return r.items.DeleteAllMut(orderID)
}

func (r *OrderRepo) TotalMut(orderID string, total money.Money) *spanner.Mutation {
	return r.orders.TotalMut(orderID, total.Rat())
}

// GetByID loads an order and its lines.
func (r *OrderRepo) GetByID(ctx context.Context, rd committer.Reader, orderID string) (*domain.Order, error) {
	row, err := rd.ReadRow(ctx, m_order.TableName, spanner.Key{orderID}, m_order.Columns())
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to read order: %w", err)
	}

	var data m_order.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse order: %w", err)
	}

	stmt := query.From(m_order_item.TableName).
		Select(m_order_item.Columns()...).
		Where(query.Eq(m_order_item.OrderID, orderID)).
		OrderBy(m_order_item.OrderItemID, query.Asc).
		Build()

	iter := rd.Query(ctx, stmt)
	defer iter.Stop()

	items := make([]domain.Item, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate order items: %w", err)
		}

		var item m_order_item.Data
		if err := row.ToStruct(&item); err != nil {
			return nil, fmt.Errorf("failed to parse order item: %w", err)
		}
		items = append(items, domain.Item{
			ID:        item.OrderItemID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: money.FromRat(&item.Price),
		})
	}

	return domain.ReconstructOrder(data.OrderID, data.OrderNumber, items, data.CreatedAt), nil
}
