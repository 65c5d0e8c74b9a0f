package repo

import (
	"context"
	"fmt"
	"math/big"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/storeadmin-service/internal/app/order/contracts"
	"github.com/light-bringer/storeadmin-service/internal/app/order/domain"
	"github.com/light-bringer/storeadmin-service/internal/models/m_order"
	"github.com/light-bringer/storeadmin-service/internal/pkg/money"
	"github.com/light-bringer/storeadmin-service/internal/pkg/query"
)

const itemsWithProductSQL = `SELECT oi.order_id, oi.order_item_id, oi.product_id, oi.quantity, oi.price,
	p.name, p.price, p.category
FROM order_items oi
JOIN products p ON p.product_id = oi.product_id
WHERE oi.order_id IN UNNEST(@order_ids)
ORDER BY oi.order_id, oi.order_item_id`

// ReadModelImpl implements ReadModel for Spanner.
type ReadModelImpl struct {
	client *spanner.Client
}

// NewReadModel creates a new ReadModel implementation.
func NewReadModel(client *spanner.Client) contracts.ReadModel {
	return &ReadModelImpl{client: client}
}

// GetOrder returns one order with its lines.
func (rm *ReadModelImpl) GetOrder(ctx context.Context, orderID string) (*contracts.OrderDTO, error) {
	row, err := rm.client.Single().ReadRow(ctx, m_order.TableName, spanner.Key{orderID}, m_order.Columns())
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

	orders := []*contracts.OrderDTO{orderToDTO(&data)}
	if err := rm.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return orders[0], nil
}

// ListOrders returns every order with its lines, newest first.
func (rm *ReadModelImpl) ListOrders(ctx context.Context) ([]*contracts.OrderDTO, error) {
	stmt := query.From(m_order.TableName).
		Select(m_order.Columns()...).
		OrderBy(m_order.CreatedAt, query.Desc).
		Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	orders := make([]*contracts.OrderDTO, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate orders: %w", err)
		}

		var data m_order.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse order: %w", err)
		}
		orders = append(orders, orderToDTO(&data))
	}

	if err := rm.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (rm *ReadModelImpl) attachItems(ctx context.Context, orders []*contracts.OrderDTO) error {
	if len(orders) == 0 {
		return nil
	}

	byID := make(map[string]*contracts.OrderDTO, len(orders))
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		byID[o.ID] = o
		ids = append(ids, o.ID)
	}

	stmt := spanner.Statement{
		SQL:    itemsWithProductSQL,
		Params: map[string]interface{}{"order_ids": ids},
	}
	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to iterate order items: %w", err)
		}

		var (
			orderID, itemID, productID, name string
			quantity                         int64
			price, productPrice              big.Rat
			category                         spanner.NullString
		)
		if err := row.Columns(&orderID, &itemID, &productID, &quantity, &price, &name, &productPrice, &category); err != nil {
			return fmt.Errorf("failed to parse order item: %w", err)
		}

		snapshot := &contracts.ProductSnapshot{
			ID:    productID,
			Name:  name,
			Price: money.FromRat(&productPrice).Float64(),
		}
		if category.Valid {
			c := category.StringVal
			snapshot.Category = &c
		}

		o := byID[orderID]
		o.Items = append(o.Items, &contracts.ItemDTO{
			ID:        itemID,
			ProductID: productID,
			Quantity:  quantity,
			Price:     money.FromRat(&price).Float64(),
			Product:   snapshot,
		})
	}
}

func orderToDTO(data *m_order.Data) *contracts.OrderDTO {
	return &contracts.OrderDTO{
		ID:          data.OrderID,
		OrderNumber: data.OrderNumber,
		TotalAmount: money.FromRat(&data.TotalAmount).Float64(),
		CreatedAt:   data.CreatedAt,
		Items:       make([]*contracts.ItemDTO, 0),
	}
}
