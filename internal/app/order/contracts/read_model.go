package contracts

import (
	"context"
	"time"
)

// ProductSnapshot is the product embedded in an order line.
type ProductSnapshot struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category *string `json:"category"`
}

// ItemDTO is one order line. Price is the stored unit price, Product.Price
// the product's current price.
type ItemDTO struct {
	ID        string           `json:"id"`
	ProductID string           `json:"productId"`
	Quantity  int64            `json:"quantity"`
	Price     float64          `json:"price"`
	Product   *ProductSnapshot `json:"product"`
}

// OrderDTO is the JSON shape of an order.
type OrderDTO struct {
	ID          string     `json:"id"`
	OrderNumber string     `json:"orderNumber"`
	TotalAmount float64    `json:"totalAmount"`
	CreatedAt   time.Time  `json:"createdAt"`
	Items       []*ItemDTO `json:"items"`
}

// ReadModel defines order queries.
type ReadModel interface {
	// GetOrder returns one order with its lines.
	GetOrder(ctx context.Context, orderID string) (*OrderDTO, error)

	// ListOrders returns every order with its lines, newest first.
	ListOrders(ctx context.Context) ([]*OrderDTO, error)
}
