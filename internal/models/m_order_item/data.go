package m_order_item

import "math/big"

// Data is one row of the order_items table. Price is the unit price at the
// time the line was written.
type Data struct {
	OrderID     string  `spanner:"order_id"`
	OrderItemID string  `spanner:"order_item_id"`
	ProductID   string  `spanner:"product_id"`
	Quantity    int64   `spanner:"quantity"`
	Price       big.Rat `spanner:"price"`
}
