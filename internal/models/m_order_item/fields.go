package m_order_item

// Column names of the order_items table, interleaved in orders.
const (
	TableName = "order_items"

	OrderID     = "order_id"
	OrderItemID = "order_item_id"
	ProductID   = "product_id"
	Quantity    = "quantity"
	Price       = "price"
)

// Columns lists every column in table order.
func Columns() []string {
	return []string{OrderID, OrderItemID, ProductID, Quantity, Price}
}
