package m_order

// Column names of the orders table.
const (
	TableName = "orders"

	OrderID     = "order_id"
	OrderNumber = "order_number"
	TotalAmount = "total_amount"
	CreatedAt   = "created_at"
)

// Columns lists every column in table order.
func Columns() []string {
	return []string{OrderID, OrderNumber, TotalAmount, CreatedAt}
}
