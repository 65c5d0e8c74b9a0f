package m_inventory_history

// Column names of the inventory_history table.
const (
	TableName = "inventory_history"

	HistoryID     = "history_id"
	ProductID     = "product_id"
	PreviousStock = "previous_stock"
	NewStock      = "new_stock"
	ChangeReason  = "change_reason"
	CreatedAt     = "created_at"
)

// Columns lists every column in table order.
func Columns() []string {
	return []string{HistoryID, ProductID, PreviousStock, NewStock, ChangeReason, CreatedAt}
}
