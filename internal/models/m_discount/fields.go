package m_discount

// Column names of the discounts table.
const (
	TableName = "discounts"

	DiscountID   = "discount_id"
	ProductID    = "product_id"
	DiscountType = "discount_type"
	Value        = "value"
	StartDate    = "start_date"
	EndDate      = "end_date"
	IsActive     = "is_active"
	CreatedAt    = "created_at"
	UpdatedAt    = "updated_at"
)

// Columns lists every column in table order.
func Columns() []string {
	return []string{DiscountID, ProductID, DiscountType, Value, StartDate, EndDate, IsActive, CreatedAt, UpdatedAt}
}
