package m_order_item

import "cloud.google.com/go/spanner"

// Model builds mutations for the order_items table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut inserts one order line.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		Columns(),
		[]interface{}{data.OrderID, data.OrderItemID, data.ProductID, data.Quantity, &data.Price},
	)
}

// DeleteAllMut removes every line of an order, leaving the order row in place.
func (m *Model) DeleteAllMut(orderID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{orderID}.AsPrefix())
}
