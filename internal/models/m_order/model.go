package m_order

import (
	"math/big"

	"cloud.google.com/go/spanner"
)

// Model builds mutations for the orders table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut inserts an order header.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		Columns(),
		[]interface{}{data.OrderID, data.OrderNumber, &data.TotalAmount, data.CreatedAt},
	)
}

// TotalMut rewrites the stored total of an order.
func (m *Model) TotalMut(orderID string, total *big.Rat) *spanner.Mutation {
	return spanner.Update(TableName, []string{OrderID, TotalAmount}, []interface{}{orderID, total})
}
