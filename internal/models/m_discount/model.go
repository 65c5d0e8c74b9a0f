package m_discount

import "cloud.google.com/go/spanner"

// Model builds mutations for the discounts table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut inserts a discount.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		[]string{DiscountID, ProductID, DiscountType, Value, StartDate, EndDate, IsActive, CreatedAt, UpdatedAt},
		[]interface{}{
			data.DiscountID,
			data.ProductID,
			data.DiscountType,
			&data.Value,
			data.StartDate,
			data.EndDate,
			data.IsActive,
			spanner.CommitTimestamp,
			spanner.CommitTimestamp,
		},
	)
}

// UpdateMut rewrites the editable columns of a discount. product_id is fixed at creation.
func (m *Model) UpdateMut(data *Data) *spanner.Mutation {
	return spanner.Update(
		TableName,
		[]string{DiscountID, DiscountType, Value, StartDate, EndDate, IsActive, UpdatedAt},
		[]interface{}{
			data.DiscountID,
			data.DiscountType,
			&data.Value,
			data.StartDate,
			data.EndDate,
			data.IsActive,
			spanner.CommitTimestamp,
		},
	)
}

// DeleteMut deletes a discount.
func (m *Model) DeleteMut(discountID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{discountID})
}
