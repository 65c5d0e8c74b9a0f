package m_product

import (
	"cloud.google.com/go/spanner"

	"github.com/light-bringer/storeadmin-service/internal/pkg/query"
)

// Model builds mutations for the products table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut inserts a new product. Both timestamps take the commit time.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		[]string{ProductID, Name, Description, Price, Stock, Category, Barcode, Images, CreatedAt, UpdatedAt},
		[]interface{}{
			data.ProductID,
			data.Name,
			data.Description,
			&data.Price,
			data.Stock,
			data.Category,
			data.Barcode,
			data.Images,
			spanner.CommitTimestamp,
			spanner.CommitTimestamp,
		},
	)
}

// UpdateMut writes the columns collected in set and bumps updated_at.
// It returns nil when set is empty.
func (m *Model) UpdateMut(productID string, set *query.UpdateSet) *spanner.Mutation {
	if set.IsEmpty() {
		return nil
	}
	set.Set(UpdatedAt, spanner.CommitTimestamp)
	return set.Mutation(ProductID, productID)
}

// StockMut sets the stock column of one product.
func (m *Model) StockMut(productID string, stock int64) *spanner.Mutation {
	return spanner.Update(
		TableName,
		[]string{ProductID, Stock, UpdatedAt},
		[]interface{}{productID, stock, spanner.CommitTimestamp},
	)
}

// DeleteMut hard-deletes a product. Discounts and ledger rows cascade.
func (m *Model) DeleteMut(productID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID})
}
