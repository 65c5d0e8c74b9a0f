package m_inventory_history

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data is one ledger row. Rows are only ever inserted.
type Data struct {
	HistoryID     string             `spanner:"history_id"`
	ProductID     string             `spanner:"product_id"`
	PreviousStock int64              `spanner:"previous_stock"`
	NewStock      int64              `spanner:"new_stock"`
	ChangeReason  spanner.NullString `spanner:"change_reason"`
	CreatedAt     time.Time          `spanner:"created_at"`
}

// Model builds mutations for the ledger.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut appends a ledger row stamped with the commit time.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		Columns(),
		[]interface{}{data.HistoryID, data.ProductID, data.PreviousStock, data.NewStock, data.ChangeReason, spanner.CommitTimestamp},
	)
}
