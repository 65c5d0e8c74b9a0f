package contracts

import (
	"cloud.google.com/go/spanner"

	"github.com/light-bringer/storeadmin-service/internal/app/inventory/domain"
)

// HistoryRepository appends ledger rows. There is no update or delete.
type HistoryRepository interface {
	InsertMut(movement domain.Movement) *spanner.Mutation
}

// StockWriter persists a product's stock level. The product repository
// implements it.
type StockWriter interface {
	StockMut(productID string, stock int64) *spanner.Mutation
}
