package contracts

import (
	"context"
	"time"
)

// StockDTO is one row of the inventory overview.
type StockDTO struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Stock    int64   `json:"stock"`
	Category *string `json:"category"`
}

// HistoryDTO is one ledger row.
type HistoryDTO struct {
	ID            string    `json:"id"`
	ProductID     string    `json:"productId"`
	PreviousStock int64     `json:"previousStock"`
	NewStock      int64     `json:"newStock"`
	ChangeReason  *string   `json:"changeReason"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ReadModel defines inventory queries.
type ReadModel interface {
	// ListStock returns every product's stock ordered by name.
	ListStock(ctx context.Context) ([]*StockDTO, error)

	// ListHistory returns a product's ledger, newest first.
	ListHistory(ctx context.Context, productID string, limit int64) ([]*HistoryDTO, error)
}
