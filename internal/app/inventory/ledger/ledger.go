// Package ledger turns a stock book into the mutations that persist it.
package ledger

import (
	"github.com/light-bringer/storeadmin-service/internal/app/inventory/contracts"
	"github.com/light-bringer/storeadmin-service/internal/app/inventory/domain"
	"github.com/light-bringer/storeadmin-service/internal/pkg/committer"
)

// Record adds one stock update per product that moved and one ledger row
// per movement to plan.
func Record(plan *committer.CommitPlan, book *domain.Book, stock contracts.StockWriter, history contracts.HistoryRepository) {
	for _, level := range book.Levels() {
		plan.Add(stock.StockMut(level.ProductID, level.Stock))
	}
	for _, movement := range book.Movements() {
		plan.Add(history.InsertMut(movement))
	}
}
