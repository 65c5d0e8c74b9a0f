package adjust_stock

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/light-bringer/storeadmin-service/internal/app/inventory/contracts"
	"github.com/light-bringer/storeadmin-service/internal/app/inventory/domain"
	"github.com/light-bringer/storeadmin-service/internal/app/inventory/ledger"
	productcontracts "github.com/light-bringer/storeadmin-service/internal/app/product/contracts"
	"github.com/light-bringer/storeadmin-service/internal/pkg/committer"
)

// Request sets a product's stock to an absolute value.
type Request struct {
	ProductID string
	NewStock  int64
	Reason    string
}

// Interactor handles a manual stock adjustment.
type Interactor struct {
	productRepo productcontracts.ProductRepository
	historyRepo contracts.HistoryRepository
	committer   committer.Runner
	logger      *slog.Logger
}

// NewInteractor creates a new adjust stock interactor.
func NewInteractor(
	productRepo productcontracts.ProductRepository,
	historyRepo contracts.HistoryRepository,
	committer committer.Runner,
	logger *slog.Logger,
) *Interactor {
	return &Interactor{
		productRepo: productRepo,
		historyRepo: historyRepo,
		committer:   committer,
		logger:      logger,
	}
}

// Execute writes the new level and one ledger row in a single transaction.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	if req.NewStock < 0 {
		return domain.ErrNegativeStock
	}

	var movement domain.Movement
	err := i.committer.ReadWrite(ctx, func(ctx context.Context, tx committer.Tx) error {
		// 1. Read current stock
		product, err := i.productRepo.GetByID(ctx, tx, req.ProductID)
		if err != nil {
			return err
		}

		// 2. Apply the change to a fresh book
		book := domain.NewBook()
		book.Track(product.ID(), product.Name(), product.Stock())
		if err := book.Set(product.ID(), req.NewStock, req.Reason); err != nil {
			return err
		}
		movement = book.Movements()[0]

		// 3. Persist level and ledger row together
		plan := committer.NewPlan()
		ledger.Record(plan, book, i.productRepo, i.historyRepo)
		return tx.Buffer(plan)
	})
	if err != nil {
		return fmt.Errorf("failed to adjust stock: %w", err)
	}

	i.logger.InfoContext(ctx, "stock adjusted",
		"product_id", movement.ProductID,
		"previous_stock", movement.PreviousStock,
		"new_stock", movement.NewStock,
		"reason", movement.Reason,
	)
	return nil
}
