package replace_order_items

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	inventorycontracts "github.com/light-bringer/storeadmin-service/internal/app/inventory/contracts"
	"github.com/light-bringer/storeadmin-service/internal/app/inventory/ledger"
	"github.com/light-bringer/storeadmin-service/internal/app/order/catalog"
	"github.com/light-bringer/storeadmin-service/internal/app/order/contracts"
	"github.com/light-bringer/storeadmin-service/internal/app/order/domain"
	productcontracts "github.com/light-bringer/storeadmin-service/internal/app/product/contracts"
	"github.com/light-bringer/storeadmin-service/internal/pkg/committer"
)

// Request replaces every line of an existing order.
type Request struct {
	OrderID string
	Lines   []domain.Line
}

// Interactor edits orders by full replacement: stock held by the old lines
// is returned, then the new lines are taken against the restored levels.
type Interactor struct {
	orderRepo   contracts.OrderRepository
	productRepo productcontracts.ProductRepository
	historyRepo inventorycontracts.HistoryRepository
	committer   committer.Runner
	logger      *slog.Logger
}

// NewInteractor creates a new replace order items interactor.
func NewInteractor(
	orderRepo contracts.OrderRepository,
	productRepo productcontracts.ProductRepository,
	historyRepo inventorycontracts.HistoryRepository,
	committer committer.Runner,
	logger *slog.Logger,
) *Interactor {
	return &Interactor{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		historyRepo: historyRepo,
		committer:   committer,
		logger:      logger,
	}
}

// Execute applies the edit and returns the order as committed.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Order, error) {
	if len(req.Lines) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	var order *domain.Order
	err := i.committer.ReadWrite(ctx, func(ctx context.Context, tx committer.Tx) error {
		// 1. Load the order and its current lines
		var err error
		order, err = i.orderRepo.GetByID(ctx, tx, req.OrderID)
		if err != nil {
			return err
		}
		if err := domain.ValidateEditLines(req.Lines); err != nil {
			return err
		}

		resolver := catalog.New(i.productRepo, tx)
		book := resolver.Book
		restoreReason := domain.RestoreReason(order.Number())
		adjustReason := domain.AdjustReason(order.Number())

		// 2. Give back what the old lines took
		for _, item := range order.ClearItems() {
			if _, err := resolver.Resolve(ctx, item.ProductID); err != nil {
				return err
			}
			if err := book.Restore(item.ProductID, item.Quantity, restoreReason); err != nil {
				return err
			}
		}

		// 3. Take the new lines against the restored stock
		for _, line := range req.Lines {
			product, err := resolver.Resolve(ctx, line.ProductID)
			if err != nil {
				return err
			}
			if err := book.Withdraw(product.ID(), line.Quantity, adjustReason); err != nil {
				return err
			}
			if err := order.AddItem(domain.Item{
				ID:        uuid.New().String(),
				ProductID: product.ID(),
				Quantity:  line.Quantity,
				UnitPrice: product.Price(),
			}); err != nil {
				return err
			}
		}

		// 4. Swap the lines, rewrite the total, persist stock and ledger
		plan := committer.NewPlan()
		plan.Add(i.orderRepo.DeleteItemsMut(order.ID()))
		for _, item := range order.Items() {
			plan.Add(i.orderRepo.InsertItemMut(order.ID(), item))
		}
		plan.Add(i.orderRepo.TotalMut(order.ID(), order.Total()))
		ledger.Record(plan, book, i.productRepo, i.historyRepo)

		return tx.Buffer(plan)
	})
	if err != nil {
		i.logger.WarnContext(ctx, "order edit failed", "order_id", req.OrderID, "error", err)
		return nil, fmt.Errorf("failed to edit order: %w", err)
	}

	i.logger.InfoContext(ctx, "order edited",
		"order_id", order.ID(),
		"order_number", order.Number(),
		"lines", len(order.Items()),
		"total", order.Total().String(),
	)
	return order, nil
}
