package place_order

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
	"github.com/light-bringer/storeadmin-service/internal/pkg/clock"
	"github.com/light-bringer/storeadmin-service/internal/pkg/committer"
)

// Request lists the lines of a new order in the order they were entered.
type Request struct {
	Lines []domain.Line
}

// Interactor places orders. Everything it writes (order, lines, stock
// levels, ledger rows) commits together or not at all.
type Interactor struct {
	orderRepo   contracts.OrderRepository
	productRepo productcontracts.ProductRepository
	historyRepo inventorycontracts.HistoryRepository
	committer   committer.Runner
	numbers     domain.NumberGenerator
	clock       clock.Clock
	logger      *slog.Logger
}

// NewInteractor creates a new place order interactor.
func NewInteractor(
	orderRepo contracts.OrderRepository,
	productRepo productcontracts.ProductRepository,
	historyRepo inventorycontracts.HistoryRepository,
	committer committer.Runner,
	numbers domain.NumberGenerator,
	clock clock.Clock,
	logger *slog.Logger,
) *Interactor {
	return &Interactor{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		historyRepo: historyRepo,
		committer:   committer,
		numbers:     numbers,
		clock:       clock,
		logger:      logger,
	}
}

// Execute places the order and returns it as committed.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Order, error) {
	// 1. Validate the request shape
	if err := domain.ValidateLines(req.Lines); err != nil {
		return nil, err
	}

	var order *domain.Order
	err := i.committer.ReadWrite(ctx, func(ctx context.Context, tx committer.Tx) error {
		now := i.clock.Now()
		order = domain.NewOrder(uuid.New().String(), i.numbers.Next(now), now)
		resolver := catalog.New(i.productRepo, tx)
		book := resolver.Book

		// 2. Resolve each line against the working stock
		for _, line := range req.Lines {
			product, err := resolver.Resolve(ctx, line.ProductID)
			if err != nil {
				return err
			}
			if err := book.Withdraw(product.ID(), line.Quantity, domain.SaleReason(order.Number(), line.Quantity)); err != nil {
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

		// 3. Header first: lines are interleaved under it
		plan := committer.NewPlan()
		plan.Add(i.orderRepo.InsertMut(order))
		for _, item := range order.Items() {
			plan.Add(i.orderRepo.InsertItemMut(order.ID(), item))
		}

		// 4. Stock levels and ledger rows
		ledger.Record(plan, book, i.productRepo, i.historyRepo)

		return tx.Buffer(plan)
	})
	if err != nil {
		i.logger.WarnContext(ctx, "order placement failed", "lines", len(req.Lines), "error", err)
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	i.logger.InfoContext(ctx, "order placed",
		"order_id", order.ID(),
		"order_number", order.Number(),
		"lines", len(order.Items()),
		"total", order.Total().String(),
	)
	return order, nil
}
