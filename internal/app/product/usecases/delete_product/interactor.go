package delete_product

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/light-bringer/storeadmin-service/internal/app/product/contracts"
	"github.com/light-bringer/storeadmin-service/internal/app/product/domain"
	"github.com/light-bringer/storeadmin-service/internal/pkg/committer"
)

// Request identifies the product to delete.
type Request struct {
	ProductID string
}

// Interactor hard-deletes products. Discounts and ledger rows go with the
// product; a product that appears on any order cannot be deleted.
type Interactor struct {
	repo      contracts.ProductRepository
	committer committer.Runner
	logger    *slog.Logger
}

// NewInteractor creates a new delete product interactor.
func NewInteractor(repo contracts.ProductRepository, committer committer.Runner, logger *slog.Logger) *Interactor {
	return &Interactor{repo: repo, committer: committer, logger: logger}
}

// Execute deletes the product.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	err := i.committer.ReadWrite(ctx, func(ctx context.Context, tx committer.Tx) error {
		if _, err := i.repo.GetByID(ctx, tx, req.ProductID); err != nil {
			return err
		}

		referenced, err := i.repo.HasOrders(ctx, tx, req.ProductID)
		if err != nil {
			return err
		}
		if referenced {
			return domain.ErrProductHasOrders
		}

		plan := committer.NewPlan()
		plan.Add(i.repo.DeleteMut(req.ProductID))
		return tx.Buffer(plan)
	})
	if errors.Is(err, committer.ErrReferenceViolation) {
		err = fmt.Errorf("%w: %w", domain.ErrProductHasOrders, err)
	}
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	i.logger.InfoContext(ctx, "product deleted", "product_id", req.ProductID)
	return nil
}
