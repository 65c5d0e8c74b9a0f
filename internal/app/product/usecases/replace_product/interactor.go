package replace_product

import (
	"context"
	"fmt"

	"github.com/light-bringer/storeadmin-service/internal/app/product/barcode"
	"github.com/light-bringer/storeadmin-service/internal/app/product/contracts"
	"github.com/light-bringer/storeadmin-service/internal/app/product/domain"
	"github.com/light-bringer/storeadmin-service/internal/pkg/clock"
	"github.com/light-bringer/storeadmin-service/internal/pkg/committer"
)

// Request overwrites every editable field of a product.
type Request struct {
	ProductID  string
	Attributes domain.Attributes
}

// Interactor handles full product replacement.
type Interactor struct {
	repo      contracts.ProductRepository
	committer committer.Runner
	clock     clock.Clock
}

// NewInteractor creates a new replace product interactor.
func NewInteractor(repo contracts.ProductRepository, committer committer.Runner, clock clock.Clock) *Interactor {
	return &Interactor{repo: repo, committer: committer, clock: clock}
}

// Execute replaces the product. Stock written here is a catalog edit and
// is not recorded in the inventory ledger.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	err := i.committer.ReadWrite(ctx, func(ctx context.Context, tx committer.Tx) error {
		// 1. Load aggregate
		product, err := i.repo.GetByID(ctx, tx, req.ProductID)
		if err != nil {
			return err
		}

		// 2. Apply and validate
		if err := product.Replace(req.Attributes, i.clock.Now()); err != nil {
			return err
		}
		if err := barcode.EnsureFree(ctx, i.repo, tx, product.Barcode(), product.ID()); err != nil {
			return err
		}

		plan := committer.NewPlan()
		plan.Add(i.repo.UpdateMut(product))
		return tx.Buffer(plan)
	})
	if err != nil {
		return fmt.Errorf("failed to replace product: %w", barcode.TranslateCommit(err))
	}
	return nil
}
