package patch_product

import (
	"context"
	"fmt"

	"github.com/light-bringer/storeadmin-service/internal/app/product/barcode"
	"github.com/light-bringer/storeadmin-service/internal/app/product/contracts"
	"github.com/light-bringer/storeadmin-service/internal/app/product/domain"
	"github.com/light-bringer/storeadmin-service/internal/pkg/clock"
	"github.com/light-bringer/storeadmin-service/internal/pkg/committer"
	"github.com/light-bringer/storeadmin-service/internal/pkg/money"
)

// Field is an optional request value. Present distinguishes "not sent"
// from a zero or null value.
type Field[T any] struct {
	Value   T
	Present bool
}

// Set wraps a supplied value.
func Set[T any](v T) Field[T] {
	return Field[T]{Value: v, Present: true}
}

// Request contains the fields to change. Absent fields are left alone; a
// present nil clears a nullable field.
type Request struct {
	ProductID   string
	Name        Field[string]
	Description Field[*string]
	Price       Field[money.Money]
	Stock       Field[int64]
	Category    Field[*string]
	Barcode     Field[*string]
	Images      Field[[]string]
}

func (r *Request) empty() bool {
	return !r.Name.Present && !r.Description.Present && !r.Price.Present && !r.Stock.Present &&
		!r.Category.Present && !r.Barcode.Present && !r.Images.Present
}

// Interactor handles the partial update use case.
type Interactor struct {
	repo      contracts.ProductRepository
	committer committer.Runner
	clock     clock.Clock
}

// NewInteractor creates a new patch product interactor.
func NewInteractor(
	repo contracts.ProductRepository,
	committer committer.Runner,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		repo:      repo,
		committer: committer,
		clock:     clock,
	}
}

// Execute writes only the supplied columns.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	if req.empty() {
		return domain.ErrNothingToUpdate
	}

	err := i.committer.ReadWrite(ctx, func(ctx context.Context, tx committer.Tx) error {
		// 1. Load aggregate
		product, err := i.repo.GetByID(ctx, tx, req.ProductID)
		if err != nil {
			return err
		}

		// 2. Call domain methods for the supplied fields
		if err := apply(product, req, i.clock); err != nil {
			return err
		}
		if req.Barcode.Present {
			if err := barcode.EnsureFree(ctx, i.repo, tx, product.Barcode(), product.ID()); err != nil {
				return err
			}
		}

		// 3. Only dirty columns are written
		plan := committer.NewPlan()
		plan.Add(i.repo.UpdateMut(product))
		return tx.Buffer(plan)
	})
	if err != nil {
		return fmt.Errorf("failed to update product: %w", barcode.TranslateCommit(err))
	}
	return nil
}

func apply(product *domain.Product, req *Request, clk clock.Clock) error {
	now := clk.Now()
	if req.Name.Present {
		if err := product.Rename(req.Name.Value, now); err != nil {
			return err
		}
	}
	if req.Description.Present {
		product.SetDescription(req.Description.Value, now)
	}
	if req.Price.Present {
		if err := product.SetPrice(req.Price.Value, now); err != nil {
			return err
		}
	}
	if req.Stock.Present {
		if err := product.SetStock(req.Stock.Value, now); err != nil {
			return err
		}
	}
	if req.Category.Present {
		product.SetCategory(req.Category.Value, now)
	}
	if req.Barcode.Present {
		product.SetBarcode(req.Barcode.Value, now)
	}
	if req.Images.Present {
		product.SetImages(req.Images.Value, now)
	}
	return nil
}
