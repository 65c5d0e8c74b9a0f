package create_product

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/light-bringer/storeadmin-service/internal/app/product/barcode"
	"github.com/light-bringer/storeadmin-service/internal/app/product/contracts"
	"github.com/light-bringer/storeadmin-service/internal/app/product/domain"
	"github.com/light-bringer/storeadmin-service/internal/pkg/clock"
	"github.com/light-bringer/storeadmin-service/internal/pkg/committer"
)

// Request contains the data needed to create a product.
type Request struct {
	Attributes domain.Attributes
}

// Interactor handles the create product use case.
type Interactor struct {
	repo      contracts.ProductRepository
	committer committer.Runner
	clock     clock.Clock
}

// NewInteractor creates a new create product interactor.
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

// Execute creates a new product and returns its id.
func (i *Interactor) Execute(ctx context.Context, req *Request) (string, error) {
	// 1. Create and validate the aggregate
	product, err := domain.NewProduct(uuid.New().String(), req.Attributes, i.clock.Now())
	if err != nil {
		return "", err
	}

	// 2. Check the barcode and insert in one transaction
	err = i.committer.ReadWrite(ctx, func(ctx context.Context, tx committer.Tx) error {
		if err := barcode.EnsureFree(ctx, i.repo, tx, product.Barcode(), product.ID()); err != nil {
			return err
		}

		plan := committer.NewPlan()
		plan.Add(i.repo.InsertMut(product))
		return tx.Buffer(plan)
	})
	if err != nil {
		return "", fmt.Errorf("failed to create product: %w", barcode.TranslateCommit(err))
	}

	return product.ID(), nil
}
