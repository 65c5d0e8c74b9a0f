package create_discount

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/light-bringer/storeadmin-service/internal/app/discount/contracts"
	"github.com/light-bringer/storeadmin-service/internal/app/discount/domain"
	productcontracts "github.com/light-bringer/storeadmin-service/internal/app/product/contracts"
	productdomain "github.com/light-bringer/storeadmin-service/internal/app/product/domain"
	"github.com/light-bringer/storeadmin-service/internal/pkg/clock"
	"github.com/light-bringer/storeadmin-service/internal/pkg/committer"
)

// Request contains the data needed to create a discount.
// A nil ProductID creates a global discount; a nil IsActive means true.
type Request struct {
	ProductID *string
	Terms     domain.Terms
	IsActive  *bool
}

// Interactor handles the create discount use case.
type Interactor struct {
	repo        contracts.DiscountRepository
	productRepo productcontracts.ProductRepository
	committer   committer.Runner
	clock       clock.Clock
}

// NewInteractor creates a new create discount interactor.
func NewInteractor(
	repo contracts.DiscountRepository,
	productRepo productcontracts.ProductRepository,
	committer committer.Runner,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		repo:        repo,
		productRepo: productRepo,
		committer:   committer,
		clock:       clock,
	}
}

// Execute creates the discount and returns its id.
func (i *Interactor) Execute(ctx context.Context, req *Request) (string, error) {
	terms := req.Terms
	terms.IsActive = req.IsActive == nil || *req.IsActive

	// 1. Build and validate the aggregate
	discount, err := domain.NewDiscount(uuid.New().String(), req.ProductID, terms, i.clock.Now())
	if err != nil {
		return "", err
	}

	// 2. Check the product and write in one transaction
	err = i.committer.ReadWrite(ctx, func(ctx context.Context, tx committer.Tx) error {
		if req.ProductID != nil {
			if _, err := i.productRepo.GetByID(ctx, tx, *req.ProductID); err != nil {
				if errors.Is(err, productdomain.ErrProductNotFound) {
					return domain.ErrDiscountProductGone
				}
				return err
			}
		}

		plan := committer.NewPlan()
		plan.Add(i.repo.InsertMut(discount))
		return tx.Buffer(plan)
	})
	if err != nil {
		return "", fmt.Errorf("failed to create discount: %w", err)
	}

	return discount.ID(), nil
}
