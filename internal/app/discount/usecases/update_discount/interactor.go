package update_discount

import (
	"context"
	"fmt"

	"github.com/light-bringer/storeadmin-service/internal/app/discount/contracts"
	"github.com/light-bringer/storeadmin-service/internal/app/discount/domain"
	"github.com/light-bringer/storeadmin-service/internal/pkg/clock"
	"github.com/light-bringer/storeadmin-service/internal/pkg/committer"
)

// Request replaces the terms of an existing discount.
type Request struct {
	DiscountID string
	Terms      domain.Terms
}

// Interactor handles the update discount use case.
type Interactor struct {
	repo      contracts.DiscountRepository
	committer committer.Runner
	clock     clock.Clock
}

// NewInteractor creates a new update discount interactor.
func NewInteractor(repo contracts.DiscountRepository, committer committer.Runner, clock clock.Clock) *Interactor {
	return &Interactor{repo: repo, committer: committer, clock: clock}
}

// Execute revises the discount.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	err := i.committer.ReadWrite(ctx, func(ctx context.Context, tx committer.Tx) error {
		discount, err := i.repo.GetByID(ctx, tx, req.DiscountID)
		if err != nil {
			return err
		}
		if err := discount.Revise(req.Terms, i.clock.Now()); err != nil {
			return err
		}

		plan := committer.NewPlan()
		plan.Add(i.repo.UpdateMut(discount))
		return tx.Buffer(plan)
	})
	if err != nil {
		return fmt.Errorf("failed to update discount: %w", err)
	}
	return nil
}
