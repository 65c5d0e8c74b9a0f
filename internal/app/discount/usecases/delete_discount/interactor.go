package delete_discount

import (
	"context"
	"fmt"

	"github.com/light-bringer/storeadmin-service/internal/app/discount/contracts"
	"github.com/light-bringer/storeadmin-service/internal/pkg/committer"
)

// Request identifies the discount to delete.
type Request struct {
	DiscountID string
}

// Interactor handles the delete discount use case.
type Interactor struct {
	repo      contracts.DiscountRepository
	committer committer.Runner
}

// NewInteractor creates a new delete discount interactor.
func NewInteractor(repo contracts.DiscountRepository, committer committer.Runner) *Interactor {
	return &Interactor{repo: repo, committer: committer}
}

// Execute deletes the discount, or returns domain.ErrDiscountNotFound.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	err := i.committer.ReadWrite(ctx, func(ctx context.Context, tx committer.Tx) error {
		if _, err := i.repo.GetByID(ctx, tx, req.DiscountID); err != nil {
			return err
		}
		plan := committer.NewPlan()
		plan.Add(i.repo.DeleteMut(req.DiscountID))
		return tx.Buffer(plan)
	})
	if err != nil {
		return fmt.Errorf("failed to delete discount: %w", err)
	}
	return nil
}
