package ensure_user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/light-bringer/storeadmin-service/internal/app/auth/contracts"
	"github.com/light-bringer/storeadmin-service/internal/app/auth/domain"
	"github.com/light-bringer/storeadmin-service/internal/pkg/committer"
)

// Request describes the account that must exist.
type Request struct {
	Email    string
	Password string
	Name     string
	Role     string

	// ResetPassword overwrites the password of an existing account.
	ResetPassword bool
}

// Outcome reports what Execute did.
type Outcome string

const (
	Created   Outcome = "created"
	Reset     Outcome = "reset"
	Unchanged Outcome = "unchanged"
)

// Interactor creates an account if it is missing.
type Interactor struct {
	repo      contracts.UserRepository
	committer committer.Runner
}

// NewInteractor creates a new ensure user interactor.
func NewInteractor(repo contracts.UserRepository, committer committer.Runner) *Interactor {
	return &Interactor{repo: repo, committer: committer}
}

// Execute looks the account up and inserts or resets it in one transaction.
func (i *Interactor) Execute(ctx context.Context, req *Request) (Outcome, error) {
	var outcome Outcome
	err := i.committer.ReadWrite(ctx, func(ctx context.Context, tx committer.Tx) error {
		plan := committer.NewPlan()

		user, err := i.repo.GetByEmail(ctx, tx, req.Email)
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			user, err = domain.NewUser(uuid.New().String(), req.Email, req.Password, req.Name, req.Role)
			if err != nil {
				return err
			}
			plan.Add(i.repo.InsertMut(user))
			outcome = Created
		case err != nil:
			return err
		case req.ResetPassword:
			if err := user.ResetPassword(req.Password); err != nil {
				return err
			}
			plan.Add(i.repo.PasswordMut(user))
			outcome = Reset
		default:
			outcome = Unchanged
		}

		return tx.Buffer(plan)
	})
	if err != nil {
		return "", fmt.Errorf("failed to ensure user: %w", err)
	}
	return outcome, nil
}
