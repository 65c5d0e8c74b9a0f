package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/storeadmin-service/internal/app/auth/domain"
	"github.com/light-bringer/storeadmin-service/internal/pkg/committer"
)

// UserRepository defines user persistence.
type UserRepository interface {
	InsertMut(user *domain.User) *spanner.Mutation
	PasswordMut(user *domain.User) *spanner.Mutation

	// GetByEmail looks a user up by normalized email, or returns domain.ErrUserNotFound.
	GetByEmail(ctx context.Context, r committer.Reader, email string) (*domain.User, error)
}
