package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/storeadmin-service/internal/app/auth/contracts"
	"github.com/light-bringer/storeadmin-service/internal/app/auth/domain"
	"github.com/light-bringer/storeadmin-service/internal/models/m_user"
	"github.com/light-bringer/storeadmin-service/internal/pkg/committer"
	"github.com/light-bringer/storeadmin-service/internal/pkg/query"
)

// UserRepo implements UserRepository for Spanner.
type UserRepo struct {
	model *m_user.Model
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo() contracts.UserRepository {
	return &UserRepo{model: m_user.NewModel()}
}

func (r *UserRepo) InsertMut(user *domain.User) *spanner.Mutation {
	return r.model.InsertMut(&m_user.Data{
		UserID:       user.ID(),
		Email:        user.Email(),
		PasswordHash: user.PasswordHash(),
		Name:         user.Name(),
		Role:         user.Role(),
	})
}

func (r *UserRepo) PasswordMut(user *domain.User) *spanner.Mutation {
	return r.model.PasswordMut(user.ID(), user.PasswordHash())
}

// GetByEmail looks a user up through the email index.
func (r *UserRepo) GetByEmail(ctx context.Context, rd committer.Reader, email string) (*domain.User, error) {
	stmt := query.From(m_user.TableName).
		Select(m_user.Columns()...).
		Where(query.Eq(m_user.Email, domain.NormalizeEmail(email))).
		Limit(1).
		Build()

	iter := rd.Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read user: %w", err)
	}

	var data m_user.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse user: %w", err)
	}
	return domain.ReconstructUser(data.UserID, data.Email, data.PasswordHash, data.Name, data.Role), nil
}
