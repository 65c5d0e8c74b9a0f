package login

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/light-bringer/storeadmin-service/internal/app/auth/contracts"
	"github.com/light-bringer/storeadmin-service/internal/app/auth/domain"
	"github.com/light-bringer/storeadmin-service/internal/app/auth/tokens"
	"github.com/light-bringer/storeadmin-service/internal/pkg/committer"
)

// Request carries login credentials.
type Request struct {
	Email    string
	Password string
}

// UserDTO is the public view of the signed-in user.
type UserDTO struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Response is a signed session.
type Response struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      UserDTO   `json:"user"`
}

// Interactor handles login.
type Interactor struct {
	repo      contracts.UserRepository
	committer committer.Runner
	issuer    *tokens.Issuer
	logger    *slog.Logger
}

// NewInteractor creates a new login interactor.
func NewInteractor(
	repo contracts.UserRepository,
	committer committer.Runner,
	issuer *tokens.Issuer,
	logger *slog.Logger,
) *Interactor {
	return &Interactor{
		repo:      repo,
		committer: committer,
		issuer:    issuer,
		logger:    logger,
	}
}

// Execute checks credentials and issues a token. Unknown email and wrong
// password both return domain.ErrInvalidCredentials.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Email == "" || req.Password == "" {
		return nil, domain.ErrMissingCredentials
	}

	user, err := i.repo.GetByEmail(ctx, i.committer.Single(), req.Email)
	if errors.Is(err, domain.ErrUserNotFound) {
		i.logger.WarnContext(ctx, "login failed", "reason", "unknown email")
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if !user.CheckPassword(req.Password) {
		i.logger.WarnContext(ctx, "login failed", "reason", "bad password", "user_id", user.ID())
		return nil, domain.ErrInvalidCredentials
	}

	token, expires, err := i.issuer.Issue(user)
	if err != nil {
		return nil, err
	}

	i.logger.InfoContext(ctx, "user logged in", "user_id", user.ID())
	return &Response{
		Token:     token,
		ExpiresAt: expires,
		User: UserDTO{
			ID:    user.ID(),
			Email: user.Email(),
			Name:  user.Name(),
			Role:  user.Role(),
		},
	}, nil
}
