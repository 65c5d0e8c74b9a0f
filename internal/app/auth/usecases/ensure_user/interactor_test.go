package ensure_user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storeadmin-service/internal/app/auth/domain"
	"github.com/light-bringer/storeadmin-service/tests/testutil/fakes"
)

func TestEnsureUser(t *testing.T) {
	store := fakes.NewStore()
	interactor := NewInteractor(store.Users, store.Runner)
	ctx := context.Background()
	req := &Request{Email: "admin@example.com", Password: "admin123", Name: "Admin", Role: domain.RoleAdmin}

	outcome, err := interactor.Execute(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, Created, outcome)
	assert.Equal(t, 1, store.Users.Len())

	outcome, err = interactor.Execute(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, Unchanged, outcome)
	assert.Equal(t, 1, store.Users.Len())

	reset := *req
	reset.Password = "changed-pass"
	reset.ResetPassword = true
	outcome, err = interactor.Execute(ctx, &reset)
	require.NoError(t, err)
	assert.Equal(t, Reset, outcome)

	user, err := store.Users.GetByEmail(ctx, nil, "admin@example.com")
	require.NoError(t, err)
	assert.True(t, user.CheckPassword("changed-pass"))
	assert.Equal(t, 1, store.Users.Len())
}

func TestEnsureUser_WeakPassword(t *testing.T) {
	store := fakes.NewStore()
	interactor := NewInteractor(store.Users, store.Runner)

	_, err := interactor.Execute(context.Background(), &Request{Email: "a@b.c", Password: "short"})
	assert.ErrorIs(t, err, domain.ErrWeakPassword)
	assert.Zero(t, store.Users.Len())
}
