package committer

import (
	"errors"
	"fmt"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestCommitPlan_AddIgnoresNil(t *testing.T) {
	plan := NewPlan()
	assert.True(t, plan.IsEmpty())

	plan.Add(nil)
	plan.Add(spanner.Delete("products", spanner.Key{"p-1"}))
	plan.AddMultiple([]*spanner.Mutation{nil, spanner.Delete("discounts", spanner.Key{"d-1"})})

	assert.False(t, plan.IsEmpty())
	assert.Equal(t, 2, plan.Count())
	assert.Len(t, plan.Mutations(), 2)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		code    codes.Code
		wantErr error
	}{
		{name: "unique index", code: codes.AlreadyExists, wantErr: ErrDuplicateKey},
		{name: "foreign key", code: codes.FailedPrecondition, wantErr: ErrReferenceViolation},
		{name: "other", code: codes.Internal, wantErr: ErrTransactionFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classify(status.Error(tt.code, "boom"))

			assert.ErrorIs(t, err, ErrTransactionFailed)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClassify_KeepsCause(t *testing.T) {
	cause := status.Error(codes.Aborted, "aborted")

	err := classify(cause)

	assert.True(t, errors.Is(err, cause))
}

func TestBodyError(t *testing.T) {
	domainErr := errors.New("product not found")
	assert.Same(t, domainErr, bodyError(domainErr))

	readErr := fmt.Errorf("failed to read product: %w", status.Error(codes.Unavailable, "backend down"))
	err := bodyError(readErr)
	assert.ErrorIs(t, err, ErrTransactionFailed)
	assert.ErrorIs(t, err, readErr)

	dup := fmt.Errorf("insert: %w", status.Error(codes.AlreadyExists, "row exists"))
	assert.ErrorIs(t, bodyError(dup), ErrDuplicateKey)
}
