package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/storeadmin-service/internal/app/discount/domain"
	"github.com/light-bringer/storeadmin-service/internal/pkg/committer"
)

// DiscountRepository defines discount persistence.
type DiscountRepository interface {
	InsertMut(discount *domain.Discount) *spanner.Mutation
	UpdateMut(discount *domain.Discount) *spanner.Mutation
	DeleteMut(discountID string) *spanner.Mutation

	// GetByID loads a discount, or returns domain.ErrDiscountNotFound.
	GetByID(ctx context.Context, r committer.Reader, discountID string) (*domain.Discount, error)
}
