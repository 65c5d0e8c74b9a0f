package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/storeadmin-service/internal/app/order/domain"
	"github.com/light-bringer/storeadmin-service/internal/pkg/committer"
	"github.com/light-bringer/storeadmin-service/internal/pkg/money"
)

// OrderRepository defines order persistence.
type OrderRepository interface {
	// InsertMut writes the order header with its current total.
	InsertMut(order *domain.Order) *spanner.Mutation

	// InsertItemMut writes one line of an order.
	InsertItemMut(orderID string, item domain.Item) *spanner.Mutation

	// DeleteItemsMut removes every line of an order.
	DeleteItemsMut(orderID string) *spanner.Mutation

	// TotalMut rewrites the stored total.
	TotalMut(orderID string, total money.Money) *spanner.Mutation

	// GetByID loads an order with its lines, or returns domain.ErrOrderNotFound.
	GetByID(ctx context.Context, r committer.Reader, orderID string) (*domain.Order, error)
}
