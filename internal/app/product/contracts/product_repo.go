package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/storeadmin-service/internal/app/product/domain"
	"github.com/light-bringer/storeadmin-service/internal/pkg/committer"
)

// ProductRepository defines product persistence.
// Repositories return mutations, they don't apply them. Reads take a
// committer.Reader so they can run inside a read-write transaction.
type ProductRepository interface {
	// InsertMut creates a mutation for inserting a new product.
	InsertMut(product *domain.Product) *spanner.Mutation

	// UpdateMut writes only the product's dirty fields. Nil when nothing changed.
	UpdateMut(product *domain.Product) *spanner.Mutation

	// StockMut overwrites one product's stock level.
	StockMut(productID string, stock int64) *spanner.Mutation

	// DeleteMut deletes a product.
	DeleteMut(productID string) *spanner.Mutation

	// GetByID loads a product, or returns domain.ErrProductNotFound.
	GetByID(ctx context.Context, r committer.Reader, productID string) (*domain.Product, error)

	// BarcodeOwner returns the id of the product holding barcode, if any.
	BarcodeOwner(ctx context.Context, r committer.Reader, barcode string) (string, bool, error)

	// HasOrders reports whether any order line references the product.
	HasOrders(ctx context.Context, r committer.Reader, productID string) (bool, error)
}
