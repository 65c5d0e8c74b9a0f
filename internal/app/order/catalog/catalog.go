// Package catalog resolves order lines to products inside one transaction.
package catalog

import (
	"context"
	"errors"

	inventorydomain "github.com/light-bringer/storeadmin-service/internal/app/inventory/domain"
	"github.com/light-bringer/storeadmin-service/internal/app/order/domain"
	productcontracts "github.com/light-bringer/storeadmin-service/internal/app/product/contracts"
	productdomain "github.com/light-bringer/storeadmin-service/internal/app/product/domain"
	"github.com/light-bringer/storeadmin-service/internal/pkg/committer"
)

// Catalog reads each product at most once per transaction attempt and
// loads its stored stock into Book the first time it is seen.
type Catalog struct {
	repo     productcontracts.ProductRepository
	tx       committer.Tx
	products map[string]*productdomain.Product
	Book     *inventorydomain.Book
}

// New creates a Catalog bound to tx.
func New(repo productcontracts.ProductRepository, tx committer.Tx) *Catalog {
	return &Catalog{
		repo:     repo,
		tx:       tx,
		products: make(map[string]*productdomain.Product),
		Book:     inventorydomain.NewBook(),
	}
}

// Resolve returns the product for a line, or a *domain.ProductNotFoundError.
func (c *Catalog) Resolve(ctx context.Context, productID string) (*productdomain.Product, error) {
	if p, ok := c.products[productID]; ok {
		return p, nil
	}
	p, err := c.repo.GetByID(ctx, c.tx, productID)
	if err != nil {
		if errors.Is(err, productdomain.ErrProductNotFound) {
			return nil, &domain.ProductNotFoundError{ProductID: productID}
		}
		return nil, err
	}
	c.products[productID] = p
	c.Book.Track(p.ID(), p.Name(), p.Stock())
	return p, nil
}
