package repo

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	discountcontracts "github.com/light-bringer/storeadmin-service/internal/app/discount/contracts"
	discountdomain "github.com/light-bringer/storeadmin-service/internal/app/discount/domain"
	"github.com/light-bringer/storeadmin-service/internal/app/product/contracts"
	"github.com/light-bringer/storeadmin-service/internal/app/product/domain"
	"github.com/light-bringer/storeadmin-service/internal/models/m_product"
	"github.com/light-bringer/storeadmin-service/internal/pkg/clock"
	"github.com/light-bringer/storeadmin-service/internal/pkg/query"
)

// ReadModelImpl implements ReadModel for Spanner.
type ReadModelImpl struct {
	client    *spanner.Client
	discounts discountcontracts.ReadModel
	clock     clock.Clock
}

// NewReadModel creates a new ReadModel implementation.
func NewReadModel(client *spanner.Client, discounts discountcontracts.ReadModel, clock clock.Clock) contracts.ReadModel {
	return &ReadModelImpl{
		client:    client,
		discounts: discounts,
		clock:     clock,
	}
}

// GetProduct returns a product with every discount scoped to it.
func (rm *ReadModelImpl) GetProduct(ctx context.Context, productID string) (*contracts.ProductDTO, error) {
	row, err := rm.client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, m_product.Columns())
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to read product: %w", err)
	}

	var data m_product.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse product: %w", err)
	}

	dtos, err := rm.withDiscounts(ctx, []*m_product.Data{&data}, false)
	if err != nil {
		return nil, err
	}
	return dtos[0], nil
}

// ListProducts returns every product, newest first, with active discounts.
func (rm *ReadModelImpl) ListProducts(ctx context.Context) ([]*contracts.ProductDTO, error) {
	stmt := query.From(m_product.TableName).
		Select(m_product.Columns()...).
		OrderBy(m_product.CreatedAt, query.Desc).
		Build()

	rows, err := rm.query(ctx, stmt)
	if err != nil {
		return nil, err
	}
	return rm.withDiscounts(ctx, rows, true)
}

// FindByBarcode returns the product holding barcode with active discounts.
func (rm *ReadModelImpl) FindByBarcode(ctx context.Context, barcode string) (*contracts.ProductDTO, error) {
	stmt := query.From(m_product.TableName).
		Select(m_product.Columns()...).
		Where(query.Eq(m_product.Barcode, barcode)).
		Limit(1).
		Build()

	rows, err := rm.query(ctx, stmt)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrProductNotFound
	}

	dtos, err := rm.withDiscounts(ctx, rows, true)
	if err != nil {
		return nil, err
	}
	return dtos[0], nil
}

func (rm *ReadModelImpl) query(ctx context.Context, stmt spanner.Statement) ([]*m_product.Data, error) {
	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	rows := make([]*m_product.Data, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate products: %w", err)
		}

		var data m_product.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse product: %w", err)
		}
		rows = append(rows, &data)
	}
	return rows, nil
}

// withDiscounts loads the discounts of rows in one query and builds DTOs.
// With activeOnly, only discounts active now are embedded.
func (rm *ReadModelImpl) withDiscounts(ctx context.Context, rows []*m_product.Data, activeOnly bool) ([]*contracts.ProductDTO, error) {
	now := rm.clock.Now()
	ids := make([]string, len(rows))
	for i, data := range rows {
		ids[i] = data.ProductID
	}

	var activeAt *time.Time
	if activeOnly {
		activeAt = &now
	}
	byProduct, err := rm.discounts.ForProducts(ctx, ids, activeAt)
	if err != nil {
		return nil, err
	}

	dtos := make([]*contracts.ProductDTO, len(rows))
	for i, data := range rows {
		dtos[i] = ToDTO(dataToDomain(data), byProduct[data.ProductID], now)
	}
	return dtos, nil
}

// ToDTO renders a product with its discounts. The effective price uses the
// first discount active at now.
func ToDTO(p *domain.Product, discounts []*discountdomain.Discount, now time.Time) *contracts.ProductDTO {
	embedded := make([]*discountcontracts.DiscountDTO, len(discounts))
	for i, d := range discounts {
		embedded[i] = discountcontracts.ToDTO(d)
	}

	images := p.Images()
	if images == nil {
		images = []string{}
	}

	return &contracts.ProductDTO{
		ID:             p.ID(),
		Name:           p.Name(),
		Description:    p.Description(),
		Price:          p.Price().Float64(),
		EffectivePrice: discountdomain.EffectivePrice(p.Price(), discounts, now).Float64(),
		Stock:          p.Stock(),
		Category:       p.Category(),
		Barcode:        p.Barcode(),
		Images:         images,
		CreatedAt:      p.CreatedAt(),
		UpdatedAt:      p.UpdatedAt(),
		Discounts:      embedded,
	}
}
