package repo

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/storeadmin-service/internal/app/discount/contracts"
	"github.com/light-bringer/storeadmin-service/internal/app/discount/domain"
	"github.com/light-bringer/storeadmin-service/internal/models/m_discount"
	"github.com/light-bringer/storeadmin-service/internal/pkg/query"
)

const listWithProductSQL = `SELECT d.discount_id, d.product_id, d.discount_type, d.value,
	d.start_date, d.end_date, d.is_active, d.created_at, d.updated_at,
	p.name AS product_name
FROM discounts d
LEFT JOIN products p ON p.product_id = d.product_id`

// discountRow is a discounts row joined with its product's name.
type discountRow struct {
	m_discount.Data
	ProductName spanner.NullString
}

// ReadModelImpl implements ReadModel for Spanner.
type ReadModelImpl struct {
	client *spanner.Client
}

// NewReadModel creates a new ReadModel implementation.
func NewReadModel(client *spanner.Client) contracts.ReadModel {
	return &ReadModelImpl{client: client}
}

// ListDiscounts returns every discount with its product summary.
func (rm *ReadModelImpl) ListDiscounts(ctx context.Context) ([]*contracts.DiscountDTO, error) {
	stmt := spanner.Statement{SQL: listWithProductSQL + "\nORDER BY d.created_at DESC"}
	return rm.queryWithProduct(ctx, stmt)
}

// ListActive returns the discounts active at now.
func (rm *ReadModelImpl) ListActive(ctx context.Context, now time.Time) ([]*contracts.DiscountDTO, error) {
	stmt := spanner.Statement{
		SQL: listWithProductSQL + `
WHERE d.is_active = TRUE AND d.start_date <= @now AND d.end_date >= @now
ORDER BY d.created_at DESC`,
		Params: map[string]interface{}{"now": now},
	}
	return rm.queryWithProduct(ctx, stmt)
}

// GetDiscount returns one discount with its product summary.
func (rm *ReadModelImpl) GetDiscount(ctx context.Context, discountID string) (*contracts.DiscountDTO, error) {
	stmt := spanner.Statement{
		SQL:    listWithProductSQL + "\nWHERE d.discount_id = @id",
		Params: map[string]interface{}{"id": discountID},
	}
	dtos, err := rm.queryWithProduct(ctx, stmt)
	if err != nil {
		return nil, err
	}
	if len(dtos) == 0 {
		return nil, domain.ErrDiscountNotFound
	}
	return dtos[0], nil
}

// ForProducts groups discounts by product id, newest first.
func (rm *ReadModelImpl) ForProducts(ctx context.Context, productIDs []string, activeAt *time.Time) (map[string][]*domain.Discount, error) {
	out := make(map[string][]*domain.Discount, len(productIDs))
	if len(productIDs) == 0 {
		return out, nil
	}

	q := query.From(m_discount.TableName).
		Select(m_discount.Columns()...).
		Where(query.In(m_discount.ProductID, productIDs))
	if activeAt != nil {
		q = q.Where(query.Eq(m_discount.IsActive, true)).
			Where(query.Lte(m_discount.StartDate, *activeAt)).
			Where(query.Gte(m_discount.EndDate, *activeAt))
	}
	stmt := q.OrderBy(m_discount.CreatedAt, query.Desc).Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate discounts: %w", err)
		}

		var data m_discount.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse discount: %w", err)
		}
		d := dataToDomain(&data)
		out[data.ProductID.StringVal] = append(out[data.ProductID.StringVal], d)
	}
	return out, nil
}

func (rm *ReadModelImpl) queryWithProduct(ctx context.Context, stmt spanner.Statement) ([]*contracts.DiscountDTO, error) {
	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	dtos := make([]*contracts.DiscountDTO, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate discounts: %w", err)
		}

		var r discountRow
		if err := row.Columns(
			&r.DiscountID, &r.ProductID, &r.DiscountType, &r.Value,
			&r.StartDate, &r.EndDate, &r.IsActive, &r.CreatedAt, &r.UpdatedAt,
			&r.ProductName,
		); err != nil {
			return nil, fmt.Errorf("failed to parse discount: %w", err)
		}

		dto := contracts.ToDTO(dataToDomain(&r.Data))
		if r.ProductID.Valid && r.ProductName.Valid {
			dto.Product = &contracts.ProductRef{ID: r.ProductID.StringVal, Name: r.ProductName.StringVal}
		}
		dtos = append(dtos, dto)
	}
	return dtos, nil
}
