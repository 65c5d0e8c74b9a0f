package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/storeadmin-service/internal/app/discount/contracts"
	"github.com/light-bringer/storeadmin-service/internal/app/discount/domain"
	"github.com/light-bringer/storeadmin-service/internal/models/m_discount"
	"github.com/light-bringer/storeadmin-service/internal/pkg/committer"
	"github.com/light-bringer/storeadmin-service/internal/pkg/money"
)

// DiscountRepo implements DiscountRepository for Spanner.
type DiscountRepo struct {
	model *m_discount.Model
}

// NewDiscountRepo creates a new DiscountRepo.
func NewDiscountRepo() contracts.DiscountRepository {
	return &DiscountRepo{model: m_discount.NewModel()}
}

func (r *DiscountRepo) InsertMut(d *domain.Discount) *spanner.Mutation {
	return r.model.InsertMut(domainToData(d))
}

func (r *DiscountRepo) UpdateMut(d *domain.Discount) *spanner.Mutation {
	return r.model.UpdateMut(domainToData(d))
}

func (r *DiscountRepo) DeleteMut(discountID string) *spanner.Mutation {
	return r.model.DeleteMut(discountID)
}

// GetByID loads a discount.
func (r *DiscountRepo) GetByID(ctx context.Context, rd committer.Reader, discountID string) (*domain.Discount, error) {
	row, err := rd.ReadRow(ctx, m_discount.TableName, spanner.Key{discountID}, m_discount.Columns())
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrDiscountNotFound
		}
		return nil, fmt.Errorf("failed to read discount: %w", err)
	}

	var data m_discount.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse discount: %w", err)
	}
	return dataToDomain(&data), nil
}

func domainToData(d *domain.Discount) *m_discount.Data {
	terms := d.Terms()
	data := &m_discount.Data{
		DiscountID:   d.ID(),
		DiscountType: string(terms.Type),
		StartDate:    terms.StartDate,
		EndDate:      terms.EndDate,
		IsActive:     terms.IsActive,
		CreatedAt:    d.CreatedAt(),
		UpdatedAt:    d.UpdatedAt(),
	}
	if pid := d.ProductID(); pid != nil {
		data.ProductID = spanner.NullString{StringVal: *pid, Valid: true}
	}
	data.Value.Set(money.FromDecimal(terms.Value).Rat())
	return data
}

func dataToDomain(data *m_discount.Data) *domain.Discount {
	var productID *string
	if data.ProductID.Valid {
		id := data.ProductID.StringVal
		productID = &id
	}
	return domain.ReconstructDiscount(data.DiscountID, productID, domain.Terms{
		Type:      domain.Type(data.DiscountType),
		Value:     decimal.NewFromBigRat(&data.Value, money.NumericScale),
		StartDate: data.StartDate,
		EndDate:   data.EndDate,
		IsActive:  data.IsActive,
	}, data.CreatedAt, data.UpdatedAt)
}
