package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/storeadmin-service/internal/app/product/contracts"
	"github.com/light-bringer/storeadmin-service/internal/app/product/domain"
	"github.com/light-bringer/storeadmin-service/internal/models/m_order_item"
	"github.com/light-bringer/storeadmin-service/internal/models/m_product"
	"github.com/light-bringer/storeadmin-service/internal/pkg/committer"
	"github.com/light-bringer/storeadmin-service/internal/pkg/money"
	"github.com/light-bringer/storeadmin-service/internal/pkg/query"
)

// ProductRepo implements ProductRepository for Spanner.
type ProductRepo struct {
	model *m_product.Model
}

// NewProductRepo creates a new ProductRepo.
func NewProductRepo() contracts.ProductRepository {
	return &ProductRepo{model: m_product.NewModel()}
}

// InsertMut creates a mutation for inserting a new product.
func (r *ProductRepo) InsertMut(product *domain.Product) *spanner.Mutation {
	return r.model.InsertMut(domainToData(product))
}

// UpdateMut writes the dirty fields of product.
func (r *ProductRepo) UpdateMut(product *domain.Product) *spanner.Mutation {
	changes := product.Changes()
	if !changes.HasChanges() {
		return nil
	}

	set := query.NewUpdateSet(m_product.TableName)
	for _, field := range changes.DirtyFields() {
		switch field {
		case domain.FieldName:
			set.Set(m_product.Name, product.Name())
		case domain.FieldDescription:
			set.Set(m_product.Description, nullString(product.Description()))
		case domain.FieldPrice:
			set.Set(m_product.Price, product.Price().Rat())
		case domain.FieldStock:
			set.Set(m_product.Stock, product.Stock())
		case domain.FieldCategory:
			set.Set(m_product.Category, nullString(product.Category()))
		case domain.FieldBarcode:
			set.Set(m_product.Barcode, nullString(product.Barcode()))
		case domain.FieldImages:
			set.Set(m_product.Images, product.Images())
		}
	}
	return r.model.UpdateMut(product.ID(), set)
}

// StockMut overwrites one product's stock level.
func (r *ProductRepo) StockMut(productID string, stock int64) *spanner.Mutation {
	return r.model.StockMut(productID, stock)
}

// DeleteMut deletes a product.
func (r *ProductRepo) DeleteMut(productID string) *spanner.Mutation {
	return r.model.DeleteMut(productID)
}

// GetByID loads a product aggregate.
func (r *ProductRepo) GetByID(ctx context.Context, rd committer.Reader, productID string) (*domain.Product, error) {
	row, err := rd.ReadRow(ctx, m_product.TableName, spanner.Key{productID}, m_product.Columns())
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
	return dataToDomain(&data), nil
}

// BarcodeOwner looks up the product currently holding barcode.
func (r *ProductRepo) BarcodeOwner(ctx context.Context, rd committer.Reader, barcode string) (string, bool, error) {
	stmt := query.From(m_product.TableName).
		Select(m_product.ProductID).
		Where(query.Eq(m_product.Barcode, barcode)).
		Limit(1).
		Build()

	iter := rd.Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to look up barcode: %w", err)
	}
	var id string
	if err := row.Column(0, &id); err != nil {
		return "", false, fmt.Errorf("failed to parse product id: %w", err)
	}
	return id, true, nil
}

// HasOrders reports whether any order line references the product.
func (r *ProductRepo) HasOrders(ctx context.Context, rd committer.Reader, productID string) (bool, error) {
	stmt := query.From(m_order_item.TableName).
		Select(m_order_item.OrderItemID).
		Where(query.Eq(m_order_item.ProductID, productID)).
		Limit(1).
		Build()

	iter := rd.Query(ctx, stmt)
	defer iter.Stop()

	_, err := iter.Next()
	if err == iterator.Done {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check product orders: %w", err)
	}
	return true, nil
}

func domainToData(product *domain.Product) *m_product.Data {
	data := &m_product.Data{
		ProductID:   product.ID(),
		Name:        product.Name(),
		Description: nullString(product.Description()),
		Stock:       product.Stock(),
		Category:    nullString(product.Category()),
		Barcode:     nullString(product.Barcode()),
		Images:      product.Images(),
		CreatedAt:   product.CreatedAt(),
		UpdatedAt:   product.UpdatedAt(),
	}
	data.Price.Set(product.Price().Rat())
	return data
}

func dataToDomain(data *m_product.Data) *domain.Product {
	return domain.ReconstructProduct(data.ProductID, domain.Attributes{
		Name:        data.Name,
		Description: stringPtr(data.Description),
		Price:       money.FromRat(&data.Price),
		Stock:       data.Stock,
		Category:    stringPtr(data.Category),
		Barcode:     stringPtr(data.Barcode),
		Images:      data.Images,
	}, data.CreatedAt, data.UpdatedAt)
}

func nullString(s *string) spanner.NullString {
	if s == nil {
		return spanner.NullString{}
	}
	return spanner.NullString{StringVal: *s, Valid: true}
}

func stringPtr(ns spanner.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.StringVal
	return &s
}
