package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/storeadmin-service/internal/app/inventory/contracts"
	"github.com/light-bringer/storeadmin-service/internal/models/m_inventory_history"
	"github.com/light-bringer/storeadmin-service/internal/models/m_product"
	"github.com/light-bringer/storeadmin-service/internal/pkg/query"
)

// ReadModelImpl implements ReadModel for Spanner.
type ReadModelImpl struct {
	client *spanner.Client
}

// NewReadModel creates a new ReadModel implementation.
func NewReadModel(client *spanner.Client) contracts.ReadModel {
	return &ReadModelImpl{client: client}
}

// ListStock returns every product's stock ordered by name.
func (rm *ReadModelImpl) ListStock(ctx context.Context) ([]*contracts.StockDTO, error) {
	stmt := query.From(m_product.TableName).
		Select(m_product.ProductID, m_product.Name, m_product.Stock, m_product.Category).
		OrderBy(m_product.Name, query.Asc).
		Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	out := make([]*contracts.StockDTO, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate stock: %w", err)
		}

		var (
			dto      contracts.StockDTO
			category spanner.NullString
		)
		if err := row.Columns(&dto.ID, &dto.Name, &dto.Stock, &category); err != nil {
			return nil, fmt.Errorf("failed to parse stock row: %w", err)
		}
		if category.Valid {
			c := category.StringVal
			dto.Category = &c
		}
		out = append(out, &dto)
	}
	return out, nil
}

// ListHistory returns a product's ledger rows, newest first.
func (rm *ReadModelImpl) ListHistory(ctx context.Context, productID string, limit int64) ([]*contracts.HistoryDTO, error) {
	stmt := query.From(m_inventory_history.TableName).
		Select(m_inventory_history.Columns()...).
		Where(query.Eq(m_inventory_history.ProductID, productID)).
		OrderBy(m_inventory_history.CreatedAt, query.Desc).
		OrderBy(m_inventory_history.HistoryID, query.Asc).
		Limit(limit).
		Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	out := make([]*contracts.HistoryDTO, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate inventory history: %w", err)
		}

		var data m_inventory_history.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse inventory history: %w", err)
		}
		dto := &contracts.HistoryDTO{
			ID:            data.HistoryID,
			ProductID:     data.ProductID,
			PreviousStock: data.PreviousStock,
			NewStock:      data.NewStock,
			CreatedAt:     data.CreatedAt,
		}
		if data.ChangeReason.Valid {
			reason := data.ChangeReason.StringVal
			dto.ChangeReason = &reason
		}
		out = append(out, dto)
	}
	return out, nil
}
