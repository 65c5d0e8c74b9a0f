package repo

import (
	"cloud.google.com/go/spanner"
	"github.com/google/uuid"

	"github.com/light-bringer/storeadmin-service/internal/app/inventory/contracts"
	"github.com/light-bringer/storeadmin-service/internal/app/inventory/domain"
	"github.com/light-bringer/storeadmin-service/internal/models/m_inventory_history"
)

// HistoryRepo implements HistoryRepository for Spanner.
type HistoryRepo struct {
	model *m_inventory_history.Model
}

// NewHistoryRepo creates a new HistoryRepo.
func NewHistoryRepo() contracts.HistoryRepository {
	return &HistoryRepo{model: m_inventory_history.NewModel()}
}

// InsertMut appends a ledger row for movement.
func (r *HistoryRepo) InsertMut(movement domain.Movement) *spanner.Mutation {
	data := &m_inventory_history.Data{
		HistoryID:     uuid.New().String(),
		ProductID:     movement.ProductID,
		PreviousStock: movement.PreviousStock,
		NewStock:      movement.NewStock,
	}
	if movement.Reason != "" {
		data.ChangeReason = spanner.NullString{StringVal: movement.Reason, Valid: true}
	}
	return r.model.InsertMut(data)
}
