package adjust_stock

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storeadmin-service/internal/app/inventory/domain"
	productdomain "github.com/light-bringer/storeadmin-service/internal/app/product/domain"
	"github.com/light-bringer/storeadmin-service/internal/pkg/logging"
	"github.com/light-bringer/storeadmin-service/tests/testutil/fakes"
)

func TestAdjustStock_WritesLevelAndLedger(t *testing.T) {
	store := fakes.NewStore()
	store.SeedProduct("p-1", "Coffee", "1.00", 10)
	var logs bytes.Buffer
	interactor := NewInteractor(store.Products, store.History, store.Runner, logging.NewWithWriter(&logs, "info"))

	err := interactor.Execute(context.Background(), &Request{ProductID: "p-1", NewStock: 4, Reason: "Stocktake"})
	require.NoError(t, err)

	assert.Equal(t, int64(4), store.Products.Stock("p-1"))
	assert.Equal(t, []domain.Movement{{ProductID: "p-1", PreviousStock: 10, NewStock: 4, Reason: "Stocktake"}}, store.History.Entries())
	assert.Contains(t, logs.String(), `"msg":"stock adjusted"`)
}

func TestAdjustStock_DefaultReason(t *testing.T) {
	store := fakes.NewStore()
	store.SeedProduct("p-1", "Coffee", "1.00", 10)
	interactor := NewInteractor(store.Products, store.History, store.Runner, logging.Discard())

	require.NoError(t, interactor.Execute(context.Background(), &Request{ProductID: "p-1", NewStock: 12}))

	entries := store.History.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, domain.DefaultAdjustReason, entries[0].Reason)
}

func TestAdjustStock_SameValueStillRecorded(t *testing.T) {
	store := fakes.NewStore()
	store.SeedProduct("p-1", "Coffee", "1.00", 7)
	interactor := NewInteractor(store.Products, store.History, store.Runner, logging.Discard())

	require.NoError(t, interactor.Execute(context.Background(), &Request{ProductID: "p-1", NewStock: 7}))

	assert.Len(t, store.History.Entries(), 1)
}

func TestAdjustStock_Negative(t *testing.T) {
	store := fakes.NewStore()
	store.SeedProduct("p-1", "Coffee", "1.00", 7)
	interactor := NewInteractor(store.Products, store.History, store.Runner, logging.Discard())

	err := interactor.Execute(context.Background(), &Request{ProductID: "p-1", NewStock: -1})

	assert.ErrorIs(t, err, domain.ErrNegativeStock)
	assert.Zero(t, store.Runner.Attempts)
	assert.Equal(t, int64(7), store.Products.Stock("p-1"))
}

func TestAdjustStock_UnknownProduct(t *testing.T) {
	store := fakes.NewStore()
	interactor := NewInteractor(store.Products, store.History, store.Runner, logging.Discard())

	err := interactor.Execute(context.Background(), &Request{ProductID: "ghost", NewStock: 1})

	assert.ErrorIs(t, err, productdomain.ErrProductNotFound)
	assert.Empty(t, store.History.Entries())
}
