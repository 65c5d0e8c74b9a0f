package usecases_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storeadmin-service/internal/app/discount/domain"
	"github.com/light-bringer/storeadmin-service/internal/app/discount/usecases/create_discount"
	"github.com/light-bringer/storeadmin-service/internal/app/discount/usecases/delete_discount"
	"github.com/light-bringer/storeadmin-service/internal/app/discount/usecases/update_discount"
	"github.com/light-bringer/storeadmin-service/internal/pkg/clock"
	"github.com/light-bringer/storeadmin-service/tests/testutil/fakes"
)

func terms(kind domain.Type, value int64) domain.Terms {
	return domain.Terms{
		Type:      kind,
		Value:     decimal.NewFromInt(value),
		StartDate: fakes.FixedTime.Add(-24 * time.Hour),
		EndDate:   fakes.FixedTime.Add(24 * time.Hour),
	}
}

func ptr[T any](v T) *T { return &v }

func TestCreateDiscount_ForProduct(t *testing.T) {
	store := fakes.NewStore()
	store.SeedProduct("p-1", "Coffee", "10.00", 1)
	uc := create_discount.NewInteractor(store.Discounts, store.Products, store.Runner, clock.NewMockClock(fakes.FixedTime))

	id, err := uc.Execute(context.Background(), &create_discount.Request{
		ProductID: ptr("p-1"),
		Terms:     terms(domain.TypePercentage, 20),
	})
	require.NoError(t, err)

	d, ok := store.Discounts.Get(id)
	require.True(t, ok)
	assert.Equal(t, "p-1", *d.ProductID())
	assert.True(t, d.Terms().IsActive)
}

func TestCreateDiscount_GlobalAndInactive(t *testing.T) {
	store := fakes.NewStore()
	uc := create_discount.NewInteractor(store.Discounts, store.Products, store.Runner, clock.NewMockClock(fakes.FixedTime))

	id, err := uc.Execute(context.Background(), &create_discount.Request{
		Terms:    terms(domain.TypeFixed, 5),
		IsActive: ptr(false),
	})
	require.NoError(t, err)

	d, _ := store.Discounts.Get(id)
	assert.Nil(t, d.ProductID())
	assert.False(t, d.Terms().IsActive)
}

func TestCreateDiscount_UnknownProduct(t *testing.T) {
	store := fakes.NewStore()
	uc := create_discount.NewInteractor(store.Discounts, store.Products, store.Runner, clock.NewMockClock(fakes.FixedTime))

	_, err := uc.Execute(context.Background(), &create_discount.Request{
		ProductID: ptr("ghost"),
		Terms:     terms(domain.TypeFixed, 5),
	})

	assert.ErrorIs(t, err, domain.ErrDiscountProductGone)
	assert.Zero(t, store.Discounts.Len())
}

func TestCreateDiscount_InvalidTerms(t *testing.T) {
	store := fakes.NewStore()
	uc := create_discount.NewInteractor(store.Discounts, store.Products, store.Runner, clock.NewMockClock(fakes.FixedTime))

	bad := terms(domain.TypeFixed, 5)
	bad.EndDate = bad.StartDate.Add(-time.Hour)
	_, err := uc.Execute(context.Background(), &create_discount.Request{Terms: bad})
	assert.ErrorIs(t, err, domain.ErrInvalidDiscountPeriod)

	_, err = uc.Execute(context.Background(), &create_discount.Request{Terms: terms("bogus", 5)})
	assert.ErrorIs(t, err, domain.ErrInvalidDiscountType)
}

func TestUpdateDiscount(t *testing.T) {
	store := fakes.NewStore()
	existing, err := domain.NewDiscount("d-1", nil, terms(domain.TypeFixed, 5), fakes.FixedTime)
	require.NoError(t, err)
	store.Discounts.Seed(existing)

	clk := clock.NewMockClock(fakes.FixedTime.Add(time.Hour))
	uc := update_discount.NewInteractor(store.Discounts, store.Runner, clk)

	next := terms(domain.TypePercentage, 15)
	next.IsActive = true
	require.NoError(t, uc.Execute(context.Background(), &update_discount.Request{DiscountID: "d-1", Terms: next}))

	d, _ := store.Discounts.Get("d-1")
	assert.Equal(t, domain.TypePercentage, d.Terms().Type)
	assert.True(t, d.Terms().Value.Equal(decimal.NewFromInt(15)))
	assert.Equal(t, clk.Now(), d.UpdatedAt())

	err = uc.Execute(context.Background(), &update_discount.Request{DiscountID: "missing", Terms: next})
	assert.ErrorIs(t, err, domain.ErrDiscountNotFound)
}

func TestDeleteDiscount(t *testing.T) {
	store := fakes.NewStore()
	existing, err := domain.NewDiscount("d-1", nil, terms(domain.TypeFixed, 5), fakes.FixedTime)
	require.NoError(t, err)
	store.Discounts.Seed(existing)

	uc := delete_discount.NewInteractor(store.Discounts, store.Runner)

	require.NoError(t, uc.Execute(context.Background(), &delete_discount.Request{DiscountID: "d-1"}))
	assert.Zero(t, store.Discounts.Len())

	err = uc.Execute(context.Background(), &delete_discount.Request{DiscountID: "d-1"})
	assert.ErrorIs(t, err, domain.ErrDiscountNotFound)
}
