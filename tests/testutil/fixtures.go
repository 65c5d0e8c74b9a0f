package testutil

import (
	"context"
	"math/big"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storeadmin-service/internal/models/m_discount"
	"github.com/light-bringer/storeadmin-service/internal/models/m_product"
)

// CreateTestProduct inserts a product row directly. price is a decimal
// string such as "12.50".
func CreateTestProduct(t *testing.T, client *spanner.Client, name, price string, stock int64) string {
	t.Helper()

	amount, ok := new(big.Rat).SetString(price)
	require.True(t, ok, "bad price %q", price)

	productID := uuid.New().String()
	now := time.Now().UTC()

	mutation := m_product.NewModel().InsertMut(&m_product.Data{
		ProductID: productID,
		Name:      name,
		Price:     *amount,
		Stock:     stock,
		Category:  spanner.NullString{StringVal: "test", Valid: true},
		Images:    []string{},
		CreatedAt: now,
		UpdatedAt: now,
	})
	_, err := client.Apply(context.Background(), []*spanner.Mutation{mutation})
	require.NoError(t, err, "failed to create test product")

	return productID
}

// CreateTestDiscount inserts an active percentage discount for productID
// covering now. An empty productID creates a global discount.
func CreateTestDiscount(t *testing.T, client *spanner.Client, productID string, percent int64) string {
	t.Helper()

	discountID := uuid.New().String()
	now := time.Now().UTC()

	mutation := m_discount.NewModel().InsertMut(&m_discount.Data{
		DiscountID:   discountID,
		ProductID:    spanner.NullString{StringVal: productID, Valid: productID != ""},
		DiscountType: "percentage",
		Value:        *big.NewRat(percent, 1),
		StartDate:    now.Add(-time.Hour),
		EndDate:      now.Add(24 * time.Hour),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	_, err := client.Apply(context.Background(), []*spanner.Mutation{mutation})
	require.NoError(t, err, "failed to create test discount")

	return discountID
}
