//go:build integration

package e2e

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storeadmin-service/internal/app/discount/domain"
	"github.com/light-bringer/storeadmin-service/internal/app/discount/queries/get_discount"
	"github.com/light-bringer/storeadmin-service/internal/app/discount/usecases/create_discount"
	"github.com/light-bringer/storeadmin-service/internal/app/discount/usecases/delete_discount"
	"github.com/light-bringer/storeadmin-service/internal/app/product/queries/get_product"
	"github.com/light-bringer/storeadmin-service/tests/testutil"
)

func activeTerms(kind domain.Type, value int64) domain.Terms {
	now := time.Now().UTC()
	return domain.Terms{
		Type:      kind,
		Value:     decimal.NewFromInt(value),
		StartDate: now.Add(-time.Hour),
		EndDate:   now.Add(24 * time.Hour),
	}
}

func TestDiscount_AppliesToProductPrice(t *testing.T) {
	suite, cleanup := setupTest(t)
	defer cleanup()

	productID := testutil.CreateTestProduct(t, suite.Client, "Coffee", "20.00", 5)

	discountID, err := suite.CreateDiscount.Execute(ctx(), &create_discount.Request{
		ProductID: &productID,
		Terms:     activeTerms(domain.TypePercentage, 25),
	})
	require.NoError(t, err)

	product, err := suite.GetProduct.Execute(ctx(), &get_product.Request{ProductID: productID})
	require.NoError(t, err)
	assert.InDelta(t, 20.0, product.Price, 1e-9)
	assert.InDelta(t, 15.0, product.EffectivePrice, 1e-9)
	require.Len(t, product.Discounts, 1)
	assert.Equal(t, discountID, product.Discounts[0].ID)

	discount, err := suite.GetDiscount.Execute(ctx(), &get_discount.Request{DiscountID: discountID})
	require.NoError(t, err)
	require.NotNil(t, discount.Product)
	assert.Equal(t, "Coffee", discount.Product.Name)
	assert.True(t, discount.IsActive)
}

func TestDiscount_GlobalIsListedAsActive(t *testing.T) {
	suite, cleanup := setupTest(t)
	defer cleanup()

	_, err := suite.CreateDiscount.Execute(ctx(), &create_discount.Request{Terms: activeTerms(domain.TypeFixed, 2)})
	require.NoError(t, err)

	active, err := suite.ActiveDiscounts.Execute(ctx())
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Nil(t, active[0].ProductID)
}

func TestDiscount_UnknownProductRejected(t *testing.T) {
	suite, cleanup := setupTest(t)
	defer cleanup()

	missing := "missing"
	_, err := suite.CreateDiscount.Execute(ctx(), &create_discount.Request{
		ProductID: &missing,
		Terms:     activeTerms(domain.TypeFixed, 1),
	})
	assert.ErrorIs(t, err, domain.ErrDiscountProductGone)
	testutil.AssertRowCount(t, suite.Client, "discounts", 0)
}

func TestDiscount_Delete(t *testing.T) {
	suite, cleanup := setupTest(t)
	defer cleanup()

	productID := testutil.CreateTestProduct(t, suite.Client, "Coffee", "20.00", 5)
	discountID := testutil.CreateTestDiscount(t, suite.Client, productID, 10)

	require.NoError(t, suite.DeleteDiscount.Execute(ctx(), &delete_discount.Request{DiscountID: discountID}))

	_, err := suite.GetDiscount.Execute(ctx(), &get_discount.Request{DiscountID: discountID})
	assert.ErrorIs(t, err, domain.ErrDiscountNotFound)

	err = suite.DeleteDiscount.Execute(ctx(), &delete_discount.Request{DiscountID: discountID})
	assert.ErrorIs(t, err, domain.ErrDiscountNotFound)
}
