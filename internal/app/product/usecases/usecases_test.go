package usecases_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderdomain "github.com/light-bringer/storeadmin-service/internal/app/order/domain"
	"github.com/light-bringer/storeadmin-service/internal/app/product/domain"
	"github.com/light-bringer/storeadmin-service/internal/app/product/usecases/create_product"
	"github.com/light-bringer/storeadmin-service/internal/app/product/usecases/delete_product"
	"github.com/light-bringer/storeadmin-service/internal/app/product/usecases/patch_product"
	"github.com/light-bringer/storeadmin-service/internal/app/product/usecases/replace_product"
	"github.com/light-bringer/storeadmin-service/internal/pkg/clock"
	"github.com/light-bringer/storeadmin-service/internal/pkg/committer"
	"github.com/light-bringer/storeadmin-service/internal/pkg/logging"
	"github.com/light-bringer/storeadmin-service/internal/pkg/money"
	"github.com/light-bringer/storeadmin-service/tests/testutil/fakes"
)

func ptr[T any](v T) *T { return &v }

func TestCreateProduct(t *testing.T) {
	store := fakes.NewStore()
	uc := create_product.NewInteractor(store.Products, store.Runner, clock.NewMockClock(fakes.FixedTime))

	id, err := uc.Execute(context.Background(), &create_product.Request{Attributes: domain.Attributes{
		Name:    "Coffee",
		Price:   money.FromFloat(4.5),
		Stock:   12,
		Barcode: ptr("4006381333931"),
		Images:  []string{"/uploads/a.jpg"},
	}})
	require.NoError(t, err)

	attrs, ok := store.Products.Attributes(id)
	require.True(t, ok)
	assert.Equal(t, "Coffee", attrs.Name)
	assert.Equal(t, int64(12), attrs.Stock)
	assert.Equal(t, "4006381333931", *attrs.Barcode)
}

func TestCreateProduct_Validation(t *testing.T) {
	store := fakes.NewStore()
	uc := create_product.NewInteractor(store.Products, store.Runner, clock.NewMockClock(fakes.FixedTime))

	_, err := uc.Execute(context.Background(), &create_product.Request{Attributes: domain.Attributes{Name: " "}})
	assert.ErrorIs(t, err, domain.ErrEmptyName)

	_, err = uc.Execute(context.Background(), &create_product.Request{Attributes: domain.Attributes{Name: "X", Price: money.FromInt(-1)}})
	assert.ErrorIs(t, err, domain.ErrNegativePrice)

	_, err = uc.Execute(context.Background(), &create_product.Request{Attributes: domain.Attributes{Name: "X", Stock: -1}})
	assert.ErrorIs(t, err, domain.ErrNegativeStock)
}

func TestCreateProduct_DuplicateBarcode(t *testing.T) {
	store := fakes.NewStore()
	uc := create_product.NewInteractor(store.Products, store.Runner, clock.NewMockClock(fakes.FixedTime))
	attrs := domain.Attributes{Name: "Coffee", Barcode: ptr("123")}

	_, err := uc.Execute(context.Background(), &create_product.Request{Attributes: attrs})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), &create_product.Request{Attributes: attrs})
	assert.ErrorIs(t, err, domain.ErrBarcodeTaken)
}

func TestCreateProduct_UniqueIndexRace(t *testing.T) {
	store := fakes.NewStore()
	store.Runner.CommitErr = committer.ErrDuplicateKey
	uc := create_product.NewInteractor(store.Products, store.Runner, clock.NewMockClock(fakes.FixedTime))

	_, err := uc.Execute(context.Background(), &create_product.Request{Attributes: domain.Attributes{Name: "Coffee", Barcode: ptr("123")}})
	assert.ErrorIs(t, err, domain.ErrBarcodeTaken)
}

func TestReplaceProduct(t *testing.T) {
	store := fakes.NewStore()
	store.SeedProduct("p-1", "Coffee", "4.50", 3)
	uc := replace_product.NewInteractor(store.Products, store.Runner, clock.NewMockClock(fakes.FixedTime))

	err := uc.Execute(context.Background(), &replace_product.Request{ProductID: "p-1", Attributes: domain.Attributes{
		Name:     "Espresso",
		Price:    money.FromInt(3),
		Stock:    9,
		Category: ptr("drinks"),
	}})
	require.NoError(t, err)

	attrs, _ := store.Products.Attributes("p-1")
	assert.Equal(t, "Espresso", attrs.Name)
	assert.Equal(t, int64(9), attrs.Stock)
	assert.Equal(t, "drinks", *attrs.Category)
	assert.Empty(t, store.History.Entries())
}

func TestReplaceProduct_KeepsOwnBarcode(t *testing.T) {
	store := fakes.NewStore()
	p := store.SeedProduct("p-1", "Coffee", "4.50", 3)
	require.NoError(t, p.Replace(domain.Attributes{Name: "Coffee", Barcode: ptr("123")}, fakes.FixedTime))
	store.Products.Seed(p)
	uc := replace_product.NewInteractor(store.Products, store.Runner, clock.NewMockClock(fakes.FixedTime))

	err := uc.Execute(context.Background(), &replace_product.Request{ProductID: "p-1", Attributes: domain.Attributes{Name: "Coffee 2", Barcode: ptr("123")}})
	assert.NoError(t, err)
}

func TestReplaceProduct_NotFound(t *testing.T) {
	store := fakes.NewStore()
	uc := replace_product.NewInteractor(store.Products, store.Runner, clock.NewMockClock(fakes.FixedTime))

	err := uc.Execute(context.Background(), &replace_product.Request{ProductID: "nope", Attributes: domain.Attributes{Name: "X"}})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestPatchProduct_OnlySuppliedFields(t *testing.T) {
	store := fakes.NewStore()
	store.SeedProduct("p-1", "Coffee", "4.50", 3)
	uc := patch_product.NewInteractor(store.Products, store.Runner, clock.NewMockClock(fakes.FixedTime))

	err := uc.Execute(context.Background(), &patch_product.Request{
		ProductID: "p-1",
		Price:     patch_product.Set(money.FromInt(5)),
		Category:  patch_product.Set(ptr("beans")),
	})
	require.NoError(t, err)

	attrs, _ := store.Products.Attributes("p-1")
	assert.Equal(t, "Coffee", attrs.Name)
	assert.Equal(t, int64(3), attrs.Stock)
	assert.Equal(t, "5.00", attrs.Price.String())
	assert.Equal(t, "beans", *attrs.Category)
}

func TestPatchProduct_ClearsNullable(t *testing.T) {
	store := fakes.NewStore()
	p := store.SeedProduct("p-1", "Coffee", "4.50", 3)
	p.SetCategory(ptr("beans"), fakes.FixedTime)
	store.Products.Seed(p)
	uc := patch_product.NewInteractor(store.Products, store.Runner, clock.NewMockClock(fakes.FixedTime))

	err := uc.Execute(context.Background(), &patch_product.Request{ProductID: "p-1", Category: patch_product.Set[*string](nil)})
	require.NoError(t, err)

	attrs, _ := store.Products.Attributes("p-1")
	assert.Nil(t, attrs.Category)
}

func TestPatchProduct_Errors(t *testing.T) {
	store := fakes.NewStore()
	store.SeedProduct("p-1", "Coffee", "4.50", 3)
	store.SeedProduct("p-2", "Tea", "1.00", 3)
	p2, _ := store.Products.GetByID(context.Background(), nil, "p-2")
	p2.SetBarcode(ptr("999"), fakes.FixedTime)
	store.Products.Seed(p2)
	uc := patch_product.NewInteractor(store.Products, store.Runner, clock.NewMockClock(fakes.FixedTime))
	ctx := context.Background()

	err := uc.Execute(ctx, &patch_product.Request{ProductID: "p-1"})
	assert.ErrorIs(t, err, domain.ErrNothingToUpdate)

	err = uc.Execute(ctx, &patch_product.Request{ProductID: "p-1", Stock: patch_product.Set(int64(-2))})
	assert.ErrorIs(t, err, domain.ErrNegativeStock)

	err = uc.Execute(ctx, &patch_product.Request{ProductID: "p-1", Name: patch_product.Set("")})
	assert.ErrorIs(t, err, domain.ErrEmptyName)

	err = uc.Execute(ctx, &patch_product.Request{ProductID: "p-1", Barcode: patch_product.Set(ptr("999"))})
	assert.ErrorIs(t, err, domain.ErrBarcodeTaken)

	err = uc.Execute(ctx, &patch_product.Request{ProductID: "ghost", Name: patch_product.Set("X")})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestDeleteProduct(t *testing.T) {
	store := fakes.NewStore()
	store.SeedProduct("p-1", "Coffee", "4.50", 3)
	uc := delete_product.NewInteractor(store.Products, store.Runner, logging.Discard())

	require.NoError(t, uc.Execute(context.Background(), &delete_product.Request{ProductID: "p-1"}))
	assert.False(t, store.Products.Exists("p-1"))

	err := uc.Execute(context.Background(), &delete_product.Request{ProductID: "p-1"})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestDeleteProduct_ReferencedByOrder(t *testing.T) {
	store := fakes.NewStore()
	store.SeedProduct("p-1", "Coffee", "4.50", 3)
	order := orderdomain.NewOrder("o-1", "ORD-1-ABCDEFGHJ", fakes.FixedTime)
	require.NoError(t, order.AddItem(orderdomain.Item{ID: "i-1", ProductID: "p-1", Quantity: 1, UnitPrice: money.FromInt(1)}))
	store.Orders.Seed(order)
	uc := delete_product.NewInteractor(store.Products, store.Runner, logging.Discard())

	err := uc.Execute(context.Background(), &delete_product.Request{ProductID: "p-1"})

	assert.ErrorIs(t, err, domain.ErrProductHasOrders)
	assert.True(t, store.Products.Exists("p-1"))
}

func TestDeleteProduct_ForeignKeyAtCommit(t *testing.T) {
	store := fakes.NewStore()
	store.SeedProduct("p-1", "Coffee", "4.50", 3)
	store.Runner.CommitErr = committer.ErrReferenceViolation
	uc := delete_product.NewInteractor(store.Products, store.Runner, logging.Discard())

	err := uc.Execute(context.Background(), &delete_product.Request{ProductID: "p-1"})
	assert.ErrorIs(t, err, domain.ErrProductHasOrders)
}
