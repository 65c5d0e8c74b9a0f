//go:build integration

package e2e

import (
	"context"
	"testing"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/storeadmin-service/internal/app/discount/queries/get_discount"
	"github.com/light-bringer/storeadmin-service/internal/app/discount/queries/list_active_discounts"
	discountrepo "github.com/light-bringer/storeadmin-service/internal/app/discount/repo"
	"github.com/light-bringer/storeadmin-service/internal/app/discount/usecases/create_discount"
	"github.com/light-bringer/storeadmin-service/internal/app/discount/usecases/delete_discount"
	"github.com/light-bringer/storeadmin-service/internal/app/inventory/queries/list_history"
	inventoryrepo "github.com/light-bringer/storeadmin-service/internal/app/inventory/repo"
	"github.com/light-bringer/storeadmin-service/internal/app/inventory/usecases/adjust_stock"
	orderdomain "github.com/light-bringer/storeadmin-service/internal/app/order/domain"
	"github.com/light-bringer/storeadmin-service/internal/app/order/queries/get_order"
	orderrepo "github.com/light-bringer/storeadmin-service/internal/app/order/repo"
	"github.com/light-bringer/storeadmin-service/internal/app/order/usecases/place_order"
	"github.com/light-bringer/storeadmin-service/internal/app/order/usecases/replace_order_items"
	"github.com/light-bringer/storeadmin-service/internal/app/product/queries/find_by_barcode"
	"github.com/light-bringer/storeadmin-service/internal/app/product/queries/get_product"
	productrepo "github.com/light-bringer/storeadmin-service/internal/app/product/repo"
	"github.com/light-bringer/storeadmin-service/internal/app/product/usecases/create_product"
	"github.com/light-bringer/storeadmin-service/internal/app/product/usecases/delete_product"
	"github.com/light-bringer/storeadmin-service/internal/app/product/usecases/patch_product"
	"github.com/light-bringer/storeadmin-service/internal/pkg/clock"
	"github.com/light-bringer/storeadmin-service/internal/pkg/committer"
	"github.com/light-bringer/storeadmin-service/internal/pkg/logging"
	"github.com/light-bringer/storeadmin-service/tests/testutil"
)

// Services holds the use cases and queries exercised end to end.
type Services struct {
	// Commands
	CreateProduct  *create_product.Interactor
	PatchProduct   *patch_product.Interactor
	DeleteProduct  *delete_product.Interactor
	PlaceOrder     *place_order.Interactor
	ReplaceItems   *replace_order_items.Interactor
	AdjustStock    *adjust_stock.Interactor
	CreateDiscount *create_discount.Interactor
	DeleteDiscount *delete_discount.Interactor

	// Queries
	GetProduct      *get_product.Query
	FindByBarcode   *find_by_barcode.Query
	GetOrder        *get_order.Query
	ListHistory     *list_history.Query
	GetDiscount     *get_discount.Query
	ActiveDiscounts *list_active_discounts.Query

	// Infrastructure
	Clock  clock.Clock
	Client *spanner.Client
}

// setupTest wires every service against a clean emulator database.
func setupTest(t *testing.T) (*Services, func()) {
	t.Helper()

	client, cleanup := testutil.SetupSpannerTest(t)

	clk := clock.NewRealClock()
	comm := committer.NewCommitter(client)
	logger := logging.Discard()

	productRepo := productrepo.NewProductRepo()
	discountRepo := discountrepo.NewDiscountRepo()
	historyRepo := inventoryrepo.NewHistoryRepo()
	orderRepo := orderrepo.NewOrderRepo()

	discountReadModel := discountrepo.NewReadModel(client)
	productReadModel := productrepo.NewReadModel(client, discountReadModel, clk)
	orderReadModel := orderrepo.NewReadModel(client)
	inventoryReadModel := inventoryrepo.NewReadModel(client)

	services := &Services{
		CreateProduct:  create_product.NewInteractor(productRepo, comm, clk),
		PatchProduct:   patch_product.NewInteractor(productRepo, comm, clk),
		DeleteProduct:  delete_product.NewInteractor(productRepo, comm, logger),
		PlaceOrder:     place_order.NewInteractor(orderRepo, productRepo, historyRepo, comm, orderdomain.RandomNumbers{}, clk, logger),
		ReplaceItems:   replace_order_items.NewInteractor(orderRepo, productRepo, historyRepo, comm, logger),
		AdjustStock:    adjust_stock.NewInteractor(productRepo, historyRepo, comm, logger),
		CreateDiscount: create_discount.NewInteractor(discountRepo, productRepo, comm, clk),
		DeleteDiscount: delete_discount.NewInteractor(discountRepo, comm),

		GetProduct:      get_product.NewQuery(productReadModel),
		FindByBarcode:   find_by_barcode.NewQuery(productReadModel),
		GetOrder:        get_order.NewQuery(orderReadModel),
		ListHistory:     list_history.NewQuery(inventoryReadModel),
		GetDiscount:     get_discount.NewQuery(discountReadModel),
		ActiveDiscounts: list_active_discounts.NewQuery(discountReadModel, clk),

		Clock:  clk,
		Client: client,
	}
	return services, cleanup
}

// ctx returns a context for testing.
func ctx() context.Context {
	return context.Background()
}
