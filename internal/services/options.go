package services

import (
	"context"
	"fmt"
	"log/slog"

	"cloud.google.com/go/spanner"
	"github.com/gin-gonic/gin"

	"github.com/light-bringer/storeadmin-service/internal/app/analytics/queries/get_summary"
	analyticsrepo "github.com/light-bringer/storeadmin-service/internal/app/analytics/repo"
	authrepo "github.com/light-bringer/storeadmin-service/internal/app/auth/repo"
	"github.com/light-bringer/storeadmin-service/internal/app/auth/tokens"
	"github.com/light-bringer/storeadmin-service/internal/app/auth/usecases/ensure_user"
	"github.com/light-bringer/storeadmin-service/internal/app/auth/usecases/login"
	"github.com/light-bringer/storeadmin-service/internal/app/discount/queries/get_discount"
	"github.com/light-bringer/storeadmin-service/internal/app/discount/queries/list_active_discounts"
	"github.com/light-bringer/storeadmin-service/internal/app/discount/queries/list_discounts"
	discountrepo "github.com/light-bringer/storeadmin-service/internal/app/discount/repo"
	"github.com/light-bringer/storeadmin-service/internal/app/discount/usecases/create_discount"
	"github.com/light-bringer/storeadmin-service/internal/app/discount/usecases/delete_discount"
	"github.com/light-bringer/storeadmin-service/internal/app/discount/usecases/update_discount"
	"github.com/light-bringer/storeadmin-service/internal/app/inventory/queries/list_history"
	"github.com/light-bringer/storeadmin-service/internal/app/inventory/queries/list_stock"
	inventoryrepo "github.com/light-bringer/storeadmin-service/internal/app/inventory/repo"
	"github.com/light-bringer/storeadmin-service/internal/app/inventory/usecases/adjust_stock"
	"github.com/light-bringer/storeadmin-service/internal/app/media/storage"
	orderdomain "github.com/light-bringer/storeadmin-service/internal/app/order/domain"
	"github.com/light-bringer/storeadmin-service/internal/app/order/queries/get_order"
	"github.com/light-bringer/storeadmin-service/internal/app/order/queries/list_orders"
	orderrepo "github.com/light-bringer/storeadmin-service/internal/app/order/repo"
	"github.com/light-bringer/storeadmin-service/internal/app/order/usecases/place_order"
	"github.com/light-bringer/storeadmin-service/internal/app/order/usecases/replace_order_items"
	"github.com/light-bringer/storeadmin-service/internal/app/product/queries/find_by_barcode"
	"github.com/light-bringer/storeadmin-service/internal/app/product/queries/get_product"
	"github.com/light-bringer/storeadmin-service/internal/app/product/queries/list_products"
	productrepo "github.com/light-bringer/storeadmin-service/internal/app/product/repo"
	"github.com/light-bringer/storeadmin-service/internal/app/product/usecases/create_product"
	"github.com/light-bringer/storeadmin-service/internal/app/product/usecases/delete_product"
	"github.com/light-bringer/storeadmin-service/internal/app/product/usecases/patch_product"
	"github.com/light-bringer/storeadmin-service/internal/app/product/usecases/replace_product"
	"github.com/light-bringer/storeadmin-service/internal/config"
	"github.com/light-bringer/storeadmin-service/internal/pkg/clock"
	"github.com/light-bringer/storeadmin-service/internal/pkg/committer"
	"github.com/light-bringer/storeadmin-service/internal/pkg/health"
	"github.com/light-bringer/storeadmin-service/internal/transport/grpc/admin"
	httptransport "github.com/light-bringer/storeadmin-service/internal/transport/http"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient *spanner.Client
	Router        *gin.Engine
	AdminServer   *admin.Server
	EnsureUser    *ensure_user.Interactor
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, cfg config.Config, logger *slog.Logger) (*ServiceOptions, error) {
	// 1. Initialize Spanner client
	spannerClient, err := spanner.NewClient(ctx, cfg.SpannerDatabase)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}

	// 2. Create infrastructure components
	clk := clock.NewRealClock()
	comm := committer.NewCommitter(spannerClient)
	issuer := tokens.NewIssuer(cfg.JWTSecret, cfg.SessionTTL, clk)
	images := storage.NewLocal(cfg.UploadDir, logger)
	probe := health.NewSpannerProbe(spannerClient)

	// 3. Create repositories and read models
	productRepo := productrepo.NewProductRepo()
	discountRepo := discountrepo.NewDiscountRepo()
	historyRepo := inventoryrepo.NewHistoryRepo()
	orderRepo := orderrepo.NewOrderRepo()
	userRepo := authrepo.NewUserRepo()

	discountReadModel := discountrepo.NewReadModel(spannerClient)
	productReadModel := productrepo.NewReadModel(spannerClient, discountReadModel, clk)
	orderReadModel := orderrepo.NewReadModel(spannerClient)
	inventoryReadModel := inventoryrepo.NewReadModel(spannerClient)
	analyticsReadModel := analyticsrepo.NewReadModel(spannerClient)

	// 4. Create queries
	getProductQuery := get_product.NewQuery(productReadModel)

	// 5. Create HTTP handlers
	handlers := httptransport.Handlers{
		Auth: httptransport.NewAuthHandler(
			login.NewInteractor(userRepo, comm, issuer, logger),
			logger,
		),
		Products: httptransport.NewProductHandler(
			create_product.NewInteractor(productRepo, comm, clk),
			replace_product.NewInteractor(productRepo, comm, clk),
			patch_product.NewInteractor(productRepo, comm, clk),
			delete_product.NewInteractor(productRepo, comm, logger),
			getProductQuery,
			list_products.NewQuery(productReadModel),
			find_by_barcode.NewQuery(productReadModel),
			logger,
		),
		Orders: httptransport.NewOrderHandler(
			place_order.NewInteractor(orderRepo, productRepo, historyRepo, comm, orderdomain.RandomNumbers{}, clk, logger),
			replace_order_items.NewInteractor(orderRepo, productRepo, historyRepo, comm, logger),
			get_order.NewQuery(orderReadModel),
			list_orders.NewQuery(orderReadModel),
			logger,
		),
		Inventory: httptransport.NewInventoryHandler(
			adjust_stock.NewInteractor(productRepo, historyRepo, comm, logger),
			list_stock.NewQuery(inventoryReadModel),
			list_history.NewQuery(inventoryReadModel),
			getProductQuery,
			logger,
		),
		Discounts: httptransport.NewDiscountHandler(
			create_discount.NewInteractor(discountRepo, productRepo, comm, clk),
			update_discount.NewInteractor(discountRepo, comm, clk),
			delete_discount.NewInteractor(discountRepo, comm),
			get_discount.NewQuery(discountReadModel),
			list_discounts.NewQuery(discountReadModel),
			list_active_discounts.NewQuery(discountReadModel, clk),
			logger,
		),
		Analytics: httptransport.NewAnalyticsHandler(get_summary.NewQuery(analyticsReadModel, clk), logger),
		Upload:    httptransport.NewUploadHandler(images, logger),
		Health:    httptransport.NewHealthHandler(probe, logger),
	}

	// 6. Create transports
	router := httptransport.NewRouter(httptransport.RouterConfig{
		UploadDir: images.Dir(),
		Verifier:  issuer,
		Logger:    logger,
	}, handlers)

	return &ServiceOptions{
		SpannerClient: spannerClient,
		Router:        router,
		AdminServer:   admin.NewServer(probe, logger),
		EnsureUser:    ensure_user.NewInteractor(userRepo, comm),
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
