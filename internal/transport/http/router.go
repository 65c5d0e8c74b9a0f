package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// Handlers groups every handler the router mounts.
type Handlers struct {
	Auth      *AuthHandler
	Products  *ProductHandler
	Orders    *OrderHandler
	Inventory *InventoryHandler
	Discounts *DiscountHandler
	Analytics *AnalyticsHandler
	Upload    *UploadHandler
	Health    *HealthHandler
}

// RouterConfig carries the router's non-handler dependencies.
type RouterConfig struct {
	UploadDir string
	Verifier  SessionVerifier
	Logger    *slog.Logger
}

// NewRouter builds the gin engine. Login and /healthz are public; every
// other /api route requires a bearer token.
func NewRouter(cfg RouterConfig, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(Recovery(cfg.Logger), RequestLogger(cfg.Logger))

	r.GET("/healthz", h.Health.Check)
	if cfg.UploadDir != "" {
		r.Static("/uploads", cfg.UploadDir)
	}

	api := r.Group("/api")
	api.POST("/auth/login", h.Auth.Login)

	authed := api.Group("", Authenticate(cfg.Verifier))
	authed.GET("/auth/session", h.Auth.Me)

	products := authed.Group("/products")
	products.GET("", h.Products.List)
	products.POST("", h.Products.Create)
	products.GET("/barcode", h.Products.FindByBarcode)
	products.GET("/:id", h.Products.Get)
	products.PUT("/:id", h.Products.Replace)
	products.PATCH("/:id", h.Products.Patch)
	products.DELETE("/:id", h.Products.Delete)

	orders := authed.Group("/orders")
	orders.GET("", h.Orders.List)
	orders.POST("", h.Orders.Place)
	orders.GET("/:id", h.Orders.Get)
	orders.PUT("/:id", h.Orders.ReplaceItems)

	inventory := authed.Group("/inventory")
	inventory.GET("", h.Inventory.List)
	inventory.PUT("", h.Inventory.Adjust)
	inventory.GET("/:productId/history", h.Inventory.History)

	discounts := authed.Group("/discounts")
	discounts.GET("", h.Discounts.List)
	discounts.POST("", h.Discounts.Create)
	discounts.GET("/active", h.Discounts.Active)
	discounts.PUT("/:id", h.Discounts.Update)
	discounts.DELETE("/:id", h.Discounts.Delete)

	authed.GET("/analytics", h.Analytics.Summary)
	authed.POST("/upload", h.Upload.Upload)

	return r
}
