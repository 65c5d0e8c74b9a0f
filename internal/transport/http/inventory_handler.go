package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/storeadmin-service/internal/app/inventory/queries/list_history"
	"github.com/light-bringer/storeadmin-service/internal/app/inventory/queries/list_stock"
	"github.com/light-bringer/storeadmin-service/internal/app/inventory/usecases/adjust_stock"
	"github.com/light-bringer/storeadmin-service/internal/app/product/queries/get_product"
)

// InventoryHandler serves /api/inventory.
type InventoryHandler struct {
	adjustStock *adjust_stock.Interactor
	listStock   *list_stock.Query
	listHistory *list_history.Query
	getProduct  *get_product.Query
	logger      *slog.Logger
}

// NewInventoryHandler creates a new inventory handler.
func NewInventoryHandler(
	adjustStock *adjust_stock.Interactor,
	listStock *list_stock.Query,
	listHistory *list_history.Query,
	getProduct *get_product.Query,
	logger *slog.Logger,
) *InventoryHandler {
	return &InventoryHandler{
		adjustStock: adjustStock,
		listStock:   listStock,
		listHistory: listHistory,
		getProduct:  getProduct,
		logger:      logger,
	}
}

type adjustBody struct {
	ProductID    string   `json:"productId"`
	NewStock     *flexInt `json:"newStock"`
	ChangeReason string   `json:"changeReason"`
}

// List handles GET /api/inventory.
func (h *InventoryHandler) List(c *gin.Context) {
	stock, err := h.listStock.Execute(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, stock)
}

// Adjust handles PUT /api/inventory and returns the updated product.
func (h *InventoryHandler) Adjust(c *gin.Context) {
	var body adjustBody
	if err := c.ShouldBindJSON(&body); err != nil || body.ProductID == "" {
		badRequest(c, msgBadBody)
		return
	}
	if body.NewStock == nil {
		badRequest(c, requiredError("New stock").Error())
		return
	}

	ctx := c.Request.Context()
	if err := h.adjustStock.Execute(ctx, &adjust_stock.Request{
		ProductID: body.ProductID,
		NewStock:  int64(*body.NewStock),
		Reason:    body.ChangeReason,
	}); err != nil {
		respondError(c, h.logger, err)
		return
	}

	product, err := h.getProduct.Execute(ctx, &get_product.Request{ProductID: body.ProductID})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// History handles GET /api/inventory/:productId/history?limit=N.
func (h *InventoryHandler) History(c *gin.Context) {
	var limit int64
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 0 {
			badRequest(c, "Invalid limit")
			return
		}
		limit = n
	}

	entries, err := h.listHistory.Execute(c.Request.Context(), &list_history.Request{
		ProductID: c.Param("productId"),
		Limit:     limit,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
