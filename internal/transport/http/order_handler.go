package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/storeadmin-service/internal/app/order/domain"
	"github.com/light-bringer/storeadmin-service/internal/app/order/queries/get_order"
	"github.com/light-bringer/storeadmin-service/internal/app/order/queries/list_orders"
	"github.com/light-bringer/storeadmin-service/internal/app/order/usecases/place_order"
	"github.com/light-bringer/storeadmin-service/internal/app/order/usecases/replace_order_items"
)

// OrderHandler serves /api/orders.
type OrderHandler struct {
	placeOrder   *place_order.Interactor
	replaceItems *replace_order_items.Interactor
	getOrder     *get_order.Query
	listOrders   *list_orders.Query
	logger       *slog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(
	placeOrder *place_order.Interactor,
	replaceItems *replace_order_items.Interactor,
	getOrder *get_order.Query,
	listOrders *list_orders.Query,
	logger *slog.Logger,
) *OrderHandler {
	return &OrderHandler{
		placeOrder:   placeOrder,
		replaceItems: replaceItems,
		getOrder:     getOrder,
		listOrders:   listOrders,
		logger:       logger,
	}
}

type orderLine struct {
	ProductID string  `json:"productId"`
	Quantity  flexInt `json:"quantity"`
}

type orderBody struct {
	Items []orderLine `json:"items"`
}

func (b *orderBody) lines() []domain.Line {
	lines := make([]domain.Line, 0, len(b.Items))
	for _, item := range b.Items {
		lines = append(lines, domain.Line{ProductID: item.ProductID, Quantity: int64(item.Quantity)})
	}
	return lines
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.listOrders.Execute(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	h.writeOrder(c, c.Param("id"), http.StatusOK)
}

// Place handles POST /api/orders.
func (h *OrderHandler) Place(c *gin.Context) {
	var body orderBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, msgBadBody)
		return
	}

	order, err := h.placeOrder.Execute(c.Request.Context(), &place_order.Request{Lines: body.lines()})
	if err != nil {
		respondOrderError(c, h.logger, err)
		return
	}
	h.writeOrder(c, order.ID(), http.StatusCreated)
}

// ReplaceItems handles PUT /api/orders/:id.
func (h *OrderHandler) ReplaceItems(c *gin.Context) {
	var body orderBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, msgBadBody)
		return
	}

	order, err := h.replaceItems.Execute(c.Request.Context(), &replace_order_items.Request{
		OrderID: c.Param("id"),
		Lines:   body.lines(),
	})
	if err != nil {
		respondOrderError(c, h.logger, err)
		return
	}
	h.writeOrder(c, order.ID(), http.StatusOK)
}

func (h *OrderHandler) writeOrder(c *gin.Context, id string, status int) {
	order, err := h.getOrder.Execute(c.Request.Context(), &get_order.Request{OrderID: id})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(status, order)
}
