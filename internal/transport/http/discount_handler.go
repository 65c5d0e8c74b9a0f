package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/light-bringer/storeadmin-service/internal/app/discount/domain"
	"github.com/light-bringer/storeadmin-service/internal/app/discount/queries/get_discount"
	"github.com/light-bringer/storeadmin-service/internal/app/discount/queries/list_active_discounts"
	"github.com/light-bringer/storeadmin-service/internal/app/discount/queries/list_discounts"
	"github.com/light-bringer/storeadmin-service/internal/app/discount/usecases/create_discount"
	"github.com/light-bringer/storeadmin-service/internal/app/discount/usecases/delete_discount"
	"github.com/light-bringer/storeadmin-service/internal/app/discount/usecases/update_discount"
)

// DiscountHandler serves /api/discounts.
type DiscountHandler struct {
	createDiscount *create_discount.Interactor
	updateDiscount *update_discount.Interactor
	deleteDiscount *delete_discount.Interactor
	getDiscount    *get_discount.Query
	listDiscounts  *list_discounts.Query
	listActive     *list_active_discounts.Query
	logger         *slog.Logger
}

// NewDiscountHandler creates a new discount handler.
func NewDiscountHandler(
	createDiscount *create_discount.Interactor,
	updateDiscount *update_discount.Interactor,
	deleteDiscount *delete_discount.Interactor,
	getDiscount *get_discount.Query,
	listDiscounts *list_discounts.Query,
	listActive *list_active_discounts.Query,
	logger *slog.Logger,
) *DiscountHandler {
	return &DiscountHandler{
		createDiscount: createDiscount,
		updateDiscount: updateDiscount,
		deleteDiscount: deleteDiscount,
		getDiscount:    getDiscount,
		listDiscounts:  listDiscounts,
		listActive:     listActive,
		logger:         logger,
	}
}

type discountBody struct {
	ProductID    *string         `json:"productId"`
	DiscountType string          `json:"discountType"`
	Value        decimal.Decimal `json:"value"`
	StartDate    string          `json:"startDate"`
	EndDate      string          `json:"endDate"`
	IsActive     *bool           `json:"isActive"`
}

func (b *discountBody) terms() (domain.Terms, error) {
	discountType, err := domain.ParseType(b.DiscountType)
	if err != nil {
		return domain.Terms{}, err
	}
	start, err := parseDate(b.StartDate)
	if err != nil {
		return domain.Terms{}, err
	}
	end, err := parseDate(b.EndDate)
	if err != nil {
		return domain.Terms{}, err
	}
	return domain.Terms{
		Type:      discountType,
		Value:     b.Value,
		StartDate: start,
		EndDate:   end,
		IsActive:  b.IsActive == nil || *b.IsActive,
	}, nil
}

// List handles GET /api/discounts.
func (h *DiscountHandler) List(c *gin.Context) {
	discounts, err := h.listDiscounts.Execute(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, discounts)
}

// Active handles GET /api/discounts/active.
func (h *DiscountHandler) Active(c *gin.Context) {
	discounts, err := h.listActive.Execute(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, discounts)
}

// Create handles POST /api/discounts.
func (h *DiscountHandler) Create(c *gin.Context) {
	var body discountBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, msgBadBody)
		return
	}
	terms, err := body.terms()
	if err != nil {
		h.termsError(c, err)
		return
	}

	id, err := h.createDiscount.Execute(c.Request.Context(), &create_discount.Request{
		ProductID: blankToNil(body.ProductID),
		Terms:     terms,
		IsActive:  body.IsActive,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	h.writeDiscount(c, id, http.StatusCreated)
}

// Update handles PUT /api/discounts/:id.
func (h *DiscountHandler) Update(c *gin.Context) {
	var body discountBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, msgBadBody)
		return
	}
	terms, err := body.terms()
	if err != nil {
		h.termsError(c, err)
		return
	}

	id := c.Param("id")
	if err := h.updateDiscount.Execute(c.Request.Context(), &update_discount.Request{DiscountID: id, Terms: terms}); err != nil {
		respondError(c, h.logger, err)
		return
	}
	h.writeDiscount(c, id, http.StatusOK)
}

// Delete handles DELETE /api/discounts/:id.
func (h *DiscountHandler) Delete(c *gin.Context) {
	if err := h.deleteDiscount.Execute(c.Request.Context(), &delete_discount.Request{DiscountID: c.Param("id")}); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *DiscountHandler) termsError(c *gin.Context, err error) {
	if errors.Is(err, errBadDate) {
		badRequest(c, "Invalid start or end date")
		return
	}
	respondError(c, h.logger, err)
}

func (h *DiscountHandler) writeDiscount(c *gin.Context, id string, status int) {
	discount, err := h.getDiscount.Execute(c.Request.Context(), &get_discount.Request{DiscountID: id})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(status, discount)
}
