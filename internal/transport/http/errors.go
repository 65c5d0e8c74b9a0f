package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authdomain "github.com/light-bringer/storeadmin-service/internal/app/auth/domain"
	discountdomain "github.com/light-bringer/storeadmin-service/internal/app/discount/domain"
	inventorydomain "github.com/light-bringer/storeadmin-service/internal/app/inventory/domain"
	mediadomain "github.com/light-bringer/storeadmin-service/internal/app/media/domain"
	orderdomain "github.com/light-bringer/storeadmin-service/internal/app/order/domain"
	productdomain "github.com/light-bringer/storeadmin-service/internal/app/product/domain"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

const (
	msgUnauthorized = "Unauthorized"
	msgBadBody      = "Invalid request body"
	msgInternal     = "Internal server error"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// errorTable maps domain sentinels to HTTP responses. The first match wins.
var errorTable = []errorMapping{
	{authdomain.ErrInvalidToken, http.StatusUnauthorized, msgUnauthorized},
	{authdomain.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{authdomain.ErrMissingCredentials, http.StatusBadRequest, "Email and password are required"},

	{productdomain.ErrProductNotFound, http.StatusNotFound, "Product not found"},
	{productdomain.ErrEmptyName, http.StatusBadRequest, "Name is required"},
	{productdomain.ErrNegativePrice, http.StatusBadRequest, "Price cannot be negative"},
	{productdomain.ErrNegativeStock, http.StatusBadRequest, "Stock cannot be negative"},
	{productdomain.ErrBarcodeTaken, http.StatusBadRequest, "Barcode is already assigned to another product"},
	{productdomain.ErrProductHasOrders, http.StatusBadRequest, "Product cannot be deleted because it appears on existing orders"},
	{productdomain.ErrBarcodeRequired, http.StatusBadRequest, "Barcode is required"},
	{productdomain.ErrNothingToUpdate, http.StatusBadRequest, "No fields to update"},

	{discountdomain.ErrDiscountNotFound, http.StatusNotFound, "Discount not found"},
	{discountdomain.ErrInvalidDiscountType, http.StatusBadRequest, "Discount type must be percentage or fixed"},
	{discountdomain.ErrInvalidDiscountPeriod, http.StatusBadRequest, "End date must not be before start date"},
	{discountdomain.ErrDiscountProductGone, http.StatusBadRequest, "Product not found"},

	{inventorydomain.ErrNegativeStock, http.StatusBadRequest, "Stock cannot be negative"},

	{orderdomain.ErrOrderNotFound, http.StatusNotFound, "Order not found"},
	{orderdomain.ErrEmptyOrder, http.StatusBadRequest, "Order must contain at least one item"},

	{mediadomain.ErrNoFile, http.StatusBadRequest, "No file provided"},
	{mediadomain.ErrNotImage, http.StatusBadRequest, "Only image uploads are allowed"},
}

// mapError converts an error to a status and public message.
func mapError(err error) (int, string) {
	for _, m := range errorTable {
		if errors.Is(err, m.target) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, msgInternal
}

// mapOrderError is mapError for the order workflows. A bad line, an
// unknown product or a stock shortfall fails the whole order with 500 and
// the line's own message.
func mapOrderError(err error) (int, string) {
	var (
		lineErr     *orderdomain.LineError
		notFoundErr *orderdomain.ProductNotFoundError
		stockErr    *inventorydomain.InsufficientStockError
	)
	switch {
	case errors.As(err, &lineErr):
		return http.StatusInternalServerError, lineErr.Error()
	case errors.As(err, &notFoundErr):
		return http.StatusInternalServerError, notFoundErr.Error()
	case errors.As(err, &stockErr):
		return http.StatusInternalServerError, stockErr.Error()
	}
	return mapError(err)
}

// respond writes the mapped error and logs server-side failures.
func respond(c *gin.Context, logger *slog.Logger, err error, mapper func(error) (int, string)) {
	status, message := mapper(err)
	if status >= http.StatusInternalServerError {
		logger.ErrorContext(c.Request.Context(), "request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"request_id", c.GetString(requestIDKey),
			"error", err,
		)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}

func respondError(c *gin.Context, logger *slog.Logger, err error) {
	respond(c, logger, err, mapError)
}

func respondOrderError(c *gin.Context, logger *slog.Logger, err error) {
	respond(c, logger, err, mapOrderError)
}

func badRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: message})
}
