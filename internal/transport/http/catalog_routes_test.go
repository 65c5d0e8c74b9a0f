package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	productcontracts "github.com/light-bringer/storeadmin-service/internal/app/product/contracts"
	"github.com/light-bringer/storeadmin-service/internal/pkg/money"
)

func TestProducts_RequiredNumbers(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		path    string
		body    string
		message string
	}{
		{"create without price", http.MethodPost, "/api/products", `{"name":"Tea","stock":1}`, "Price is required"},
		{"create with null price", http.MethodPost, "/api/products", `{"name":"Tea","price":null}`, "Price is required"},
		{"replace without stock", http.MethodPut, "/api/products/p-1", `{"name":"Coffee","price":2.5}`, "Stock is required"},
		{"replace without price", http.MethodPut, "/api/products/p-1", `{"name":"Coffee","stock":10}`, "Price is required"},
		{"patch null price", http.MethodPatch, "/api/products/p-1", `{"price":null}`, "Price is required"},
		{"patch null stock", http.MethodPatch, "/api/products/p-1", `{"stock":null}`, "Stock is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t)
			srv.store.SeedProduct("p-1", "Coffee", "2.50", 10)

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer "+srv.token(t))
			rec := srv.do(req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.message, decodeError(t, rec))

			attrs, ok := srv.store.Products.Attributes("p-1")
			require.True(t, ok)
			assert.True(t, money.FromFloat(2.5).Equal(attrs.Price))
			assert.Equal(t, int64(10), srv.store.Products.Stock("p-1"))
		})
	}
}

func TestProducts_CreateDefaultsStock(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(jsonRequest(t, http.MethodPost, "/api/products", map[string]any{
		"name":  "Tea",
		"price": "4.00",
	}, srv.token(t)))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var product productcontracts.ProductDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &product))
	assert.Equal(t, "Tea", product.Name)
	assert.Equal(t, int64(0), product.Stock)
	assert.InDelta(t, 4.0, product.Price, 1e-9)
}

func TestProducts_Lookups(t *testing.T) {
	srv := newTestServer(t)
	token := srv.token(t)

	t.Run("barcode missing", func(t *testing.T) {
		rec := srv.do(jsonRequest(t, http.MethodGet, "/api/products/barcode", nil, token))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Barcode is required", decodeError(t, rec))
	})

	t.Run("barcode unknown", func(t *testing.T) {
		rec := srv.do(jsonRequest(t, http.MethodGet, "/api/products/barcode?barcode=000", nil, token))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Product not found", decodeError(t, rec))
	})

	t.Run("product unknown", func(t *testing.T) {
		rec := srv.do(jsonRequest(t, http.MethodGet, "/api/products/nope", nil, token))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Product not found", decodeError(t, rec))
	})
}

func TestDiscounts_UnknownID(t *testing.T) {
	srv := newTestServer(t)
	token := srv.token(t)

	rec := srv.do(jsonRequest(t, http.MethodPut, "/api/discounts/nope", map[string]any{
		"discountType": "percentage",
		"value":        10,
		"startDate":    "2026-03-01",
		"endDate":      "2026-04-01",
	}, token))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Discount not found", decodeError(t, rec))

	rec = srv.do(jsonRequest(t, http.MethodDelete, "/api/discounts/nope", nil, token))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Discount not found", decodeError(t, rec))

	assert.Zero(t, srv.store.Discounts.Len())
}

func TestInventory_Adjust(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"missing new stock", `{"productId":"p-1","changeReason":"count"}`, "New stock is required"},
		{"null new stock", `{"productId":"p-1","newStock":null}`, "New stock is required"},
		{"missing product", `{"newStock":4}`, msgBadBody},
		{"malformed", `{`, msgBadBody},
		{"not a number", `{"productId":"p-1","newStock":"four"}`, msgBadBody},
		{"negative", `{"productId":"p-1","newStock":-1}`, "Stock cannot be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t)
			srv.store.SeedProduct("p-1", "Coffee", "2.50", 10)

			req := httptest.NewRequest(http.MethodPut, "/api/inventory", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer "+srv.token(t))
			rec := srv.do(req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.message, decodeError(t, rec))
			assert.Equal(t, int64(10), srv.store.Products.Stock("p-1"))
			assert.Empty(t, srv.store.History.Entries())
		})
	}

	t.Run("string stock accepted", func(t *testing.T) {
		srv := newTestServer(t)
		srv.store.SeedProduct("p-1", "Coffee", "2.50", 10)

		rec := srv.do(jsonRequest(t, http.MethodPut, "/api/inventory", map[string]any{
			"productId": "p-1",
			"newStock":  "4",
		}, srv.token(t)))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		assert.Equal(t, int64(4), srv.store.Products.Stock("p-1"))
		history := srv.store.History.For("p-1")
		require.Len(t, history, 1)
		assert.Equal(t, int64(10), history[0].PreviousStock)
		assert.Equal(t, int64(4), history[0].NewStock)
	})
}

func TestAnalytics_PeriodWindow(t *testing.T) {
	tests := []struct {
		period string
		since  time.Time
	}{
		{"bogus", time.Date(2026, 2, 15, 10, 0, 0, 0, time.UTC)},
		{"", time.Date(2026, 2, 15, 10, 0, 0, 0, time.UTC)},
		{"day", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"week", time.Date(2026, 3, 8, 10, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run("period="+tt.period, func(t *testing.T) {
			srv := newTestServer(t)

			rec := srv.do(jsonRequest(t, http.MethodGet, "/api/analytics?period="+tt.period, nil, srv.token(t)))
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			require.Len(t, srv.analytics.since, 2)
			for _, since := range srv.analytics.since {
				assert.True(t, tt.since.Equal(since), "got %s", since)
			}
		})
	}
}
