package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/light-bringer/storeadmin-service/internal/app/product/domain"
	"github.com/light-bringer/storeadmin-service/internal/app/product/queries/find_by_barcode"
	"github.com/light-bringer/storeadmin-service/internal/app/product/queries/get_product"
	"github.com/light-bringer/storeadmin-service/internal/app/product/queries/list_products"
	"github.com/light-bringer/storeadmin-service/internal/app/product/usecases/create_product"
	"github.com/light-bringer/storeadmin-service/internal/app/product/usecases/delete_product"
	"github.com/light-bringer/storeadmin-service/internal/app/product/usecases/patch_product"
	"github.com/light-bringer/storeadmin-service/internal/app/product/usecases/replace_product"
	"github.com/light-bringer/storeadmin-service/internal/pkg/money"
)

// ProductHandler serves /api/products.
// It's a thin coordinator that delegates to use cases and queries.
type ProductHandler struct {
	// Commands
	createProduct  *create_product.Interactor
	replaceProduct *replace_product.Interactor
	patchProduct   *patch_product.Interactor
	deleteProduct  *delete_product.Interactor

	// Queries
	getProduct    *get_product.Query
	listProducts  *list_products.Query
	findByBarcode *find_by_barcode.Query

	logger *slog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(
	createProduct *create_product.Interactor,
	replaceProduct *replace_product.Interactor,
	patchProduct *patch_product.Interactor,
	deleteProduct *delete_product.Interactor,
	getProduct *get_product.Query,
	listProducts *list_products.Query,
	findByBarcode *find_by_barcode.Query,
	logger *slog.Logger,
) *ProductHandler {
	return &ProductHandler{
		createProduct:  createProduct,
		replaceProduct: replaceProduct,
		patchProduct:   patchProduct,
		deleteProduct:  deleteProduct,
		getProduct:     getProduct,
		listProducts:   listProducts,
		findByBarcode:  findByBarcode,
		logger:         logger,
	}
}

type productBody struct {
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *flexInt         `json:"stock"`
	Category    *string          `json:"category"`
	Barcode     *string          `json:"barcode"`
	Images      []string         `json:"images"`
}

// attributes requires a price. A missing stock reads as 0 on create and is
// rejected on replace.
func (b *productBody) attributes(requireStock bool) (domain.Attributes, error) {
	if b.Price == nil {
		return domain.Attributes{}, requiredError("Price")
	}
	var stock int64
	switch {
	case b.Stock != nil:
		stock = int64(*b.Stock)
	case requireStock:
		return domain.Attributes{}, requiredError("Stock")
	}
	return domain.Attributes{
		Name:        b.Name,
		Description: blankToNil(b.Description),
		Price:       money.FromDecimal(*b.Price),
		Stock:       stock,
		Category:    blankToNil(b.Category),
		Barcode:     blankToNil(b.Barcode),
		Images:      b.Images,
	}, nil
}

// List handles GET /api/products.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.listProducts.Execute(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// Get handles GET /api/products/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	h.writeProduct(c, c.Param("id"), http.StatusOK)
}

// FindByBarcode handles GET /api/products/barcode?barcode=.
func (h *ProductHandler) FindByBarcode(c *gin.Context) {
	product, err := h.findByBarcode.Execute(c.Request.Context(), &find_by_barcode.Request{Barcode: c.Query("barcode")})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// Create handles POST /api/products.
func (h *ProductHandler) Create(c *gin.Context) {
	var body productBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, msgBadBody)
		return
	}

	attrs, err := body.attributes(false)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	id, err := h.createProduct.Execute(c.Request.Context(), &create_product.Request{Attributes: attrs})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	h.writeProduct(c, id, http.StatusCreated)
}

// Replace handles PUT /api/products/:id.
func (h *ProductHandler) Replace(c *gin.Context) {
	var body productBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, msgBadBody)
		return
	}

	attrs, err := body.attributes(true)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	id := c.Param("id")
	if err := h.replaceProduct.Execute(c.Request.Context(), &replace_product.Request{ProductID: id, Attributes: attrs}); err != nil {
		respondError(c, h.logger, err)
		return
	}
	h.writeProduct(c, id, http.StatusOK)
}

// Patch handles PATCH /api/products/:id. Only keys present in the body are written.
func (h *ProductHandler) Patch(c *gin.Context) {
	var raw map[string]json.RawMessage
	if err := c.ShouldBindJSON(&raw); err != nil {
		badRequest(c, msgBadBody)
		return
	}

	id := c.Param("id")
	req, err := patchRequest(id, raw)
	if err != nil {
		var required requiredError
		if errors.As(err, &required) {
			badRequest(c, required.Error())
			return
		}
		badRequest(c, msgBadBody)
		return
	}
	if err := h.patchProduct.Execute(c.Request.Context(), req); err != nil {
		respondError(c, h.logger, err)
		return
	}
	h.writeProduct(c, id, http.StatusOK)
}

// Delete handles DELETE /api/products/:id.
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.deleteProduct.Execute(c.Request.Context(), &delete_product.Request{ProductID: c.Param("id")}); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *ProductHandler) writeProduct(c *gin.Context, id string, status int) {
	product, err := h.getProduct.Execute(c.Request.Context(), &get_product.Request{ProductID: id})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(status, product)
}

func patchRequest(id string, raw map[string]json.RawMessage) (*patch_product.Request, error) {
	req := &patch_product.Request{ProductID: id}

	if v, ok := raw["name"]; ok {
		var name string
		if err := json.Unmarshal(v, &name); err != nil {
			return nil, err
		}
		req.Name = patch_product.Set(name)
	}
	if v, ok := raw["description"]; ok {
		var s *string
		if err := json.Unmarshal(v, &s); err != nil {
			return nil, err
		}
		req.Description = patch_product.Set(blankToNil(s))
	}
	if v, ok := raw["price"]; ok {
		if isNull(v) {
			return nil, requiredError("Price")
		}
		var d decimal.Decimal
		if err := json.Unmarshal(v, &d); err != nil {
			return nil, err
		}
		req.Price = patch_product.Set(money.FromDecimal(d))
	}
	if v, ok := raw["stock"]; ok {
		if isNull(v) {
			return nil, requiredError("Stock")
		}
		var n flexInt
		if err := json.Unmarshal(v, &n); err != nil {
			return nil, err
		}
		req.Stock = patch_product.Set(int64(n))
	}
	if v, ok := raw["category"]; ok {
		var s *string
		if err := json.Unmarshal(v, &s); err != nil {
			return nil, err
		}
		req.Category = patch_product.Set(blankToNil(s))
	}
	if v, ok := raw["barcode"]; ok {
		var s *string
		if err := json.Unmarshal(v, &s); err != nil {
			return nil, err
		}
		req.Barcode = patch_product.Set(blankToNil(s))
	}
	if v, ok := raw["images"]; ok {
		var images []string
		if err := json.Unmarshal(v, &images); err != nil {
			return nil, err
		}
		req.Images = patch_product.Set(images)
	}
	return req, nil
}
