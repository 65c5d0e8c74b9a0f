package find_by_barcode

import (
	"context"
	"strings"

	"github.com/light-bringer/storeadmin-service/internal/app/product/contracts"
	"github.com/light-bringer/storeadmin-service/internal/app/product/domain"
)

// Request carries the scanned code.
type Request struct {
	Barcode string
}

// Query looks a product up by barcode.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new barcode lookup query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{readModel: readModel}
}

// Execute returns the product holding the barcode.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.ProductDTO, error) {
	code := strings.TrimSpace(req.Barcode)
	if code == "" {
		return nil, domain.ErrBarcodeRequired
	}
	return q.readModel.FindByBarcode(ctx, code)
}
