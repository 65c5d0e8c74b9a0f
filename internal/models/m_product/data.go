package m_product

import (
	"math/big"
	"time"

	"cloud.google.com/go/spanner"
)

// Data is one row of the products table.
type Data struct {
	ProductID   string             `spanner:"product_id"`
	Name        string             `spanner:"name"`
	Description spanner.NullString `spanner:"description"`
	Price       big.Rat            `spanner:"price"`
	Stock       int64              `spanner:"stock"`
	Category    spanner.NullString `spanner:"category"`
	Barcode     spanner.NullString `spanner:"barcode"`
	Images      []string           `spanner:"images"`
	CreatedAt   time.Time          `spanner:"created_at"`
	UpdatedAt   time.Time          `spanner:"updated_at"`
}
