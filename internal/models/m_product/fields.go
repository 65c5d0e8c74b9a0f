package m_product

// Column names of the products table.
const (
	TableName = "products"

	ProductID   = "product_id"
	Name        = "name"
	Description = "description"
	Price       = "price"
	Stock       = "stock"
	Category    = "category"
	Barcode     = "barcode"
	Images      = "images"
	CreatedAt   = "created_at"
	UpdatedAt   = "updated_at"

	// BarcodeIndex is the unique, null-filtered index on barcode.
	BarcodeIndex = "idx_products_barcode"
)

// Columns lists every column in table order.
func Columns() []string {
	return []string{ProductID, Name, Description, Price, Stock, Category, Barcode, Images, CreatedAt, UpdatedAt}
}
