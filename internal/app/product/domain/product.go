package domain

import (
	"strings"
	"time"

	"github.com/light-bringer/storeadmin-service/internal/pkg/money"
)

// Field names for change tracking
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldStock       = "stock"
	FieldCategory    = "category"
	FieldBarcode     = "barcode"
	FieldImages      = "images"
)

// Attributes is the full set of editable product fields.
type Attributes struct {
	Name        string
	Description *string
	Price       money.Money
	Stock       int64
	Category    *string
	Barcode     *string
	Images      []string
}

// Product is a catalog entry. Stock is part of the record; changes that must
// be audited go through the inventory ledger instead of the setters here.
type Product struct {
	id          string
	name        string
	description *string
	price       money.Money
	stock       int64
	category    *string
	barcode     *string
	images      []string
	createdAt   time.Time
	updatedAt   time.Time

	changes *ChangeTracker
}

// NewProduct validates attrs and creates a product that has not been stored yet.
func NewProduct(id string, attrs Attributes, now time.Time) (*Product, error) {
	if err := validate(attrs); err != nil {
		return nil, err
	}

	p := &Product{
		id:        id,
		createdAt: now,
		updatedAt: now,
		changes:   NewChangeTracker(),
	}
	p.assign(attrs)
	return p, nil
}

// ReconstructProduct rebuilds a Product from storage without validation.
func ReconstructProduct(id string, attrs Attributes, createdAt, updatedAt time.Time) *Product {
	return &Product{
		id:          id,
		name:        attrs.Name,
		description: attrs.Description,
		price:       attrs.Price,
		stock:       attrs.Stock,
		category:    attrs.Category,
		barcode:     attrs.Barcode,
		images:      attrs.Images,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		changes:     NewChangeTracker(),
	}
}

// Getters
func (p *Product) ID() string              { return p.id }
func (p *Product) Name() string            { return p.name }
func (p *Product) Description() *string    { return p.description }
func (p *Product) Price() money.Money      { return p.price }
func (p *Product) Stock() int64            { return p.stock }
func (p *Product) Category() *string       { return p.category }
func (p *Product) Barcode() *string        { return p.barcode }
func (p *Product) Images() []string        { return p.images }
func (p *Product) CreatedAt() time.Time    { return p.createdAt }
func (p *Product) UpdatedAt() time.Time    { return p.updatedAt }
func (p *Product) Changes() *ChangeTracker { return p.changes }

// Replace overwrites every editable field.
func (p *Product) Replace(attrs Attributes, now time.Time) error {
	if err := validate(attrs); err != nil {
		return err
	}
	p.assign(attrs)
	p.updatedAt = now
	return nil
}

// Rename sets the product name.
func (p *Product) Rename(name string, now time.Time) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	p.name = name
	p.touch(FieldName, now)
	return nil
}

// SetDescription sets or clears the description.
func (p *Product) SetDescription(description *string, now time.Time) {
	p.description = description
	p.touch(FieldDescription, now)
}

// SetPrice sets the unit price.
func (p *Product) SetPrice(price money.Money, now time.Time) error {
	if price.IsNegative() {
		return ErrNegativePrice
	}
	p.price = price
	p.touch(FieldPrice, now)
	return nil
}

// SetStock overwrites the stock level as a catalog edit.
func (p *Product) SetStock(stock int64, now time.Time) error {
	if stock < 0 {
		return ErrNegativeStock
	}
	p.stock = stock
	p.touch(FieldStock, now)
	return nil
}

// SetCategory sets or clears the category.
func (p *Product) SetCategory(category *string, now time.Time) {
	p.category = normalize(category)
	p.touch(FieldCategory, now)
}

// SetBarcode sets or clears the barcode.
func (p *Product) SetBarcode(barcode *string, now time.Time) {
	p.barcode = normalize(barcode)
	p.touch(FieldBarcode, now)
}

// SetImages replaces the image URL list.
func (p *Product) SetImages(images []string, now time.Time) {
	p.images = images
	p.touch(FieldImages, now)
}

func (p *Product) assign(attrs Attributes) {
	p.name = attrs.Name
	p.description = attrs.Description
	p.price = attrs.Price
	p.stock = attrs.Stock
	p.category = normalize(attrs.Category)
	p.barcode = normalize(attrs.Barcode)
	p.images = attrs.Images
	for _, f := range []string{FieldName, FieldDescription, FieldPrice, FieldStock, FieldCategory, FieldBarcode, FieldImages} {
		p.changes.MarkDirty(f)
	}
}

func (p *Product) touch(field string, now time.Time) {
	p.changes.MarkDirty(field)
	p.updatedAt = now
}

func validate(attrs Attributes) error {
	if strings.TrimSpace(attrs.Name) == "" {
		return ErrEmptyName
	}
	if attrs.Price.IsNegative() {
		return ErrNegativePrice
	}
	if attrs.Stock < 0 {
		return ErrNegativeStock
	}
	return nil
}

// normalize maps blank optional strings to nil so an empty barcode never
// collides in the unique index.
func normalize(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
