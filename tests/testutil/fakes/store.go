// Package fakes provides in-memory repositories for usecase tests.
//
// Every repository in a Store shares one committertest.Runner, so a
// mutation changes the in-memory state only when the plan that carries it
// commits.
package fakes

import (
	"context"
	"sort"
	"sync"
	"time"

	"cloud.google.com/go/spanner"

	authdomain "github.com/light-bringer/storeadmin-service/internal/app/auth/domain"
	discountdomain "github.com/light-bringer/storeadmin-service/internal/app/discount/domain"
	inventorydomain "github.com/light-bringer/storeadmin-service/internal/app/inventory/domain"
	orderdomain "github.com/light-bringer/storeadmin-service/internal/app/order/domain"
	productdomain "github.com/light-bringer/storeadmin-service/internal/app/product/domain"
	"github.com/light-bringer/storeadmin-service/internal/pkg/committer"
	"github.com/light-bringer/storeadmin-service/internal/pkg/committer/committertest"
	"github.com/light-bringer/storeadmin-service/internal/pkg/money"
)

// Store bundles the fake repositories.
type Store struct {
	Runner    *committertest.Runner
	Products  *ProductRepo
	Discounts *DiscountRepo
	History   *HistoryRepo
	Orders    *OrderRepo
	Users     *UserRepo
}

// NewStore creates an empty store.
func NewStore() *Store {
	runner := committertest.NewRunner()
	s := &Store{Runner: runner}
	s.Orders = &OrderRepo{runner: runner, orders: make(map[string]*storedOrder)}
	s.Products = &ProductRepo{runner: runner, rows: make(map[string]*storedProduct), orders: s.Orders}
	s.Discounts = &DiscountRepo{runner: runner, rows: make(map[string]*discountdomain.Discount)}
	s.History = &HistoryRepo{runner: runner}
	s.Users = &UserRepo{runner: runner, rows: make(map[string]*authdomain.User)}
	return s
}

// ---- products ----

type storedProduct struct {
	attrs productdomain.Attributes
	p     *productdomain.Product
}

// ProductRepo is an in-memory ProductRepository.
type ProductRepo struct {
	mu     sync.Mutex
	runner *committertest.Runner
	rows   map[string]*storedProduct
	orders *OrderRepo
}

func attributesOf(p *productdomain.Product) productdomain.Attributes {
	images := append([]string(nil), p.Images()...)
	return productdomain.Attributes{
		Name:        p.Name(),
		Description: p.Description(),
		Price:       p.Price(),
		Stock:       p.Stock(),
		Category:    p.Category(),
		Barcode:     p.Barcode(),
		Images:      images,
	}
}

// Seed stores a product directly, bypassing the runner.
func (r *ProductRepo) Seed(p *productdomain.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[p.ID()] = &storedProduct{attrs: attributesOf(p), p: p}
}

func (r *ProductRepo) put(p *productdomain.Product, attrs productdomain.Attributes) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[p.ID()] = &storedProduct{attrs: attrs, p: p}
}

func (r *ProductRepo) InsertMut(p *productdomain.Product) *spanner.Mutation {
	attrs := attributesOf(p)
	return r.runner.Track(committertest.Placeholder("products"), func() { r.put(p, attrs) })
}

func (r *ProductRepo) UpdateMut(p *productdomain.Product) *spanner.Mutation {
	if !p.Changes().HasChanges() {
		return nil
	}
	attrs := attributesOf(p)
	return r.runner.Track(committertest.Placeholder("products"), func() { r.put(p, attrs) })
}

func (r *ProductRepo) StockMut(productID string, stock int64) *spanner.Mutation {
	return r.runner.Track(committertest.Placeholder("products"), func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if row, ok := r.rows[productID]; ok {
			row.attrs.Stock = stock
		}
	})
}

func (r *ProductRepo) DeleteMut(productID string) *spanner.Mutation {
	return r.runner.Track(committertest.Placeholder("products"), func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.rows, productID)
	})
}

func (r *ProductRepo) GetByID(_ context.Context, _ committer.Reader, productID string) (*productdomain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[productID]
	if !ok {
		return nil, productdomain.ErrProductNotFound
	}
	attrs := row.attrs
	attrs.Images = append([]string(nil), attrs.Images...)
	return productdomain.ReconstructProduct(productID, attrs, row.p.CreatedAt(), row.p.UpdatedAt()), nil
}

func (r *ProductRepo) BarcodeOwner(_ context.Context, _ committer.Reader, barcode string) (string, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, row := range r.rows {
		if row.attrs.Barcode != nil && *row.attrs.Barcode == barcode {
			return id, true, nil
		}
	}
	return "", false, nil
}

func (r *ProductRepo) HasOrders(_ context.Context, _ committer.Reader, productID string) (bool, error) {
	return r.orders.references(productID), nil
}

// Stock returns the stored stock of a product, or -1 when it does not exist.
func (r *ProductRepo) Stock(productID string) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[productID]
	if !ok {
		return -1
	}
	return row.attrs.Stock
}

// Exists reports whether a product is stored.
func (r *ProductRepo) Exists(productID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.rows[productID]
	return ok
}

// Attributes returns the stored attributes of a product.
func (r *ProductRepo) Attributes(productID string) (productdomain.Attributes, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[productID]
	if !ok {
		return productdomain.Attributes{}, false
	}
	return row.attrs, true
}

// ---- discounts ----

// DiscountRepo is an in-memory DiscountRepository.
type DiscountRepo struct {
	mu     sync.Mutex
	runner *committertest.Runner
	rows   map[string]*discountdomain.Discount
}

func snapshotDiscount(d *discountdomain.Discount) *discountdomain.Discount {
	return discountdomain.ReconstructDiscount(d.ID(), d.ProductID(), d.Terms(), d.CreatedAt(), d.UpdatedAt())
}

func (r *DiscountRepo) put(d *discountdomain.Discount) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[d.ID()] = d
}

// Seed stores a discount directly, bypassing the runner.
func (r *DiscountRepo) Seed(d *discountdomain.Discount) {
	r.put(snapshotDiscount(d))
}

func (r *DiscountRepo) InsertMut(d *discountdomain.Discount) *spanner.Mutation {
	snap := snapshotDiscount(d)
	return r.runner.Track(committertest.Placeholder("discounts"), func() { r.put(snap) })
}

func (r *DiscountRepo) UpdateMut(d *discountdomain.Discount) *spanner.Mutation {
	snap := snapshotDiscount(d)
	return r.runner.Track(committertest.Placeholder("discounts"), func() { r.put(snap) })
}

func (r *DiscountRepo) DeleteMut(discountID string) *spanner.Mutation {
	return r.runner.Track(committertest.Placeholder("discounts"), func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.rows, discountID)
	})
}

func (r *DiscountRepo) GetByID(_ context.Context, _ committer.Reader, discountID string) (*discountdomain.Discount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.rows[discountID]
	if !ok {
		return nil, discountdomain.ErrDiscountNotFound
	}
	return snapshotDiscount(d), nil
}

// Get returns the stored discount.
func (r *DiscountRepo) Get(discountID string) (*discountdomain.Discount, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.rows[discountID]
	return d, ok
}

// Len returns the number of stored discounts.
func (r *DiscountRepo) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

// ---- inventory history ----

// HistoryRepo is an in-memory HistoryRepository.
type HistoryRepo struct {
	mu      sync.Mutex
	runner  *committertest.Runner
	entries []inventorydomain.Movement
}

func (r *HistoryRepo) InsertMut(m inventorydomain.Movement) *spanner.Mutation {
	return r.runner.Track(committertest.Placeholder("inventory_history"), func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.entries = append(r.entries, m)
	})
}

// Entries returns the committed ledger rows in commit order.
func (r *HistoryRepo) Entries() []inventorydomain.Movement {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]inventorydomain.Movement(nil), r.entries...)
}

// For returns the committed ledger rows of one product.
func (r *HistoryRepo) For(productID string) []inventorydomain.Movement {
	var out []inventorydomain.Movement
	for _, m := range r.Entries() {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out
}

// ---- orders ----

type storedOrder struct {
	number    string
	total     money.Money
	items     map[string]orderdomain.Item
	createdAt time.Time
}

// OrderRepo is an in-memory OrderRepository.
type OrderRepo struct {
	mu     sync.Mutex
	runner *committertest.Runner
	orders map[string]*storedOrder
}

// Seed stores an order with its lines directly, bypassing the runner.
func (r *OrderRepo) Seed(o *orderdomain.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make(map[string]orderdomain.Item)
	for _, item := range o.Items() {
		items[item.ID] = item
	}
	r.orders[o.ID()] = &storedOrder{number: o.Number(), total: o.Total(), items: items, createdAt: o.CreatedAt()}
}

func (r *OrderRepo) InsertMut(o *orderdomain.Order) *spanner.Mutation {
	id, number, total, created := o.ID(), o.Number(), o.Total(), o.CreatedAt()
	return r.runner.Track(committertest.Placeholder("orders"), func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.orders[id] = &storedOrder{
			number:    number,
			total:     total,
			items:     make(map[string]orderdomain.Item),
			createdAt: created,
		}
	})
}

func (r *OrderRepo) InsertItemMut(orderID string, item orderdomain.Item) *spanner.Mutation {
	return r.runner.Track(committertest.Placeholder("order_items"), func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if o, ok := r.orders[orderID]; ok {
			o.items[item.ID] = item
		}
	})
}

func (r *OrderRepo) DeleteItemsMut(orderID string) *spanner.Mutation {
	return r.runner.Track(committertest.Placeholder("order_items"), func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if o, ok := r.orders[orderID]; ok {
			o.items = make(map[string]orderdomain.Item)
		}
	})
}

func (r *OrderRepo) TotalMut(orderID string, total money.Money) *spanner.Mutation {
	return r.runner.Track(committertest.Placeholder("orders"), func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if o, ok := r.orders[orderID]; ok {
			o.total = total
		}
	})
}

func (r *OrderRepo) GetByID(_ context.Context, _ committer.Reader, orderID string) (*orderdomain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[orderID]
	if !ok {
		return nil, orderdomain.ErrOrderNotFound
	}
	return orderdomain.ReconstructOrder(orderID, o.number, sortedItems(o.items), o.createdAt), nil
}

// Total returns the stored total of an order.
func (r *OrderRepo) Total(orderID string) (money.Money, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[orderID]
	if !ok {
		return money.Zero(), false
	}
	return o.total, true
}

// Items returns the stored lines of an order sorted by id.
func (r *OrderRepo) Items(orderID string) []orderdomain.Item {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[orderID]
	if !ok {
		return nil
	}
	return sortedItems(o.items)
}

// Len returns the number of stored orders.
func (r *OrderRepo) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.orders)
}

func (r *OrderRepo) references(productID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		for _, item := range o.items {
			if item.ProductID == productID {
				return true
			}
		}
	}
	return false
}

func sortedItems(items map[string]orderdomain.Item) []orderdomain.Item {
	out := make([]orderdomain.Item, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ---- users ----

// UserRepo is an in-memory UserRepository keyed by email.
type UserRepo struct {
	mu     sync.Mutex
	runner *committertest.Runner
	rows   map[string]*authdomain.User
}

// Seed stores a user directly, bypassing the runner.
func (r *UserRepo) Seed(u *authdomain.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[u.Email()] = u
}

func (r *UserRepo) InsertMut(u *authdomain.User) *spanner.Mutation {
	snap := authdomain.ReconstructUser(u.ID(), u.Email(), u.PasswordHash(), u.Name(), u.Role())
	return r.runner.Track(committertest.Placeholder("users"), func() { r.Seed(snap) })
}

func (r *UserRepo) PasswordMut(u *authdomain.User) *spanner.Mutation {
	snap := authdomain.ReconstructUser(u.ID(), u.Email(), u.PasswordHash(), u.Name(), u.Role())
	return r.runner.Track(committertest.Placeholder("users"), func() { r.Seed(snap) })
}

func (r *UserRepo) GetByEmail(_ context.Context, _ committer.Reader, email string) (*authdomain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.rows[authdomain.NormalizeEmail(email)]
	if !ok {
		return nil, authdomain.ErrUserNotFound
	}
	return authdomain.ReconstructUser(u.ID(), u.Email(), u.PasswordHash(), u.Name(), u.Role()), nil
}

// Len returns the number of stored users.
func (r *UserRepo) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}
