// Package memstore is an in-memory store.Store used by tests. A single mutex
// serializes transactions and every transaction works on a deep copy of the
// state, committed only when the closure succeeds, so a failed transaction
// leaves nothing behind.
package memstore

import (
	"context"
	"sync"

	"github.com/LorinczNorbertAttila/L-and-E/models"
	"github.com/LorinczNorbertAttila/L-and-E/store"
)

type state struct {
	users    map[string]models.User
	products map[string]models.Product
	carts    map[string][]models.CartItem
	orders   map[string]models.Order
}

func (s *state) clone() *state {
	next := newState()
	for k, v := range s.users {
		next.users[k] = v
	}
	for k, v := range s.products {
		next.products[k] = v
	}
	for k, v := range s.carts {
		items := make([]models.CartItem, len(v))
		copy(items, v)
		next.carts[k] = items
	}
	for k, v := range s.orders {
		items := make([]models.OrderItem, len(v.Items))
		copy(items, v.Items)
		v.Items = items
		next.orders[k] = v
	}
	return next
}

func newState() *state {
	return &state{
		users:    make(map[string]models.User),
		products: make(map[string]models.Product),
		carts:    make(map[string][]models.CartItem),
		orders:   make(map[string]models.Order),
	}
}

type Store struct {
	mu sync.Mutex
	st *state
}

func New() *Store {
	return &Store{st: newState()}
}

// SeedUser and SeedProduct set up fixtures outside any transaction.
func (s *Store) SeedUser(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.users[u.ID] = u
}

func (s *Store) SeedProduct(p models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.products[p.ID] = p
}

// DeleteProduct drops a product record, for exercising vanished-product
// projections in tests.
func (s *Store) DeleteProduct(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.st.products, id)
}

// Product returns the current product record, for assertions.
func (s *Store) Product(id string) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.st.products[id]
	return p, ok
}

// Orders returns all order documents, for assertions.
func (s *Store) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	var orders []models.Order
	for _, o := range s.st.orders {
		orders = append(orders, o)
	}
	return orders
}

func (s *Store) WithTransaction(ctx context.Context, fn func(tx store.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	staged := s.st.clone()
	if err := fn(&memTx{st: staged}); err != nil {
		return err
	}
	s.st = staged
	return nil
}

func (s *Store) GetUser(ctx context.Context, uid string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return getUser(s.st, uid)
}

func (s *Store) GetCart(ctx context.Context, uid string) ([]models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return getCart(s.st, uid), nil
}

func (s *Store) GetProductsByIDs(ctx context.Context, ids []string) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var products []models.Product
	for _, chunk := range store.ChunkIDs(ids, store.ChunkSize) {
		for _, id := range chunk {
			if p, ok := s.st.products[id]; ok {
				products = append(products, p)
			}
		}
	}
	return products, nil
}

type memTx struct {
	st *state
}

func (t *memTx) GetUser(uid string) (*models.User, error) {
	return getUser(t.st, uid)
}

func (t *memTx) GetCart(uid string) ([]models.CartItem, error) {
	return getCart(t.st, uid), nil
}

func (t *memTx) GetProduct(id string) (*models.Product, error) {
	p, ok := t.st.products[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &p, nil
}

func (t *memTx) PutCart(uid string, items []models.CartItem) error {
	staged := make([]models.CartItem, len(items))
	copy(staged, items)
	for i := range staged {
		staged[i].UserID = uid
	}
	t.st.carts[uid] = staged
	return nil
}

func (t *memTx) DecrementStock(productID string, by int) error {
	p, ok := t.st.products[productID]
	if !ok {
		return store.ErrNotFound
	}
	p.Quantity -= by
	t.st.products[productID] = p
	return nil
}

func (t *memTx) PutOrder(order *models.Order) error {
	items := make([]models.OrderItem, len(order.Items))
	copy(items, order.Items)
	staged := *order
	staged.Items = items
	t.st.orders[order.ID] = staged
	return nil
}

func (t *memTx) ClearCart(uid string) error {
	delete(t.st.carts, uid)
	return nil
}

func getUser(st *state, uid string) (*models.User, error) {
	u, ok := st.users[uid]
	if !ok {
		return nil, store.ErrNotFound
	}
	u.Cart = getCart(st, uid)
	return &u, nil
}

func getCart(st *state, uid string) []models.CartItem {
	items := st.carts[uid]
	out := make([]models.CartItem, len(items))
	copy(out, items)
	return out
}
