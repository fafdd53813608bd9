// Package store abstracts the transactional document store the cart and
// order engines run against. The contract mirrors an optimistic document
// transaction: everything inside the WithTransaction closure commits
// atomically or not at all, and reads taken through the Tx are stable for
// the duration of the transaction.
package store

import (
	"context"
	"errors"

	"github.com/LorinczNorbertAttila/L-and-E/models"
)

// ErrNotFound is returned for reads of absent users or products.
var ErrNotFound = errors.New("record not found")

// ChunkSize is the maximum number of ids a single multi-key lookup may carry.
// Kept small on purpose: it matches the IN-clause limits of hosted document
// stores, so the chunking pattern stays exercised regardless of backend.
const ChunkSize = 10

// Tx is the handle available inside a transaction. Product reads through a Tx
// lock the row until commit, so concurrent stock checks serialize.
type Tx interface {
	// GetUser returns ErrNotFound when the user document is absent.
	GetUser(uid string) (*models.User, error)
	// GetCart returns the user's cart lines; an absent user yields an
	// empty cart, not an error.
	GetCart(uid string) ([]models.CartItem, error)
	// GetProduct returns ErrNotFound when the product is absent.
	GetProduct(id string) (*models.Product, error)
	// PutCart replaces the user's cart with the given lines.
	PutCart(uid string, items []models.CartItem) error
	// DecrementStock lowers the product's quantity-on-hand by the given
	// amount. Callers validate availability first, inside the same
	// transaction.
	DecrementStock(productID string, by int) error
	// PutOrder stages a new order document with its embedded items.
	PutOrder(order *models.Order) error
	// ClearCart removes every cart line of the user.
	ClearCart(uid string) error
}

// Store is the engine-facing persistence surface. Mutations happen only
// through WithTransaction; the plain reads exist for the detailed-cart
// projection and route handlers.
type Store interface {
	WithTransaction(ctx context.Context, fn func(tx Tx) error) error
	GetUser(ctx context.Context, uid string) (*models.User, error)
	GetCart(ctx context.Context, uid string) ([]models.CartItem, error)
	// GetProductsByIDs fetches products in chunks of at most ChunkSize ids,
	// issued in parallel. Missing ids are simply absent from the result.
	GetProductsByIDs(ctx context.Context, ids []string) ([]models.Product, error)
}

// ChunkIDs partitions ids into slices of at most size elements.
func ChunkIDs(ids []string, size int) [][]string {
	if size <= 0 {
		size = ChunkSize
	}
	var chunks [][]string
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		chunks = append(chunks, ids[start:end])
	}
	return chunks
}
