// Package engine holds the cart and order engines: every mutation of a
// user's cart or of product stock runs as one atomic transaction against the
// injected store, so concurrent requests over the same user or product
// serialize. Stock is only consumed at order placement; adding to a cart
// never reserves units.
package engine

import (
	"context"
	"errors"

	"github.com/LorinczNorbertAttila/L-and-E/models"
	"github.com/LorinczNorbertAttila/L-and-E/store"
)

type Engine struct {
	store store.Store
}

func New(s store.Store) *Engine {
	return &Engine{store: s}
}

// DetailedCart joins the user's raw cart against the product catalog.
// Lines whose product no longer exists are dropped silently. Read-only.
func (e *Engine) DetailedCart(ctx context.Context, uid string) ([]models.DetailedCartLine, error) {
	cart, err := e.store.GetCart(ctx, uid)
	if err != nil {
		return nil, err
	}
	return e.project(ctx, cart)
}

// Add puts one unit of the product into the user's cart, or increments the
// existing line. Fails with ErrOutOfStock when the cart would request more
// than the product's current stock; nothing is written in that case.
func (e *Engine) Add(ctx context.Context, uid, productID string) ([]models.DetailedCartLine, error) {
	err := e.store.WithTransaction(ctx, func(tx store.Tx) error {
		cart, err := tx.GetCart(uid)
		if err != nil {
			return err
		}
		product, err := tx.GetProduct(productID)
		if err != nil {
			return err
		}

		idx := findLine(cart, productID)
		currentQty := 0
		if idx >= 0 {
			currentQty = cart[idx].Quantity
		}
		if currentQty+1 > product.Quantity {
			return ErrOutOfStock
		}

		if idx >= 0 {
			cart[idx].Quantity++
		} else {
			cart = append(cart, models.CartItem{UserID: uid, ProductID: productID, Quantity: 1})
		}
		return tx.PutCart(uid, cart)
	})
	if err != nil {
		return nil, err
	}
	return e.DetailedCart(ctx, uid)
}

// UpdateQuantity applies a signed delta to an existing cart line. Increases
// are bounded by the product's remaining stock; a delta that drives the
// quantity to zero or below removes the line. change == 0 is a no-op write.
func (e *Engine) UpdateQuantity(ctx context.Context, uid, productID string, change int) ([]models.DetailedCartLine, error) {
	err := e.store.WithTransaction(ctx, func(tx store.Tx) error {
		user, err := tx.GetUser(uid)
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserOrProductNotFound
		}
		if err != nil {
			return err
		}
		product, err := tx.GetProduct(productID)
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserOrProductNotFound
		}
		if err != nil {
			return err
		}

		cart := user.Cart
		idx := findLine(cart, productID)
		if idx < 0 {
			return ErrItemNotInCart
		}

		if change > 0 {
			maxIncrease := product.Quantity - cart[idx].Quantity
			if change > maxIncrease {
				return ErrOutOfStock
			}
		}

		cart[idx].Quantity += change
		if cart[idx].Quantity <= 0 {
			cart = append(cart[:idx], cart[idx+1:]...)
		}
		return tx.PutCart(uid, cart)
	})
	if err != nil {
		return nil, err
	}
	return e.DetailedCart(ctx, uid)
}

// Remove deletes a line from the cart. A user without a document is treated
// as having an empty cart, so the failure surfaces as ErrProductNotInCart
// rather than a user-not-found error (kept from the original behavior).
func (e *Engine) Remove(ctx context.Context, uid, productID string) ([]models.DetailedCartLine, error) {
	err := e.store.WithTransaction(ctx, func(tx store.Tx) error {
		cart, err := tx.GetCart(uid)
		if err != nil {
			return err
		}
		idx := findLine(cart, productID)
		if idx < 0 {
			return ErrProductNotInCart
		}
		cart = append(cart[:idx], cart[idx+1:]...)
		return tx.PutCart(uid, cart)
	})
	if err != nil {
		return nil, err
	}
	return e.DetailedCart(ctx, uid)
}

func (e *Engine) project(ctx context.Context, cart []models.CartItem) ([]models.DetailedCartLine, error) {
	if len(cart) == 0 {
		return []models.DetailedCartLine{}, nil
	}

	ids := make([]string, 0, len(cart))
	for _, line := range cart {
		ids = append(ids, line.ProductID)
	}
	products, err := e.store.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	detailed := make([]models.DetailedCartLine, 0, len(cart))
	for _, line := range cart {
		product, ok := byID[line.ProductID]
		if !ok {
			continue
		}
		detailed = append(detailed, models.DetailedCartLine{Product: product, Quantity: line.Quantity})
	}
	return detailed, nil
}

func findLine(cart []models.CartItem, productID string) int {
	for i, line := range cart {
		if line.ProductID == productID {
			return i
		}
	}
	return -1
}
