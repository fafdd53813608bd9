package engine

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/LorinczNorbertAttila/L-and-E/models"
	"github.com/LorinczNorbertAttila/L-and-E/store"
)

// PlaceOrder converts the user's current cart into an immutable order:
// every line's stock is validated and decremented, the order is created and
// the cart cleared, all in one transaction. If any line is short on stock
// the whole transaction aborts with no partial effect. The total is taken
// from the caller as-is.
func (e *Engine) PlaceOrder(ctx context.Context, uid string, total float64) (*models.Order, []models.DetailedCartLine, error) {
	user, err := e.store.GetUser(ctx, uid)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil, ErrUserNotFound
	}
	if err != nil {
		return nil, nil, err
	}
	if len(user.Cart) == 0 {
		return nil, nil, ErrEmptyCart
	}

	order := &models.Order{
		ID:        uuid.NewString(),
		UserID:    uid,
		Total:     total,
		Status:    models.OrderStatusProcessing,
		CreatedAt: time.Now(),
	}

	err = e.store.WithTransaction(ctx, func(tx store.Tx) error {
		cart, err := tx.GetCart(uid)
		if err != nil {
			return err
		}
		if len(cart) == 0 {
			return ErrEmptyCart
		}

		items := make([]models.OrderItem, 0, len(cart))
		for _, line := range cart {
			product, err := tx.GetProduct(line.ProductID)
			if err != nil {
				return err
			}
			if product.Quantity < line.Quantity {
				return &InsufficientStockError{ProductID: line.ProductID}
			}
			items = append(items, models.OrderItem{
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				UnitPrice: product.Price, // price captured at order time
			})
			if err := tx.DecrementStock(line.ProductID, line.Quantity); err != nil {
				return err
			}
		}

		order.Items = items
		if err := tx.PutOrder(order); err != nil {
			return err
		}
		return tx.ClearCart(uid)
	})
	if err != nil {
		return nil, nil, err
	}

	detailed, err := e.DetailedCart(ctx, uid)
	if err != nil {
		return nil, nil, err
	}
	return order, detailed, nil
}
