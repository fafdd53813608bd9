package engine

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfStock            = errors.New("Out of stock")
	ErrItemNotInCart         = errors.New("Item not in cart")
	ErrProductNotInCart      = errors.New("Product not in cart")
	ErrUserOrProductNotFound = errors.New("User or product not found")
	ErrUserNotFound          = errors.New("User not found")
	ErrEmptyCart             = errors.New("Cart is empty")
)

// InsufficientStockError identifies which line made an order fail. The
// cart route deliberately swallows the product id into a generic message;
// it still gets logged server-side.
type InsufficientStockError struct {
	ProductID string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Not enough stock for product %s", e.ProductID)
}
