package models

// CartItem is one line of a user's cart. The pair (UserID, ProductID) is
// unique; a line with quantity <= 0 is never persisted, it is removed instead.
type CartItem struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	UserID    string `gorm:"index:idx_cart_user_product,unique" json:"-"`
	ProductID string `gorm:"index:idx_cart_user_product,unique" json:"productId"`
	Quantity  int    `gorm:"not null" json:"quantity"`
}

// DetailedCartLine is the read-side projection of a cart line joined with the
// full product record, returned after every cart mutation.
type DetailedCartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}
