package models

import "time"

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Procesare"           // placed, being prepared
	OrderStatusInDelivery OrderStatus = "În curs de livrare"  // handed to the courier
	OrderStatusShipped    OrderStatus = "Expediată"           // left the warehouse
	OrderStatusCompleted  OrderStatus = "Finalizată"          // delivered and closed
	OrderStatusCancelled  OrderStatus = "Anulată"             // cancelled by admin
)

// Order is immutable once created except for admin-driven status changes.
type Order struct {
	ID        string      `gorm:"primaryKey" json:"id"`
	UserID    string      `gorm:"index;not null" json:"userId"`
	Items     []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Total     float64     `json:"total"`
	Status    OrderStatus `gorm:"type:VARCHAR(32);default:'Procesare'" json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}

// OrderItem captures the unit price at order time; it is never re-read from
// the current product price.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"-"`
	OrderID   string  `gorm:"index" json:"-"`
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}
