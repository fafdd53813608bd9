package models

import "time"

// Product is a catalog item. The primary key is the supplier article code
// (cod_art) carried verbatim from the import feed, so re-imports merge
// instead of duplicating.
type Product struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Price     float64   `gorm:"not null" json:"price"`
	Quantity  int       `gorm:"not null;default:0" json:"quantity"`
	Mass      *string   `json:"mass,omitempty"`
	Type      int       `gorm:"index" json:"type"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
