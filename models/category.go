package models

type Category struct {
	ID       int    `gorm:"primaryKey" json:"id"` // matches Product.Type
	Name     string `gorm:"unique;not null" json:"name"`
	ImageURL string `json:"imageUrl"`
}
