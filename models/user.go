package models

import "time"

type User struct {
	ID        string     `gorm:"primaryKey" json:"id"` // Firebase uid
	Email     string     `gorm:"unique;not null" json:"email"`
	Name      string     `json:"name"`
	Tel       string     `json:"tel"`
	Address   string     `json:"address"`
	Img       string     `json:"img"`
	Cart      []CartItem `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cart"`
	Favorites []Favorite `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"favorites"`
	CreatedAt time.Time  `json:"createdAt"`
}

type Favorite struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	UserID    string `gorm:"index:idx_fav_user_product,unique" json:"-"`
	ProductID string `gorm:"index:idx_fav_user_product,unique" json:"productId"`
}
