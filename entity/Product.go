package entity

import (
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Price       int64  `gorm:"not null" json:"price"` // minor units (satang)
	IsAvailable bool   `gorm:"default:true" json:"isAvailable"`

	ChefID uint `json:"chefId"`
	Chef   Chef `json:"-"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"`

	// all four are counted by the delete guard
	Images     []ProductImage `json:"-"`
	Reviews    []Review       `json:"-"`
	CartItems  []CartItem     `json:"-"`
	OrderItems []OrderItem    `json:"-"`
}
