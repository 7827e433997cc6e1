package entity

import (
	"gorm.io/gorm"
)

type Cart struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex" json:"userId"`
	ChefID uint `json:"chefId"` // 0 until the first item locks the chef

	Items []CartItem `gorm:"foreignKey:CartID" json:"items"`
}

type CartItem struct {
	gorm.Model
	Quantity  int   `json:"quantity"`
	UnitPrice int64 `json:"unitPrice"` // snapshot at add-time
	Total     int64 `json:"total"`

	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	ProductID uint    `json:"productId"`
	Product   Product `json:"-"`
}
