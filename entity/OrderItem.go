package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Quantity   int   `gorm:"not null" json:"quantity"`
	UnitPrice  int64 `gorm:"not null" json:"unitPrice"` // product price snapshot at add-time
	TotalPrice int64 `gorm:"not null" json:"totalPrice"`

	// one row per (order, product): merge semantics are enforced by the
	// add-item lookup, not by a database constraint
	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`

	ProductID uint    `gorm:"index" json:"productId"`
	Product   Product `json:"-"` // preload only when the name is needed
}
