package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	OrderNumber string `gorm:"size:64;uniqueIndex;not null" json:"orderNumber"`

	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"deliveryFee"`
	TotalAmount int64 `json:"totalAmount"` // invariant: subtotal + deliveryFee

	Status        OrderStatus   `gorm:"size:20;not null;default:PENDING" json:"status"`
	PaymentStatus PaymentStatus `gorm:"size:20;not null;default:PENDING" json:"paymentStatus"`

	DeliveryAddress string `json:"deliveryAddress"`
	CancelReason    string `json:"cancelReason,omitempty"`

	UserID uint `json:"userId"`
	User   User `json:"-"` // preload only for order detail

	ChefID uint `json:"chefId"`
	Chef   Chef `json:"-"`

	Items   []OrderItem `gorm:"foreignKey:OrderID" json:"-"`
	Reviews []Review    `json:"-"`
}
