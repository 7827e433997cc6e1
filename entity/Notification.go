package entity

import (
	"gorm.io/gorm"
)

// Notification types
const (
	NotifNewOrder      = "new_order"
	NotifOrderStatus   = "order_status"
	NotifPaymentStatus = "payment_status"
	NotifNewReview     = "new_review"
	NotifSystem        = "system"
)

type Notification struct {
	gorm.Model
	Type     string `gorm:"size:32;not null" json:"type"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Severity string `gorm:"size:16;default:info" json:"severity"`
	IsRead   bool   `gorm:"default:false" json:"isRead"`

	OrderID *uint  `json:"orderId,omitempty"`
	Order   *Order `json:"-"`
}
