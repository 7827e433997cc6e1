package services

import (
	"github.com/Nomet5/cake-app-sub001/entity"
)

// Notifier is the seam to the notification subsystem. Calls are best-effort:
// implementations must never fail the caller's primary mutation, so no
// method returns an error.
type Notifier interface {
	NewOrder(o *entity.Order)
	OrderStatusChanged(o *entity.Order, from, to entity.OrderStatus)
	PaymentChanged(o *entity.Order, to entity.PaymentStatus)
	System(title, body, severity string)
}
