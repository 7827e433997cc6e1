package services

import (
	"github.com/Nomet5/cake-app-sub001/entity"
	"github.com/Nomet5/cake-app-sub001/pkg/apperr"

	"gorm.io/gorm"
)

// Status transitions are membership-checked only: any recognized status may
// follow any other. Fulfillment and payment move independently.

// UpdateStatus sets the order's fulfillment status and emits one
// status-change notification when the value actually changes.
func (s *OrderService) UpdateStatus(orderID uint, status entity.OrderStatus) error {
	if !status.Valid() {
		return apperr.Validation("unrecognized status %q", status)
	}

	o, err := s.Get(orderID)
	if err != nil {
		return err
	}

	from := o.Status
	if from == status {
		return nil // no-op, no notification
	}

	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.UpdateStatus(tx, orderID, status)
	}); err != nil {
		return err
	}

	o.Status = status
	s.Notifier.OrderStatusChanged(o, from, status)
	return nil
}

// UpdatePaymentStatus follows the same shape with the four-value enum.
func (s *OrderService) UpdatePaymentStatus(orderID uint, status entity.PaymentStatus) error {
	if !status.Valid() {
		return apperr.Validation("unrecognized payment status %q", status)
	}

	o, err := s.Get(orderID)
	if err != nil {
		return err
	}

	if o.PaymentStatus == status {
		return nil
	}

	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.UpdatePaymentStatus(tx, orderID, status)
	}); err != nil {
		return err
	}

	o.PaymentStatus = status
	s.Notifier.PaymentChanged(o, status)
	return nil
}

// Cancel is the status transition restricted to CANCELLED. The reason is
// persisted alongside the order.
func (s *OrderService) Cancel(orderID uint, reason string) error {
	o, err := s.Get(orderID)
	if err != nil {
		return err
	}

	from := o.Status
	if from == entity.OrderCancelled {
		return nil
	}

	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.SetCancelled(tx, orderID, reason)
	}); err != nil {
		return err
	}

	o.Status = entity.OrderCancelled
	o.CancelReason = reason
	s.Notifier.OrderStatusChanged(o, from, entity.OrderCancelled)
	return nil
}
