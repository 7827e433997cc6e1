package services

import (
	"fmt"

	"github.com/Nomet5/cake-app-sub001/entity"
	"github.com/Nomet5/cake-app-sub001/repository"

	"github.com/sirupsen/logrus"
)

// Broadcaster pushes a stored notification to live listeners (ws hub).
type Broadcaster interface {
	Publish(n *entity.Notification)
}

// NotificationService persists notifications and fans them out. It
// implements Notifier; every failure is logged and swallowed.
type NotificationService struct {
	Repo *repository.NotificationRepository
	Hub  Broadcaster
	Log  *logrus.Logger
}

func NewNotificationService(repo *repository.NotificationRepository, hub Broadcaster, log *logrus.Logger) *NotificationService {
	return &NotificationService{Repo: repo, Hub: hub, Log: log}
}

func (s *NotificationService) emit(n *entity.Notification) {
	if err := s.Repo.Create(n); err != nil {
		s.Log.WithError(err).WithField("type", n.Type).Warn("store notification failed")
		return
	}
	if s.Hub != nil {
		s.Hub.Publish(n)
	}
}

func (s *NotificationService) NewOrder(o *entity.Order) {
	id := o.ID
	s.emit(&entity.Notification{
		Type:     entity.NotifNewOrder,
		Title:    "New order",
		Body:     fmt.Sprintf("order %s placed, total %d", o.OrderNumber, o.TotalAmount),
		Severity: "info",
		OrderID:  &id,
	})
}

func (s *NotificationService) OrderStatusChanged(o *entity.Order, from, to entity.OrderStatus) {
	id := o.ID
	s.emit(&entity.Notification{
		Type:     entity.NotifOrderStatus,
		Title:    "Order status changed",
		Body:     fmt.Sprintf("order %s: %s -> %s", o.OrderNumber, from, to),
		Severity: "info",
		OrderID:  &id,
	})
}

func (s *NotificationService) PaymentChanged(o *entity.Order, to entity.PaymentStatus) {
	id := o.ID
	severity := "info"
	if to == entity.PaymentFailed {
		severity = "warning"
	}
	s.emit(&entity.Notification{
		Type:     entity.NotifPaymentStatus,
		Title:    "Payment status changed",
		Body:     fmt.Sprintf("order %s payment: %s", o.OrderNumber, to),
		Severity: severity,
		OrderID:  &id,
	})
}

func (s *NotificationService) System(title, body, severity string) {
	if severity == "" {
		severity = "info"
	}
	s.emit(&entity.Notification{
		Type:     entity.NotifSystem,
		Title:    title,
		Body:     body,
		Severity: severity,
	})
}

// ----- admin feed -----

func (s *NotificationService) List(unreadOnly bool, limit int) ([]entity.Notification, error) {
	return s.Repo.List(unreadOnly, limit)
}

func (s *NotificationService) MarkRead(id uint) error {
	return s.Repo.MarkRead(id)
}
