package services

import (
	"testing"

	"github.com/Nomet5/cake-app-sub001/entity"
	"github.com/Nomet5/cake-app-sub001/pkg/logger"
	"github.com/Nomet5/cake-app-sub001/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// captureHub records published notifications.
type captureHub struct {
	published []*entity.Notification
}

func (h *captureHub) Publish(n *entity.Notification) { h.published = append(h.published, n) }

func newNotificationService(db *gorm.DB, hub Broadcaster) *NotificationService {
	return NewNotificationService(repository.NewNotificationRepository(db), hub, logger.New("error", "text"))
}

func TestNotificationService_StoresAndBroadcasts(t *testing.T) {
	db := newTestDB(t)
	chef := seedChef(t, db, true)
	user := seedUser(t, db)
	order := seedOrder(t, db, user.ID, chef.ID, 300)

	hub := &captureHub{}
	svc := newNotificationService(db, hub)

	svc.NewOrder(order)
	svc.OrderStatusChanged(order, entity.OrderPending, entity.OrderConfirmed)
	svc.PaymentChanged(order, entity.PaymentFailed)
	svc.System("Maintenance", "store pausing at 18:00", "warning")

	items, err := svc.List(false, 50)
	require.NoError(t, err)
	require.Len(t, items, 4)
	require.Len(t, hub.published, 4)

	// newest first
	assert.Equal(t, entity.NotifSystem, items[0].Type)
	assert.Equal(t, entity.NotifPaymentStatus, items[1].Type)
	assert.Equal(t, "warning", items[1].Severity) // failed payments are warnings
	assert.Equal(t, entity.NotifOrderStatus, items[2].Type)
	assert.Equal(t, entity.NotifNewOrder, items[3].Type)
	require.NotNil(t, items[3].OrderID)
	assert.Equal(t, order.ID, *items[3].OrderID)
}

func TestNotificationService_MarkReadAndFilter(t *testing.T) {
	db := newTestDB(t)
	hub := &captureHub{}
	svc := newNotificationService(db, hub)

	svc.System("a", "", "info")
	svc.System("b", "", "info")

	items, err := svc.List(true, 50)
	require.NoError(t, err)
	require.Len(t, items, 2)

	require.NoError(t, svc.MarkRead(items[0].ID))

	items, err = svc.List(true, 50)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestNotificationService_NilHubIsFine(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db, nil)
	svc.System("no listeners", "", "info")

	items, err := svc.List(false, 50)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}
