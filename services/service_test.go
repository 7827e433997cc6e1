package services

import (
	"fmt"
	"testing"

	"github.com/Nomet5/cake-app-sub001/configs"
	"github.com/Nomet5/cake-app-sub001/entity"
	"github.com/Nomet5/cake-app-sub001/repository"
	"github.com/Nomet5/cake-app-sub001/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a fresh in-memory store with the full schema. The named
// shared-cache DSN keeps the pool's connections on the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, configs.Migrate(db))
	return db
}

// MockNotifier records notification calls for assertions.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NewOrder(o *entity.Order) { m.Called(o) }
func (m *MockNotifier) OrderStatusChanged(o *entity.Order, from, to entity.OrderStatus) {
	m.Called(o, from, to)
}
func (m *MockNotifier) PaymentChanged(o *entity.Order, to entity.PaymentStatus) { m.Called(o, to) }
func (m *MockNotifier) System(title, body, severity string)                     { m.Called(title, body, severity) }

// nopNotifier is used where the test does not care about notifications.
type nopNotifier struct{}

func (nopNotifier) NewOrder(*entity.Order)                                                   {}
func (nopNotifier) OrderStatusChanged(*entity.Order, entity.OrderStatus, entity.OrderStatus) {}
func (nopNotifier) PaymentChanged(*entity.Order, entity.PaymentStatus)                       {}
func (nopNotifier) System(string, string, string)                                            {}

func newOrderService(db *gorm.DB, n Notifier) *OrderService {
	return NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewProductRepository(db),
		repository.NewChefRepository(db),
		n,
		300,
	)
}

// ----- fixtures -----

func seedChef(t *testing.T, db *gorm.DB, active bool) *entity.Chef {
	t.Helper()
	ch := &entity.Chef{Name: "Baker " + uuid.NewString()[:6], IsActive: active}
	require.NoError(t, db.Create(ch).Error)
	return ch
}

func seedProduct(t *testing.T, db *gorm.DB, chefID uint, price int64, available bool) *entity.Product {
	t.Helper()
	cat := &entity.Category{Name: "Cat " + uuid.NewString()[:6]}
	require.NoError(t, db.Create(cat).Error)
	p := &entity.Product{
		Name:        "Cake " + uuid.NewString()[:6],
		Price:       price,
		IsAvailable: available,
		ChefID:      chefID,
		CategoryID:  cat.ID,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func seedUser(t *testing.T, db *gorm.DB) *entity.User {
	t.Helper()
	u := &entity.User{Email: uuid.NewString() + "@test.local", Role: "customer"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedOrder(t *testing.T, db *gorm.DB, userID, chefID uint, deliveryFee int64) *entity.Order {
	t.Helper()
	o := &entity.Order{
		OrderNumber:   utils.NewOrderNumber(),
		UserID:        userID,
		ChefID:        chefID,
		Status:        entity.OrderPending,
		PaymentStatus: entity.PaymentPending,
		DeliveryFee:   deliveryFee,
		TotalAmount:   deliveryFee,
	}
	require.NoError(t, db.Create(o).Error)
	return o
}

// reload fetches the current order row.
func reload(t *testing.T, db *gorm.DB, id uint) *entity.Order {
	t.Helper()
	var o entity.Order
	require.NoError(t, db.First(&o, id).Error)
	return &o
}
