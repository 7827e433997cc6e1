package services

import (
	"strings"
	"testing"

	"github.com/Nomet5/cake-app-sub001/entity"
	"github.com/Nomet5/cake-app-sub001/pkg/apperr"
	"github.com/Nomet5/cake-app-sub001/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckout_FromCart(t *testing.T) {
	db := newTestDB(t)
	chef := seedChef(t, db, true)
	user := seedUser(t, db)
	product := seedProduct(t, db, chef.ID, 850, true)

	cartSvc := NewCartService(db, repository.NewCartRepository(db), repository.NewProductRepository(db))
	require.NoError(t, cartSvc.Add(user.ID, &AddToCartIn{ProductID: product.ID, Quantity: 1}))

	notifier := new(MockNotifier)
	notifier.On("NewOrder", mock.AnythingOfType("*entity.Order")).Once()

	svc := newOrderService(db, notifier)
	out, err := svc.Checkout(user.ID, &CheckoutReq{Address: "12 Flour St"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out.OrderNumber, "ORD-"))
	assert.Equal(t, int64(1150), out.TotalAmount) // 850 + 300 flat fee
	notifier.AssertExpectations(t)

	got := reload(t, db, out.ID)
	assert.Equal(t, entity.OrderPending, got.Status)
	assert.Equal(t, entity.PaymentPending, got.PaymentStatus)
	assert.Equal(t, "12 Flour St", got.DeliveryAddress)

	// cart is cleared afterwards
	cart, subtotal, err := cartSvc.Get(user.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Zero(t, subtotal)
}

func TestCheckout_EmptyCartAndInactiveChef(t *testing.T) {
	db := newTestDB(t)
	chef := seedChef(t, db, true)
	user := seedUser(t, db)
	product := seedProduct(t, db, chef.ID, 400, true)

	svc := newOrderService(db, nopNotifier{})

	_, err := svc.Checkout(user.ID, &CheckoutReq{Address: "x"})
	kind, _ := apperr.KindOf(err)
	assert.Equal(t, apperr.KindValidation, kind)

	cartSvc := NewCartService(db, repository.NewCartRepository(db), repository.NewProductRepository(db))
	require.NoError(t, cartSvc.Add(user.ID, &AddToCartIn{ProductID: product.ID, Quantity: 1}))

	// chef deactivated between add-to-cart and checkout
	require.NoError(t, db.Model(&entity.Chef{}).Where("id = ?", chef.ID).Update("is_active", false).Error)

	_, err = svc.Checkout(user.ID, &CheckoutReq{Address: "x"})
	kind, _ = apperr.KindOf(err)
	assert.Equal(t, apperr.KindDomainRule, kind)
}

func TestDeleteOrder_GuardListsEveryViolation(t *testing.T) {
	db := newTestDB(t)
	chef := seedChef(t, db, true)
	user := seedUser(t, db)
	order := seedOrder(t, db, user.ID, chef.ID, 300)
	product := seedProduct(t, db, chef.ID, 100, true)

	svc := newOrderService(db, nopNotifier{})
	_, err := svc.AddItem(order.ID, product.ID, 1)
	require.NoError(t, err)
	require.NoError(t, db.Create(&entity.Review{
		Rating: 5, ProductID: product.ID, UserID: user.ID, OrderID: order.ID, ChefID: chef.ID,
	}).Error)

	err = svc.Delete(order.ID)
	require.Error(t, err)
	kind, _ := apperr.KindOf(err)
	assert.Equal(t, apperr.KindConflict, kind)
	assert.Contains(t, err.Error(), "item")
	assert.Contains(t, err.Error(), "review")

	// the order must still be there
	assert.NotNil(t, reload(t, db, order.ID))
}

func TestDeleteOrder_CleanOrderSucceeds(t *testing.T) {
	db := newTestDB(t)
	chef := seedChef(t, db, true)
	user := seedUser(t, db)
	order := seedOrder(t, db, user.ID, chef.ID, 300)

	notifier := new(MockNotifier)
	notifier.On("System", "Order deleted", mock.Anything, "info").Once()

	svc := newOrderService(db, notifier)
	require.NoError(t, svc.Delete(order.ID))

	var count int64
	require.NoError(t, db.Model(&entity.Order{}).Where("id = ?", order.ID).Count(&count).Error)
	assert.Zero(t, count)
	notifier.AssertExpectations(t)
}

func TestListAll_RejectsUnknownFilterValues(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db, nopNotifier{})

	_, err := svc.ListAll(repository.OrderFilter{Status: "SHIPPED"}, 1, 20)
	kind, _ := apperr.KindOf(err)
	assert.Equal(t, apperr.KindValidation, kind)

	_, err = svc.ListAll(repository.OrderFilter{PaymentStatus: "VOIDED"}, 1, 20)
	kind, _ = apperr.KindOf(err)
	assert.Equal(t, apperr.KindValidation, kind)
}

func TestListAll_FiltersByStatusAndChef(t *testing.T) {
	db := newTestDB(t)
	chef1 := seedChef(t, db, true)
	chef2 := seedChef(t, db, true)
	user := seedUser(t, db)

	svc := newOrderService(db, nopNotifier{})

	o1 := seedOrder(t, db, user.ID, chef1.ID, 300)
	seedOrder(t, db, user.ID, chef2.ID, 300)
	require.NoError(t, svc.UpdateStatus(o1.ID, entity.OrderConfirmed))

	out, err := svc.ListAll(repository.OrderFilter{Status: string(entity.OrderConfirmed)}, 1, 20)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, o1.ID, out.Items[0].ID)

	out, err = svc.ListAll(repository.OrderFilter{}, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), out.Total)
}
