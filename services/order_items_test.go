package services

import (
	"testing"

	"github.com/Nomet5/cake-app-sub001/entity"
	"github.com/Nomet5/cake-app-sub001/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItem_SnapshotsPriceAndRecalculates(t *testing.T) {
	db := newTestDB(t)
	chef := seedChef(t, db, true)
	user := seedUser(t, db)
	order := seedOrder(t, db, user.ID, chef.ID, 300)
	product := seedProduct(t, db, chef.ID, 850, true)

	svc := newOrderService(db, nopNotifier{})

	item, err := svc.AddItem(order.ID, product.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(850), item.UnitPrice)
	assert.Equal(t, int64(850), item.TotalPrice)

	got := reload(t, db, order.ID)
	assert.Equal(t, int64(850), got.Subtotal)
	assert.Equal(t, int64(1150), got.TotalAmount) // 850 + 300 fee

	// later price changes must not affect the snapshot
	require.NoError(t, db.Model(&entity.Product{}).Where("id = ?", product.ID).Update("price", 999).Error)
	require.NoError(t, svc.RemoveItem(order.ID, item.ID))
	item2, err := svc.AddItem(order.ID, product.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(999), item2.UnitPrice) // new snapshot, old one was not live
}

func TestAddItem_MergesDuplicateProduct(t *testing.T) {
	db := newTestDB(t)
	chef := seedChef(t, db, true)
	user := seedUser(t, db)
	order := seedOrder(t, db, user.ID, chef.ID, 300)
	product := seedProduct(t, db, chef.ID, 200, true)

	svc := newOrderService(db, nopNotifier{})

	_, err := svc.AddItem(order.ID, product.ID, 2)
	require.NoError(t, err)
	_, err = svc.AddItem(order.ID, product.ID, 3)
	require.NoError(t, err)

	var items []entity.OrderItem
	require.NoError(t, db.Where("order_id = ?", order.ID).Find(&items).Error)
	require.Len(t, items, 1) // one row, not two
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, int64(1000), items[0].TotalPrice)

	got := reload(t, db, order.ID)
	assert.Equal(t, int64(1000), got.Subtotal)
	assert.Equal(t, int64(1300), got.TotalAmount)
}

func TestAddItem_Guards(t *testing.T) {
	db := newTestDB(t)
	chef := seedChef(t, db, true)
	user := seedUser(t, db)
	order := seedOrder(t, db, user.ID, chef.ID, 300)
	unavailable := seedProduct(t, db, chef.ID, 500, false)

	svc := newOrderService(db, nopNotifier{})

	_, err := svc.AddItem(999, unavailable.ID, 1)
	kind, _ := apperr.KindOf(err)
	assert.Equal(t, apperr.KindNotFound, kind)

	_, err = svc.AddItem(order.ID, 999, 1)
	kind, _ = apperr.KindOf(err)
	assert.Equal(t, apperr.KindNotFound, kind)

	_, err = svc.AddItem(order.ID, unavailable.ID, 1)
	kind, _ = apperr.KindOf(err)
	assert.Equal(t, apperr.KindDomainRule, kind)

	_, err = svc.AddItem(order.ID, unavailable.ID, 0)
	kind, _ = apperr.KindOf(err)
	assert.Equal(t, apperr.KindValidation, kind)
}

func TestRemoveItem_RecalculatesFromRemainingLines(t *testing.T) {
	db := newTestDB(t)
	chef := seedChef(t, db, true)
	user := seedUser(t, db)
	order := seedOrder(t, db, user.ID, chef.ID, 300)
	p1 := seedProduct(t, db, chef.ID, 500, true)
	p2 := seedProduct(t, db, chef.ID, 350, true)

	svc := newOrderService(db, nopNotifier{})

	i1, err := svc.AddItem(order.ID, p1.ID, 1)
	require.NoError(t, err)
	_, err = svc.AddItem(order.ID, p2.ID, 1)
	require.NoError(t, err)

	got := reload(t, db, order.ID)
	require.Equal(t, int64(850), got.Subtotal)
	require.Equal(t, int64(1150), got.TotalAmount)

	require.NoError(t, svc.RemoveItem(order.ID, i1.ID))

	got = reload(t, db, order.ID)
	assert.Equal(t, int64(350), got.Subtotal)
	assert.Equal(t, int64(650), got.TotalAmount)

	// missing item
	err = svc.RemoveItem(order.ID, 9999)
	kind, _ := apperr.KindOf(err)
	assert.Equal(t, apperr.KindNotFound, kind)

	// item belonging to another order is not reachable
	other := seedOrder(t, db, user.ID, chef.ID, 300)
	i3, err := svc.AddItem(other.ID, p1.ID, 1)
	require.NoError(t, err)
	err = svc.RemoveItem(order.ID, i3.ID)
	kind, _ = apperr.KindOf(err)
	assert.Equal(t, apperr.KindNotFound, kind)
}

// The invariant holds after any sequence of add/remove operations.
func TestTotalsInvariantAcrossMutationSequence(t *testing.T) {
	db := newTestDB(t)
	chef := seedChef(t, db, true)
	user := seedUser(t, db)
	order := seedOrder(t, db, user.ID, chef.ID, 120)
	p1 := seedProduct(t, db, chef.ID, 75, true)
	p2 := seedProduct(t, db, chef.ID, 130, true)
	p3 := seedProduct(t, db, chef.ID, 40, true)

	svc := newOrderService(db, nopNotifier{})

	check := func() {
		t.Helper()
		var items []entity.OrderItem
		require.NoError(t, db.Where("order_id = ?", order.ID).Find(&items).Error)
		var sum int64
		for _, it := range items {
			assert.Equal(t, it.UnitPrice*int64(it.Quantity), it.TotalPrice)
			sum += it.TotalPrice
		}
		got := reload(t, db, order.ID)
		assert.Equal(t, sum, got.Subtotal)
		assert.Equal(t, got.Subtotal+got.DeliveryFee, got.TotalAmount)
	}

	i1, err := svc.AddItem(order.ID, p1.ID, 2)
	require.NoError(t, err)
	check()
	_, err = svc.AddItem(order.ID, p2.ID, 1)
	require.NoError(t, err)
	check()
	_, err = svc.AddItem(order.ID, p1.ID, 1)
	require.NoError(t, err)
	check()
	require.NoError(t, svc.RemoveItem(order.ID, i1.ID))
	check()
	_, err = svc.AddItem(order.ID, p3.ID, 4)
	require.NoError(t, err)
	check()
}
