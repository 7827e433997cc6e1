package services

import (
	"testing"

	"github.com/Nomet5/cake-app-sub001/entity"
	"github.com/Nomet5/cake-app-sub001/pkg/apperr"
	"github.com/Nomet5/cake-app-sub001/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewProductRepository(db))
}

func TestCartAdd_MergesSameProduct(t *testing.T) {
	db := newTestDB(t)
	chef := seedChef(t, db, true)
	user := seedUser(t, db)
	product := seedProduct(t, db, chef.ID, 250, true)

	svc := newCartService(db)
	require.NoError(t, svc.Add(user.ID, &AddToCartIn{ProductID: product.ID, Quantity: 1}))
	require.NoError(t, svc.Add(user.ID, &AddToCartIn{ProductID: product.ID, Quantity: 2}))

	cart, subtotal, err := svc.Get(user.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, int64(750), subtotal)
}

func TestCartAdd_LocksToOneChef(t *testing.T) {
	db := newTestDB(t)
	chef1 := seedChef(t, db, true)
	chef2 := seedChef(t, db, true)
	user := seedUser(t, db)
	p1 := seedProduct(t, db, chef1.ID, 100, true)
	p2 := seedProduct(t, db, chef2.ID, 100, true)

	svc := newCartService(db)
	require.NoError(t, svc.Add(user.ID, &AddToCartIn{ProductID: p1.ID, Quantity: 1}))

	err := svc.Add(user.ID, &AddToCartIn{ProductID: p2.ID, Quantity: 1})
	require.Error(t, err)
	kind, _ := apperr.KindOf(err)
	assert.Equal(t, apperr.KindDomainRule, kind)

	// clearing unlocks the chef
	require.NoError(t, svc.Clear(user.ID))
	require.NoError(t, svc.Add(user.ID, &AddToCartIn{ProductID: p2.ID, Quantity: 1}))
}

func TestCartAdd_UnavailableProduct(t *testing.T) {
	db := newTestDB(t)
	chef := seedChef(t, db, true)
	user := seedUser(t, db)
	product := seedProduct(t, db, chef.ID, 100, false)

	svc := newCartService(db)
	err := svc.Add(user.ID, &AddToCartIn{ProductID: product.ID, Quantity: 1})
	require.Error(t, err)
	kind, _ := apperr.KindOf(err)
	assert.Equal(t, apperr.KindDomainRule, kind)
}

func TestCartUpdateQtyAndRemove(t *testing.T) {
	db := newTestDB(t)
	chef := seedChef(t, db, true)
	user := seedUser(t, db)
	other := seedUser(t, db)
	product := seedProduct(t, db, chef.ID, 100, true)

	svc := newCartService(db)
	require.NoError(t, svc.Add(user.ID, &AddToCartIn{ProductID: product.ID, Quantity: 1}))

	cart, _, err := svc.Get(user.ID)
	require.NoError(t, err)
	itemID := cart.Items[0].ID

	require.NoError(t, svc.UpdateQty(user.ID, itemID, 4))
	var item entity.CartItem
	require.NoError(t, db.First(&item, itemID).Error)
	assert.Equal(t, 4, item.Quantity)
	assert.Equal(t, int64(400), item.Total)

	// another user cannot touch the line
	err = svc.UpdateQty(other.ID, itemID, 1)
	kind, _ := apperr.KindOf(err)
	assert.Equal(t, apperr.KindNotFound, kind)

	require.NoError(t, svc.Remove(user.ID, itemID))
	cart, subtotal, err := svc.Get(user.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Zero(t, subtotal)
}
