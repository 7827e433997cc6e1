package services

import (
	"testing"

	"github.com/Nomet5/cake-app-sub001/entity"
	"github.com/Nomet5/cake-app-sub001/pkg/apperr"
	"github.com/Nomet5/cake-app-sub001/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteProduct_GuardNamesAllFourCollections(t *testing.T) {
	db := newTestDB(t)
	chef := seedChef(t, db, true)
	user := seedUser(t, db)
	order := seedOrder(t, db, user.ID, chef.ID, 300)
	product := seedProduct(t, db, chef.ID, 450, true)

	// populate every dependent collection
	orderSvc := newOrderService(db, nopNotifier{})
	_, err := orderSvc.AddItem(order.ID, product.ID, 1)
	require.NoError(t, err)
	require.NoError(t, db.Create(&entity.Review{
		Rating: 4, ProductID: product.ID, UserID: user.ID, OrderID: order.ID, ChefID: chef.ID,
	}).Error)
	cartSvc := NewCartService(db, repository.NewCartRepository(db), repository.NewProductRepository(db))
	require.NoError(t, cartSvc.Add(user.ID, &AddToCartIn{ProductID: product.ID, Quantity: 1}))

	svc := NewProductService(db, repository.NewProductRepository(db), nopNotifier{})
	_, err = svc.AddImage(product.ID, "https://img.local/cake.jpg", true)
	require.NoError(t, err)

	err = svc.Delete(product.ID)
	require.Error(t, err)
	kind, _ := apperr.KindOf(err)
	assert.Equal(t, apperr.KindConflict, kind)
	assert.Contains(t, err.Error(), "order item")
	assert.Contains(t, err.Error(), "review")
	assert.Contains(t, err.Error(), "cart item")
	assert.Contains(t, err.Error(), "image")

	// nothing was deleted
	var count int64
	require.NoError(t, db.Model(&entity.Product{}).Where("id = ?", product.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestDeleteProduct_CleanProductSucceeds(t *testing.T) {
	db := newTestDB(t)
	chef := seedChef(t, db, true)
	product := seedProduct(t, db, chef.ID, 450, true)

	svc := NewProductService(db, repository.NewProductRepository(db), nopNotifier{})
	require.NoError(t, svc.Delete(product.ID))

	_, err := svc.Get(product.ID)
	kind, _ := apperr.KindOf(err)
	assert.Equal(t, apperr.KindNotFound, kind)
}

func TestProductValidationAndAvailability(t *testing.T) {
	db := newTestDB(t)
	chef := seedChef(t, db, true)
	product := seedProduct(t, db, chef.ID, 450, true)

	svc := NewProductService(db, repository.NewProductRepository(db), nopNotifier{})

	err := svc.Create(&entity.Product{Price: 100})
	kind, _ := apperr.KindOf(err)
	assert.Equal(t, apperr.KindValidation, kind)

	err = svc.Create(&entity.Product{Name: "x", Price: -1})
	kind, _ = apperr.KindOf(err)
	assert.Equal(t, apperr.KindValidation, kind)

	require.NoError(t, svc.SetAvailability(product.ID, false))
	got, err := svc.Get(product.ID)
	require.NoError(t, err)
	assert.False(t, got.IsAvailable)

	err = svc.SetAvailability(9999, false)
	kind, _ = apperr.KindOf(err)
	assert.Equal(t, apperr.KindNotFound, kind)
}
