package repository

import (
	"errors"

	"github.com/Nomet5/cake-app-sub001/entity"

	"gorm.io/gorm"
)

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{DB: db}
}

func (r *CartRepository) GetOrCreateCart(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID}
		if err := r.DB.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CartRepository) GetCartWithItems(userID uint) (*entity.Cart, error) {
	c, err := r.GetOrCreateCart(userID)
	if err != nil {
		return nil, err
	}
	if err := r.DB.Where("cart_id = ?", c.ID).Find(&c.Items).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CartRepository) SetChef(c *entity.Cart, chefID uint) error {
	c.ChefID = chefID
	return r.DB.Save(c).Error
}

// UpsertItem merges into an existing line for the same product, otherwise
// inserts a new one.
func (r *CartRepository) UpsertItem(tx *gorm.DB, cartID uint, line *entity.CartItem) error {
	var existing entity.CartItem
	err := tx.Where("cart_id = ? AND product_id = ?", cartID, line.ProductID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		line.CartID = cartID
		return tx.Create(line).Error
	}
	if err != nil {
		return err
	}
	existing.Quantity += line.Quantity
	existing.Total = existing.UnitPrice * int64(existing.Quantity)
	return tx.Save(&existing).Error
}

func (r *CartRepository) UpdateQty(tx *gorm.DB, userID, itemID uint, qty int) error {
	var item entity.CartItem
	if err := tx.Joins("JOIN carts ON carts.id = cart_items.cart_id").
		Where("cart_items.id = ? AND carts.user_id = ?", itemID, userID).
		First(&item).Error; err != nil {
		return err
	}
	item.Quantity = qty
	item.Total = item.UnitPrice * int64(qty)
	return tx.Save(&item).Error
}

func (r *CartRepository) RemoveItem(tx *gorm.DB, userID, itemID uint) error {
	var item entity.CartItem
	if err := tx.Joins("JOIN carts ON carts.id = cart_items.cart_id").
		Where("cart_items.id = ? AND carts.user_id = ?", itemID, userID).
		First(&item).Error; err != nil {
		return err
	}
	return tx.Delete(&item).Error
}

// ClearCart removes every line and unlocks the chef.
func (r *CartRepository) ClearCart(tx *gorm.DB, userID uint) error {
	var c entity.Cart
	if err := tx.Where("user_id = ?", userID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if err := tx.Where("cart_id = ?", c.ID).Delete(&entity.CartItem{}).Error; err != nil {
		return err
	}
	return tx.Model(&c).Update("chef_id", 0).Error
}
