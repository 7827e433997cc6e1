package services

import (
	"errors"

	"github.com/Nomet5/cake-app-sub001/entity"
	"github.com/Nomet5/cake-app-sub001/pkg/apperr"

	"gorm.io/gorm"
)

// Line-item mutations and the total recalculation run inside one
// transaction so concurrent edits cannot leave subtotal/totalAmount
// inconsistent with the lines.

// AddItem puts quantity of a product on the order. Adding a product that is
// already on the order increments the existing line (merge semantics)
// instead of creating a second row.
func (s *OrderService) AddItem(orderID, productID uint, quantity int) (*entity.OrderItem, error) {
	if quantity < 1 {
		return nil, apperr.Validation("quantity must be at least 1")
	}

	if _, err := s.Get(orderID); err != nil {
		return nil, err
	}

	product, err := s.ProdRepo.FindByID(productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("product", productID)
	}
	if err != nil {
		return nil, err
	}
	if !product.IsAvailable {
		return nil, apperr.DomainRule("product %q is not available", product.Name)
	}

	var line *entity.OrderItem
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		existing, err := s.Repo.FindItem(tx, orderID, productID)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			line = &entity.OrderItem{
				OrderID:    orderID,
				ProductID:  productID,
				Quantity:   quantity,
				UnitPrice:  product.Price, // snapshot, not a live reference
				TotalPrice: product.Price * int64(quantity),
			}
			if err := s.Repo.CreateOrderItem(tx, line); err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			existing.Quantity += quantity
			existing.TotalPrice = existing.UnitPrice * int64(existing.Quantity)
			if err := s.Repo.SaveOrderItem(tx, existing); err != nil {
				return err
			}
			line = existing
		}

		return s.recalcTotals(tx, orderID)
	})
	if err != nil {
		return nil, err
	}
	return line, nil
}

// RemoveItem deletes a line and recalculates the parent order's totals.
func (s *OrderService) RemoveItem(orderID, itemID uint) error {
	if _, err := s.Get(orderID); err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		item, err := s.Repo.GetOrderItem(tx, itemID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("order item", itemID)
		}
		if err != nil {
			return err
		}
		if item.OrderID != orderID {
			return apperr.NotFound("order item", itemID)
		}

		if err := s.Repo.DeleteOrderItem(tx, itemID); err != nil {
			return err
		}

		return s.recalcTotals(tx, orderID)
	})
}

// recalcTotals re-sums every current line and persists subtotal and
// totalAmount. Full re-sum, so it is idempotent regardless of how many
// times it runs.
func (s *OrderService) recalcTotals(tx *gorm.DB, orderID uint) error {
	subtotal, err := s.Repo.SumItems(tx, orderID)
	if err != nil {
		return err
	}

	var o entity.Order
	if err := tx.Select("id, delivery_fee").First(&o, orderID).Error; err != nil {
		return err
	}

	return s.Repo.UpdateTotals(tx, orderID, subtotal, subtotal+o.DeliveryFee)
}
