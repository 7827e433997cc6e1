package services

import (
	"errors"

	"github.com/Nomet5/cake-app-sub001/entity"
	"github.com/Nomet5/cake-app-sub001/pkg/apperr"
	"github.com/Nomet5/cake-app-sub001/repository"

	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	ProdRepo *repository.ProductRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, pr *repository.ProductRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, ProdRepo: pr}
}

type AddToCartIn struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"min=1"`
}

func (s *CartService) Get(userID uint) (*entity.Cart, int64, error) {
	c, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, 0, err
	}
	var subtotal int64
	for _, it := range c.Items {
		subtotal += it.Total
	}
	return c, subtotal, nil
}

func (s *CartService) Add(userID uint, in *AddToCartIn) error {
	if in.Quantity <= 0 {
		in.Quantity = 1
	}

	product, err := s.ProdRepo.FindByID(in.ProductID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("product", in.ProductID)
	}
	if err != nil {
		return err
	}
	if !product.IsAvailable {
		return apperr.DomainRule("product %q is not available", product.Name)
	}

	c, err := s.CartRepo.GetOrCreateCart(userID)
	if err != nil {
		return err
	}

	// one chef per cart; a cleared cart unlocks
	if c.ChefID != 0 && c.ChefID != product.ChefID {
		return apperr.DomainRule("cart already holds products from another chef")
	}
	if c.ChefID == 0 {
		if err := s.CartRepo.SetChef(c, product.ChefID); err != nil {
			return err
		}
	}

	line := &entity.CartItem{
		ProductID: product.ID,
		Quantity:  in.Quantity,
		UnitPrice: product.Price,
		Total:     product.Price * int64(in.Quantity),
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertItem(tx, c.ID, line)
	})
}

func (s *CartService) UpdateQty(userID, itemID uint, qty int) error {
	if qty < 1 {
		return apperr.Validation("quantity must be at least 1")
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		err := s.CartRepo.UpdateQty(tx, userID, itemID, qty)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("cart item", itemID)
		}
		return err
	})
}

func (s *CartService) Remove(userID, itemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		err := s.CartRepo.RemoveItem(tx, userID, itemID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("cart item", itemID)
		}
		return err
	})
}

func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, userID)
	})
}
