package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Nomet5/cake-app-sub001/entity"
	"github.com/Nomet5/cake-app-sub001/pkg/apperr"
	"github.com/Nomet5/cake-app-sub001/repository"
	"github.com/Nomet5/cake-app-sub001/utils"

	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	ProdRepo *repository.ProductRepository
	ChefRepo *repository.ChefRepository
	Notifier Notifier

	DeliveryFee int64 // flat fee from config
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	prodRepo *repository.ProductRepository,
	chefRepo *repository.ChefRepository,
	notifier Notifier,
	deliveryFee int64,
) *OrderService {
	return &OrderService{
		DB:          db,
		Repo:        repo,
		CartRepo:    cartRepo,
		ProdRepo:    prodRepo,
		ChefRepo:    chefRepo,
		Notifier:    notifier,
		DeliveryFee: deliveryFee,
	}
}

// ----- DTOs from Controller -----

type CheckoutReq struct {
	Address string `json:"address" binding:"required"`
}

type CheckoutRes struct {
	ID          uint   `json:"id"`
	OrderNumber string `json:"orderNumber"`
	TotalAmount int64  `json:"totalAmount"`
}

// Checkout turns the user's cart into an order: snapshots the lines,
// computes totals, clears the cart. One transaction end to end.
func (s *OrderService) Checkout(userID uint, req *CheckoutReq) (*CheckoutRes, error) {
	cart, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, apperr.Validation("cart is empty")
	}
	if cart.ChefID == 0 {
		return nil, apperr.Validation("cart has no chef")
	}

	chef, err := s.ChefRepo.FindByID(cart.ChefID)
	if err != nil {
		return nil, apperr.NotFound("chef", cart.ChefID)
	}
	if !chef.IsActive {
		return nil, apperr.DomainRule("chef %q is not accepting orders", chef.Name)
	}

	var subtotal int64
	for _, it := range cart.Items {
		subtotal += it.Total
	}
	deliveryFee := s.DeliveryFee
	totalAmount := subtotal + deliveryFee

	var order entity.Order
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		order = entity.Order{
			OrderNumber:     utils.NewOrderNumber(),
			UserID:          userID,
			ChefID:          cart.ChefID,
			Status:          entity.OrderPending,
			PaymentStatus:   entity.PaymentPending,
			Subtotal:        subtotal,
			DeliveryFee:     deliveryFee,
			TotalAmount:     totalAmount,
			DeliveryAddress: req.Address,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, it := range cart.Items {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				ProductID:  it.ProductID,
				Quantity:   it.Quantity,
				UnitPrice:  it.UnitPrice,
				TotalPrice: it.Total,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}

		return s.CartRepo.ClearCart(tx, userID)
	})
	if err != nil {
		return nil, err
	}

	s.Notifier.NewOrder(&order)

	return &CheckoutRes{ID: order.ID, OrderNumber: order.OrderNumber, TotalAmount: order.TotalAmount}, nil
}

// ----- List & Detail -----

func (s *OrderService) ListForUser(userID uint, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListOrdersForUser(userID, limit)
}

type AdminOrderListOut struct {
	Items []repository.AdminOrderSummary `json:"items"`
	Total int64                          `json:"total"`
	Page  int                            `json:"page"`
	Limit int                            `json:"limit"`
}

func (s *OrderService) ListAll(f repository.OrderFilter, page, limit int) (*AdminOrderListOut, error) {
	if f.Status != "" && !entity.OrderStatus(f.Status).Valid() {
		return nil, apperr.Validation("unrecognized status %q", f.Status)
	}
	if f.PaymentStatus != "" && !entity.PaymentStatus(f.PaymentStatus).Valid() {
		return nil, apperr.Validation("unrecognized payment status %q", f.PaymentStatus)
	}
	items, total, err := s.Repo.ListOrders(f, page, limit)
	if err != nil {
		return nil, err
	}
	return &AdminOrderListOut{Items: items, Total: total, Page: page, Limit: limit}, nil
}

type OrderDetail struct {
	Order entity.Order       `json:"order"`
	Items []entity.OrderItem `json:"items"`
}

func (s *OrderService) Get(orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("order", orderID)
	}
	return o, err
}

func (s *OrderService) Detail(orderID uint) (*OrderDetail, error) {
	o, err := s.Get(orderID)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *o, Items: items}, nil
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("order", orderID)
	}
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *o, Items: items}, nil
}

// ----- Delete guard -----

// Delete refuses while the order still has items or reviews; the error
// names each populated collection.
func (s *OrderService) Delete(orderID uint) error {
	o, err := s.Get(orderID)
	if err != nil {
		return err
	}

	deps, err := s.Repo.CountDependents(orderID)
	if err != nil {
		return err
	}

	var violated []string
	if deps.Items > 0 {
		violated = append(violated, fmt.Sprintf("%d item(s)", deps.Items))
	}
	if deps.Reviews > 0 {
		violated = append(violated, fmt.Sprintf("%d review(s)", deps.Reviews))
	}
	if len(violated) > 0 {
		return apperr.Conflict("cannot delete order %s: it has %s", o.OrderNumber, strings.Join(violated, " and "))
	}

	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.DeleteOrder(tx, orderID)
	}); err != nil {
		return err
	}

	s.Notifier.System("Order deleted", fmt.Sprintf("order %s (id %d) removed", o.OrderNumber, orderID), "info")
	return nil
}
