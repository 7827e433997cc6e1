package repository

import (
	"time"

	"github.com/Nomet5/cake-app-sub001/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

type OrderSummary struct {
	ID            uint                 `json:"id"`
	OrderNumber   string               `json:"orderNumber"`
	ChefID        uint                 `json:"chefId"`
	TotalAmount   int64                `json:"totalAmount"`
	Status        entity.OrderStatus   `json:"status"`
	PaymentStatus entity.PaymentStatus `json:"paymentStatus"`
	CreatedAt     time.Time            `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForUser(userID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, order_number, chef_id, total_amount, status, payment_status, created_at").
		Where("user_id = ?", userID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

// OrderFilter is the admin list filter, taken straight from query params.
type OrderFilter struct {
	Status        string
	PaymentStatus string
	ChefID        string
}

type AdminOrderSummary struct {
	ID            uint                 `json:"id"`
	OrderNumber   string               `json:"orderNumber"`
	UserID        uint                 `json:"userId"`
	ChefID        uint                 `json:"chefId"`
	TotalAmount   int64                `json:"totalAmount"`
	Status        entity.OrderStatus   `json:"status"`
	PaymentStatus entity.PaymentStatus `json:"paymentStatus"`
	CreatedAt     time.Time            `json:"createdAt"`
}

func (r *OrderRepository) ListOrders(f OrderFilter, page, limit int) ([]AdminOrderSummary, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	offset := (page - 1) * limit

	apply := func(q *gorm.DB) *gorm.DB {
		if f.Status != "" {
			q = q.Where("status = ?", f.Status)
		}
		if f.PaymentStatus != "" {
			q = q.Where("payment_status = ?", f.PaymentStatus)
		}
		if f.ChefID != "" {
			q = q.Where("chef_id = ?", f.ChefID)
		}
		return q
	}

	var total int64
	if err := apply(r.DB.Model(&entity.Order{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []AdminOrderSummary
	err := apply(r.DB.Model(&entity.Order{})).
		Select("id, order_number, user_id, chef_id, total_amount, status, payment_status, created_at").
		Order("id DESC").Limit(limit).Offset(offset).
		Scan(&out).Error
	return out, total, err
}

func (r *OrderRepository) UpdateStatus(tx *gorm.DB, orderID uint, status entity.OrderStatus) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).
		Updates(map[string]any{"status": status, "updated_at": time.Now()}).Error
}

func (r *OrderRepository) UpdatePaymentStatus(tx *gorm.DB, orderID uint, status entity.PaymentStatus) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).
		Updates(map[string]any{"payment_status": status, "updated_at": time.Now()}).Error
}

func (r *OrderRepository) SetCancelled(tx *gorm.DB, orderID uint, reason string) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).
		Updates(map[string]any{
			"status":        entity.OrderCancelled,
			"cancel_reason": reason,
			"updated_at":    time.Now(),
		}).Error
}

func (r *OrderRepository) DeleteOrder(tx *gorm.DB, orderID uint) error {
	return tx.Delete(&entity.Order{}, orderID).Error
}

// OrderDependents holds the row counts the delete guard inspects.
type OrderDependents struct {
	Items   int64
	Reviews int64
}

func (r *OrderRepository) CountDependents(orderID uint) (*OrderDependents, error) {
	var d OrderDependents
	if err := r.DB.Model(&entity.OrderItem{}).Where("order_id = ?", orderID).Count(&d.Items).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&entity.Review{}).Where("order_id = ?", orderID).Count(&d.Reviews).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

// ---------------- Order items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Model(&entity.OrderItem{}).
		Select("id, quantity, unit_price, total_price, product_id, order_id").
		Where("order_id = ?", orderID).
		Find(&items).Error
	return items, err
}

func (r *OrderRepository) GetOrderItem(tx *gorm.DB, itemID uint) (*entity.OrderItem, error) {
	var oi entity.OrderItem
	if err := tx.First(&oi, itemID).Error; err != nil {
		return nil, err
	}
	return &oi, nil
}

// FindItem returns the line for (orderID, productID), or gorm.ErrRecordNotFound.
func (r *OrderRepository) FindItem(tx *gorm.DB, orderID, productID uint) (*entity.OrderItem, error) {
	var oi entity.OrderItem
	if err := tx.Where("order_id = ? AND product_id = ?", orderID, productID).First(&oi).Error; err != nil {
		return nil, err
	}
	return &oi, nil
}

func (r *OrderRepository) SaveOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Save(oi).Error
}

func (r *OrderRepository) DeleteOrderItem(tx *gorm.DB, itemID uint) error {
	return tx.Delete(&entity.OrderItem{}, itemID).Error
}

// SumItems re-sums every current line of the order. Always a full re-sum,
// never an incremental delta, so repeated calls cannot drift.
func (r *OrderRepository) SumItems(tx *gorm.DB, orderID uint) (int64, error) {
	var row struct{ Subtotal int64 }
	err := tx.Model(&entity.OrderItem{}).
		Select("COALESCE(SUM(total_price), 0) AS subtotal").
		Where("order_id = ?", orderID).
		Scan(&row).Error
	return row.Subtotal, err
}

func (r *OrderRepository) UpdateTotals(tx *gorm.DB, orderID uint, subtotal, totalAmount int64) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).
		Updates(map[string]any{
			"subtotal":     subtotal,
			"total_amount": totalAmount,
			"updated_at":   time.Now(),
		}).Error
}

// ---------------- Stats ----------------

func (r *OrderRepository) CountByStatuses(statuses ...entity.OrderStatus) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Order{}).Where("status IN ?", statuses).Count(&count).Error
	return count, err
}

func (r *OrderRepository) CountAll() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Order{}).Count(&count).Error
	return count, err
}

// CountCompleted counts delivered-and-paid orders.
func (r *OrderRepository) CountCompleted() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Order{}).
		Where("status = ? AND payment_status = ?", entity.OrderDelivered, entity.PaymentPaid).
		Count(&count).Error
	return count, err
}

// SumRevenue totals paid orders.
func (r *OrderRepository) SumRevenue() (int64, error) {
	var row struct{ Revenue int64 }
	err := r.DB.Model(&entity.Order{}).
		Select("COALESCE(SUM(total_amount), 0) AS revenue").
		Where("payment_status = ?", entity.PaymentPaid).
		Scan(&row).Error
	return row.Revenue, err
}
