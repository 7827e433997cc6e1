package repository

import (
	"github.com/Nomet5/cake-app-sub001/entity"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) Create(rv *entity.Review) error {
	return r.DB.Create(rv).Error
}

func (r *ReviewRepository) FindByID(id uint) (*entity.Review, error) {
	var rv entity.Review
	if err := r.DB.First(&rv, id).Error; err != nil {
		return nil, err
	}
	return &rv, nil
}

// Exists checks the one-review-per-(product,user,order) rule.
func (r *ReviewRepository) Exists(productID, userID, orderID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Review{}).
		Where("product_id = ? AND user_id = ? AND order_id = ?", productID, userID, orderID).
		Count(&count).Error
	return count > 0, err
}

func (r *ReviewRepository) SetApproval(id uint, approved bool) error {
	return r.DB.Model(&entity.Review{}).Where("id = ?", id).
		Update("is_approved", approved).Error
}

// ListFiltered lists reviews, optionally by product and/or approval state.
func (r *ReviewRepository) ListFiltered(productID string, approved *bool) ([]entity.Review, error) {
	q := r.DB.Model(&entity.Review{})
	if productID != "" {
		q = q.Where("product_id = ?", productID)
	}
	if approved != nil {
		q = q.Where("is_approved = ?", *approved)
	}
	var reviews []entity.Review
	err := q.Order("id DESC").Find(&reviews).Error
	return reviews, err
}

// ---------------- Stats ----------------

func (r *ReviewRepository) CountAll() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Review{}).Count(&count).Error
	return count, err
}

func (r *ReviewRepository) CountApproved(approved bool) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Review{}).Where("is_approved = ?", approved).Count(&count).Error
	return count, err
}

func (r *ReviewRepository) AverageRating() (float64, error) {
	var row struct{ Avg float64 }
	err := r.DB.Model(&entity.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg").
		Scan(&row).Error
	return row.Avg, err
}
