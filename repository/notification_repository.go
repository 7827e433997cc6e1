package repository

import (
	"github.com/Nomet5/cake-app-sub001/entity"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	DB *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

func (r *NotificationRepository) Create(n *entity.Notification) error {
	return r.DB.Create(n).Error
}

func (r *NotificationRepository) List(unreadOnly bool, limit int) ([]entity.Notification, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	q := r.DB.Model(&entity.Notification{})
	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}
	var out []entity.Notification
	err := q.Order("id DESC").Limit(limit).Find(&out).Error
	return out, err
}

func (r *NotificationRepository) MarkRead(id uint) error {
	return r.DB.Model(&entity.Notification{}).Where("id = ?", id).
		Update("is_read", true).Error
}
