package entity

import (
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	Rating     int    `gorm:"not null" json:"rating"` // 1..5
	Comment    string `json:"comment"`
	IsApproved bool   `gorm:"default:false" json:"isApproved"`

	// at most one review per (product, user, order) — checked before insert
	ProductID uint    `json:"productId"`
	Product   Product `json:"-"`
	UserID    uint    `json:"userId"`
	User      User    `json:"-"`
	OrderID   uint    `json:"orderId"`
	Order     Order   `json:"-"`
	ChefID    uint    `json:"chefId"`
	Chef      Chef    `json:"-"`
}
