package entity

import (
	"gorm.io/gorm"
)

type ProductImage struct {
	gorm.Model
	URL       string `gorm:"not null" json:"url"`
	IsPrimary bool   `gorm:"default:false" json:"isPrimary"`

	ProductID uint    `json:"productId"`
	Product   Product `json:"-"`
}
