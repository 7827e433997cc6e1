package entity

import (
	"gorm.io/gorm"
)

type Chef struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Bio      string `json:"bio"`
	Picture  string `json:"picture"`
	IsActive bool   `gorm:"default:true" json:"isActive"`

	UserID uint `json:"userId"` // owner account (users.id)
	User   User `json:"-"`

	Products []Product `json:"-"`
	Orders   []Order   `json:"-"`
	Reviews  []Review  `json:"-"`
}
