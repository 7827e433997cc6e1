package repository

import (
	"github.com/Nomet5/cake-app-sub001/entity"

	"gorm.io/gorm"
)

type ChefRepository struct {
	DB *gorm.DB
}

func NewChefRepository(db *gorm.DB) *ChefRepository {
	return &ChefRepository{DB: db}
}

func (r *ChefRepository) Create(ch *entity.Chef) error {
	return r.DB.Create(ch).Error
}

func (r *ChefRepository) FindByID(id uint) (*entity.Chef, error) {
	var ch entity.Chef
	if err := r.DB.First(&ch, id).Error; err != nil {
		return nil, err
	}
	return &ch, nil
}

// FindAll lists chefs, optionally only active ones.
func (r *ChefRepository) FindAll(activeOnly bool) ([]entity.Chef, error) {
	q := r.DB.Model(&entity.Chef{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var chefs []entity.Chef
	err := q.Order("id").Find(&chefs).Error
	return chefs, err
}

func (r *ChefRepository) Update(ch *entity.Chef) error {
	return r.DB.Save(ch).Error
}

func (r *ChefRepository) SetActive(id uint, active bool) error {
	return r.DB.Model(&entity.Chef{}).Where("id = ?", id).
		Update("is_active", active).Error
}

func (r *ChefRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.DB.Model(&entity.Chef{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
