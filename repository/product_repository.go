package repository

import (
	"github.com/Nomet5/cake-app-sub001/entity"

	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) Create(p *entity.Product) error {
	return r.DB.Create(p).Error
}

func (r *ProductRepository) FindByID(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ListFiltered applies optional chef/category/availability filters straight
// onto the query, query-param style.
func (r *ProductRepository) ListFiltered(chefID, categoryID string, available *bool) ([]entity.Product, error) {
	q := r.DB.Model(&entity.Product{})
	if chefID != "" {
		q = q.Where("chef_id = ?", chefID)
	}
	if categoryID != "" {
		q = q.Where("category_id = ?", categoryID)
	}
	if available != nil {
		q = q.Where("is_available = ?", *available)
	}
	var products []entity.Product
	err := q.Order("id DESC").Find(&products).Error
	return products, err
}

func (r *ProductRepository) Update(p *entity.Product) error {
	return r.DB.Save(p).Error
}

func (r *ProductRepository) SetAvailability(id uint, available bool) error {
	return r.DB.Model(&entity.Product{}).Where("id = ?", id).
		Update("is_available", available).Error
}

func (r *ProductRepository) Delete(tx *gorm.DB, id uint) error {
	return tx.Delete(&entity.Product{}, id).Error
}

// ProductDependents holds the row counts the delete guard inspects.
type ProductDependents struct {
	OrderItems int64
	Reviews    int64
	CartItems  int64
	Images     int64
}

func (r *ProductRepository) CountDependents(id uint) (*ProductDependents, error) {
	var d ProductDependents
	if err := r.DB.Model(&entity.OrderItem{}).Where("product_id = ?", id).Count(&d.OrderItems).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&entity.Review{}).Where("product_id = ?", id).Count(&d.Reviews).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&entity.CartItem{}).Where("product_id = ?", id).Count(&d.CartItems).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&entity.ProductImage{}).Where("product_id = ?", id).Count(&d.Images).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

// ---------------- Images ----------------

func (r *ProductRepository) AddImage(img *entity.ProductImage) error {
	return r.DB.Create(img).Error
}

func (r *ProductRepository) GetImages(productID uint) ([]entity.ProductImage, error) {
	var imgs []entity.ProductImage
	err := r.DB.Where("product_id = ?", productID).Find(&imgs).Error
	return imgs, err
}

func (r *ProductRepository) DeleteImage(id uint) error {
	return r.DB.Delete(&entity.ProductImage{}, id).Error
}
