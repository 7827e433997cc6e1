package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Nomet5/cake-app-sub001/entity"
	"github.com/Nomet5/cake-app-sub001/pkg/apperr"
	"github.com/Nomet5/cake-app-sub001/repository"

	"gorm.io/gorm"
)

type ProductService struct {
	DB       *gorm.DB
	Repo     *repository.ProductRepository
	Notifier Notifier
}

func NewProductService(db *gorm.DB, repo *repository.ProductRepository, notifier Notifier) *ProductService {
	return &ProductService{DB: db, Repo: repo, Notifier: notifier}
}

func (s *ProductService) List(chefID, categoryID string, available *bool) ([]entity.Product, error) {
	return s.Repo.ListFiltered(chefID, categoryID, available)
}

func (s *ProductService) Get(id uint) (*entity.Product, error) {
	p, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("product", id)
	}
	return p, err
}

func (s *ProductService) Create(p *entity.Product) error {
	if p.Name == "" {
		return apperr.Validation("product name is required")
	}
	if p.Price < 0 {
		return apperr.Validation("product price must not be negative")
	}
	return s.Repo.Create(p)
}

func (s *ProductService) Update(p *entity.Product) error {
	if _, err := s.Get(p.ID); err != nil {
		return err
	}
	return s.Repo.Update(p)
}

func (s *ProductService) SetAvailability(id uint, available bool) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.Repo.SetAvailability(id, available)
}

// Delete refuses while any dependent rows exist. The error lists every
// violated collection, not just the first one found.
func (s *ProductService) Delete(id uint) error {
	p, err := s.Get(id)
	if err != nil {
		return err
	}

	deps, err := s.Repo.CountDependents(id)
	if err != nil {
		return err
	}

	var violated []string
	if deps.OrderItems > 0 {
		violated = append(violated, fmt.Sprintf("%d order item(s)", deps.OrderItems))
	}
	if deps.Reviews > 0 {
		violated = append(violated, fmt.Sprintf("%d review(s)", deps.Reviews))
	}
	if deps.CartItems > 0 {
		violated = append(violated, fmt.Sprintf("%d cart item(s)", deps.CartItems))
	}
	if deps.Images > 0 {
		violated = append(violated, fmt.Sprintf("%d image(s)", deps.Images))
	}
	if len(violated) > 0 {
		return apperr.Conflict("cannot delete product %q: it has %s", p.Name, strings.Join(violated, ", "))
	}

	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Delete(tx, id)
	}); err != nil {
		return err
	}

	s.Notifier.System("Product deleted", fmt.Sprintf("product %q (id %d) removed", p.Name, id), "info")
	return nil
}

// ----- Images -----

func (s *ProductService) AddImage(productID uint, url string, primary bool) (*entity.ProductImage, error) {
	if url == "" {
		return nil, apperr.Validation("image url is required")
	}
	if _, err := s.Get(productID); err != nil {
		return nil, err
	}
	img := &entity.ProductImage{URL: url, IsPrimary: primary, ProductID: productID}
	if err := s.Repo.AddImage(img); err != nil {
		return nil, err
	}
	return img, nil
}

func (s *ProductService) Images(productID uint) ([]entity.ProductImage, error) {
	if _, err := s.Get(productID); err != nil {
		return nil, err
	}
	return s.Repo.GetImages(productID)
}

func (s *ProductService) DeleteImage(id uint) error {
	return s.Repo.DeleteImage(id)
}
