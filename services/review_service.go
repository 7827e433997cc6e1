package services

import (
	"errors"
	"fmt"

	"github.com/Nomet5/cake-app-sub001/entity"
	"github.com/Nomet5/cake-app-sub001/pkg/apperr"
	"github.com/Nomet5/cake-app-sub001/repository"

	"gorm.io/gorm"
)

type ReviewService struct {
	Repo      *repository.ReviewRepository
	ProdRepo  *repository.ProductRepository
	UserRepo  *repository.UserRepository
	OrderRepo *repository.OrderRepository
	ChefRepo  *repository.ChefRepository
	Notifier  Notifier
}

func NewReviewService(
	repo *repository.ReviewRepository,
	prodRepo *repository.ProductRepository,
	userRepo *repository.UserRepository,
	orderRepo *repository.OrderRepository,
	chefRepo *repository.ChefRepository,
	notifier Notifier,
) *ReviewService {
	return &ReviewService{
		Repo:      repo,
		ProdRepo:  prodRepo,
		UserRepo:  userRepo,
		OrderRepo: orderRepo,
		ChefRepo:  chefRepo,
		Notifier:  notifier,
	}
}

type CreateReviewReq struct {
	ProductID uint   `json:"productId" binding:"required"`
	OrderID   uint   `json:"orderId" binding:"required"`
	ChefID    uint   `json:"chefId" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
}

// Create validates the four referenced entities independently, rejects
// duplicates keyed by (product, user, order), and bounds the rating.
func (s *ReviewService) Create(userID uint, req *CreateReviewReq) (*entity.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperr.Validation("rating must be between 1 and 5")
	}

	product, err := s.ProdRepo.FindByID(req.ProductID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("product", req.ProductID)
	}
	if err != nil {
		return nil, err
	}

	if ok, err := s.UserRepo.Exists(userID); err != nil {
		return nil, err
	} else if !ok {
		return nil, apperr.NotFound("user", userID)
	}

	if _, err := s.OrderRepo.GetOrder(req.OrderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order", req.OrderID)
		}
		return nil, err
	}

	if ok, err := s.ChefRepo.Exists(req.ChefID); err != nil {
		return nil, err
	} else if !ok {
		return nil, apperr.NotFound("chef", req.ChefID)
	}

	dup, err := s.Repo.Exists(req.ProductID, userID, req.OrderID)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, apperr.Conflict("you have already reviewed this product for this order")
	}

	review := &entity.Review{
		Rating:    req.Rating,
		Comment:   req.Comment,
		ProductID: req.ProductID,
		UserID:    userID,
		OrderID:   req.OrderID,
		ChefID:    req.ChefID,
	}
	if err := s.Repo.Create(review); err != nil {
		return nil, err
	}

	s.Notifier.System("New review",
		fmt.Sprintf("product %q rated %d/5", product.Name, req.Rating), "info")

	return review, nil
}

func (s *ReviewService) List(productID string, approved *bool) ([]entity.Review, error) {
	return s.Repo.ListFiltered(productID, approved)
}

func (s *ReviewService) SetApproval(id uint, approved bool) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("review", id)
		}
		return err
	}
	return s.Repo.SetApproval(id, approved)
}
