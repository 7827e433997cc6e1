package services

import (
	"errors"

	"github.com/Nomet5/cake-app-sub001/entity"
	"github.com/Nomet5/cake-app-sub001/pkg/apperr"
	"github.com/Nomet5/cake-app-sub001/repository"

	"gorm.io/gorm"
)

type ChefService struct {
	Repo *repository.ChefRepository
}

func NewChefService(repo *repository.ChefRepository) *ChefService {
	return &ChefService{Repo: repo}
}

func (s *ChefService) List(activeOnly bool) ([]entity.Chef, error) {
	return s.Repo.FindAll(activeOnly)
}

func (s *ChefService) Get(id uint) (*entity.Chef, error) {
	ch, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("chef", id)
	}
	return ch, err
}

func (s *ChefService) Create(ch *entity.Chef) error {
	if ch.Name == "" {
		return apperr.Validation("chef name is required")
	}
	return s.Repo.Create(ch)
}

func (s *ChefService) Update(ch *entity.Chef) error {
	return s.Repo.Update(ch)
}

func (s *ChefService) SetActive(id uint, active bool) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.Repo.SetActive(id, active)
}
