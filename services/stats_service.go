package services

import (
	"github.com/Nomet5/cake-app-sub001/entity"
	"github.com/Nomet5/cake-app-sub001/repository"

	"github.com/sirupsen/logrus"
)

// StatsService runs the fixed admin dashboard aggregates. Every summary is
// zero-filled: a failed query logs and leaves its field at zero rather than
// failing the whole dashboard.
type StatsService struct {
	OrderRepo  *repository.OrderRepository
	ProdRepo   *repository.ProductRepository
	ReviewRepo *repository.ReviewRepository
	Log        *logrus.Logger
}

func NewStatsService(
	orderRepo *repository.OrderRepository,
	prodRepo *repository.ProductRepository,
	reviewRepo *repository.ReviewRepository,
	log *logrus.Logger,
) *StatsService {
	return &StatsService{OrderRepo: orderRepo, ProdRepo: prodRepo, ReviewRepo: reviewRepo, Log: log}
}

type OrderStats struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`   // PENDING + CONFIRMED + PREPARING
	Completed int64 `json:"completed"` // DELIVERED and PAID
	Cancelled int64 `json:"cancelled"`
	Revenue   int64 `json:"revenue"` // sum of paid totalAmount
	Average   int64 `json:"averageOrderValue"`
}

func (s *StatsService) Orders() *OrderStats {
	out := &OrderStats{}

	if n, err := s.OrderRepo.CountAll(); err != nil {
		s.Log.WithError(err).Warn("order stats: count all failed")
	} else {
		out.Total = n
	}

	if n, err := s.OrderRepo.CountByStatuses(entity.OrderPending, entity.OrderConfirmed, entity.OrderPreparing); err != nil {
		s.Log.WithError(err).Warn("order stats: pending bucket failed")
	} else {
		out.Pending = n
	}

	if n, err := s.OrderRepo.CountCompleted(); err != nil {
		s.Log.WithError(err).Warn("order stats: completed bucket failed")
	} else {
		out.Completed = n
	}

	if n, err := s.OrderRepo.CountByStatuses(entity.OrderCancelled); err != nil {
		s.Log.WithError(err).Warn("order stats: cancelled count failed")
	} else {
		out.Cancelled = n
	}

	if sum, err := s.OrderRepo.SumRevenue(); err != nil {
		s.Log.WithError(err).Warn("order stats: revenue failed")
	} else {
		out.Revenue = sum
	}

	if out.Total > 0 {
		out.Average = out.Revenue / out.Total
	}
	return out
}

type ProductStats struct {
	Total        int64   `json:"total"`
	Available    int64   `json:"available"`
	Unavailable  int64   `json:"unavailable"`
	AveragePrice float64 `json:"averagePrice"`
}

func (s *StatsService) Products() *ProductStats {
	out := &ProductStats{}

	var total, available int64
	if err := s.ProdRepo.DB.Model(&entity.Product{}).Count(&total).Error; err != nil {
		s.Log.WithError(err).Warn("product stats: count failed")
	}
	if err := s.ProdRepo.DB.Model(&entity.Product{}).Where("is_available = ?", true).Count(&available).Error; err != nil {
		s.Log.WithError(err).Warn("product stats: available count failed")
	}
	out.Total = total
	out.Available = available
	out.Unavailable = total - available

	var row struct{ Avg float64 }
	if err := s.ProdRepo.DB.Model(&entity.Product{}).
		Select("COALESCE(AVG(price), 0) AS avg").Scan(&row).Error; err != nil {
		s.Log.WithError(err).Warn("product stats: average price failed")
	} else {
		out.AveragePrice = row.Avg
	}
	return out
}

type ReviewStats struct {
	Total         int64   `json:"total"`
	Approved      int64   `json:"approved"`
	Pending       int64   `json:"pending"`
	AverageRating float64 `json:"averageRating"`
}

func (s *StatsService) Reviews() *ReviewStats {
	out := &ReviewStats{}

	if n, err := s.ReviewRepo.CountAll(); err != nil {
		s.Log.WithError(err).Warn("review stats: count failed")
	} else {
		out.Total = n
	}
	if n, err := s.ReviewRepo.CountApproved(true); err != nil {
		s.Log.WithError(err).Warn("review stats: approved count failed")
	} else {
		out.Approved = n
	}
	out.Pending = out.Total - out.Approved

	if avg, err := s.ReviewRepo.AverageRating(); err != nil {
		s.Log.WithError(err).Warn("review stats: average rating failed")
	} else {
		out.AverageRating = avg
	}
	return out
}
