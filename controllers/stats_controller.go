package controllers

import (
	"github.com/Nomet5/cake-app-sub001/pkg/resp"
	"github.com/Nomet5/cake-app-sub001/services"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	Service *services.StatsService
}

func NewStatsController(s *services.StatsService) *StatsController {
	return &StatsController{Service: s}
}

// GET /admin/stats/orders
func (sc *StatsController) Orders(c *gin.Context) {
	resp.OK(c, sc.Service.Orders())
}

// GET /admin/stats/products
func (sc *StatsController) Products(c *gin.Context) {
	resp.OK(c, sc.Service.Products())
}

// GET /admin/stats/reviews
func (sc *StatsController) Reviews(c *gin.Context) {
	resp.OK(c, sc.Service.Reviews())
}
