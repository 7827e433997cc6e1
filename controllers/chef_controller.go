package controllers

import (
	"strconv"

	"github.com/Nomet5/cake-app-sub001/entity"
	"github.com/Nomet5/cake-app-sub001/pkg/resp"
	"github.com/Nomet5/cake-app-sub001/services"

	"github.com/gin-gonic/gin"
)

type ChefController struct {
	Service *services.ChefService
}

func NewChefController(s *services.ChefService) *ChefController {
	return &ChefController{Service: s}
}

// GET /chefs — the storefront only shows active chefs
func (cc *ChefController) List(c *gin.Context) {
	activeOnly := c.Query("all") != "true"
	chefs, err := cc.Service.List(activeOnly)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": chefs})
}

func (cc *ChefController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	chef, err := cc.Service.Get(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, chef)
}

// ===== Admin =====

type ChefIn struct {
	Name     string `json:"name" binding:"required"`
	Bio      string `json:"bio"`
	Picture  string `json:"picture"`
	IsActive *bool  `json:"isActive"`
	UserID   uint   `json:"userId"`
}

func (cc *ChefController) Create(c *gin.Context) {
	var req ChefIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	chef := &entity.Chef{
		Name:     req.Name,
		Bio:      req.Bio,
		Picture:  req.Picture,
		IsActive: active,
		UserID:   req.UserID,
	}
	if err := cc.Service.Create(chef); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, chef)
}

func (cc *ChefController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req ChefIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	chef, err := cc.Service.Get(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}

	chef.Name = req.Name
	chef.Bio = req.Bio
	chef.Picture = req.Picture
	if req.IsActive != nil {
		chef.IsActive = *req.IsActive
	}

	if err := cc.Service.Update(chef); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, chef)
}

type ActiveIn struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

func (cc *ChefController) SetActive(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req ActiveIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := cc.Service.SetActive(uint(id), *req.IsActive); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "isActive": *req.IsActive})
}
