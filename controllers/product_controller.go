package controllers

import (
	"strconv"

	"github.com/Nomet5/cake-app-sub001/entity"
	"github.com/Nomet5/cake-app-sub001/pkg/resp"
	"github.com/Nomet5/cake-app-sub001/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	Service *services.ProductService
}

func NewProductController(s *services.ProductService) *ProductController {
	return &ProductController{Service: s}
}

// GET /products?chefId=&categoryId=&available=
func (pc *ProductController) List(c *gin.Context) {
	var available *bool
	if v := c.Query("available"); v != "" {
		b := v == "true" || v == "1"
		available = &b
	}

	products, err := pc.Service.List(c.Query("chefId"), c.Query("categoryId"), available)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": products})
}

// GET /products/:id
func (pc *ProductController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	product, err := pc.Service.Get(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	images, err := pc.Service.Images(product.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"product": product, "images": images})
}

// ===== Admin =====

type ProductIn struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"required,min=0"`
	IsAvailable *bool  `json:"isAvailable"`
	ChefID      uint   `json:"chefId" binding:"required"`
	CategoryID  uint   `json:"categoryId" binding:"required"`
}

func (pc *ProductController) Create(c *gin.Context) {
	var req ProductIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}
	product := &entity.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		IsAvailable: available,
		ChefID:      req.ChefID,
		CategoryID:  req.CategoryID,
	}
	if err := pc.Service.Create(product); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, product)
}

func (pc *ProductController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req ProductIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	product, err := pc.Service.Get(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	if req.IsAvailable != nil {
		product.IsAvailable = *req.IsAvailable
	}
	product.ChefID = req.ChefID
	product.CategoryID = req.CategoryID

	if err := pc.Service.Update(product); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, product)
}

type AvailabilityIn struct {
	IsAvailable *bool `json:"isAvailable" binding:"required"`
}

func (pc *ProductController) SetAvailability(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req AvailabilityIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := pc.Service.SetAvailability(uint(id), *req.IsAvailable); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "isAvailable": *req.IsAvailable})
}

func (pc *ProductController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := pc.Service.Delete(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

type ImageIn struct {
	URL       string `json:"url" binding:"required"`
	IsPrimary bool   `json:"isPrimary"`
}

func (pc *ProductController) AddImage(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req ImageIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	img, err := pc.Service.AddImage(uint(id), req.URL, req.IsPrimary)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, img)
}

func (pc *ProductController) DeleteImage(c *gin.Context) {
	imgID, _ := strconv.Atoi(c.Param("imageId"))

	if err := pc.Service.DeleteImage(uint(imgID)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": imgID})
}
