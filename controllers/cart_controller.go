package controllers

import (
	"strconv"

	"github.com/Nomet5/cake-app-sub001/pkg/resp"
	"github.com/Nomet5/cake-app-sub001/services"
	"github.com/Nomet5/cake-app-sub001/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	Service *services.CartService
}

func NewCartController(s *services.CartService) *CartController {
	return &CartController{Service: s}
}

// GET /cart
func (cc *CartController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	cart, subtotal, err := cc.Service.Get(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cart": cart, "subtotal": subtotal})
}

// POST /cart/items
func (cc *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := cc.Service.Add(uid, &req); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"added": req.ProductID})
}

type QtyIn struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// PATCH /cart/items/:id
func (cc *CartController) UpdateQty(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	itemID, _ := strconv.Atoi(c.Param("id"))

	var req QtyIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := cc.Service.UpdateQty(uid, uint(itemID), req.Quantity); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"id": itemID, "quantity": req.Quantity})
}

// DELETE /cart/items/:id
func (cc *CartController) Remove(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	itemID, _ := strconv.Atoi(c.Param("id"))

	if err := cc.Service.Remove(uid, uint(itemID)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": itemID})
}

// DELETE /cart
func (cc *CartController) Clear(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if err := cc.Service.Clear(uid); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
