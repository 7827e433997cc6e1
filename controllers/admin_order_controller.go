package controllers

import (
	"strconv"

	"github.com/Nomet5/cake-app-sub001/entity"
	"github.com/Nomet5/cake-app-sub001/pkg/resp"
	"github.com/Nomet5/cake-app-sub001/repository"
	"github.com/Nomet5/cake-app-sub001/services"

	"github.com/gin-gonic/gin"
)

// AdminOrderController is the back-office order surface: listing, status
// and payment transitions, cancellation, line-item edits, deletion.
type AdminOrderController struct {
	Service *services.OrderService
}

func NewAdminOrderController(s *services.OrderService) *AdminOrderController {
	return &AdminOrderController{Service: s}
}

// GET /admin/orders?status=&paymentStatus=&chefId=&page=&limit=
func (oc *AdminOrderController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	f := repository.OrderFilter{
		Status:        c.Query("status"),
		PaymentStatus: c.Query("paymentStatus"),
		ChefID:        c.Query("chefId"),
	}

	out, err := oc.Service.ListAll(f, page, limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /admin/orders/:id
func (oc *AdminOrderController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	detail, err := oc.Service.Detail(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, detail)
}

type StatusIn struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /admin/orders/:id/status
func (oc *AdminOrderController) UpdateStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req StatusIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := oc.Service.UpdateStatus(uint(id), entity.OrderStatus(req.Status)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "status": req.Status})
}

// PATCH /admin/orders/:id/payment
func (oc *AdminOrderController) UpdatePaymentStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req StatusIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := oc.Service.UpdatePaymentStatus(uint(id), entity.PaymentStatus(req.Status)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "paymentStatus": req.Status})
}

type CancelIn struct {
	Reason string `json:"reason"`
}

// POST /admin/orders/:id/cancel
func (oc *AdminOrderController) Cancel(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req CancelIn
	_ = c.ShouldBindJSON(&req) // reason is optional

	if err := oc.Service.Cancel(uint(id), req.Reason); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "status": entity.OrderCancelled})
}

type AddItemIn struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// POST /admin/orders/:id/items
func (oc *AdminOrderController) AddItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req AddItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	item, err := oc.Service.AddItem(uint(id), req.ProductID, req.Quantity)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, item)
}

// DELETE /admin/orders/:id/items/:itemId
func (oc *AdminOrderController) RemoveItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	itemID, _ := strconv.Atoi(c.Param("itemId"))

	if err := oc.Service.RemoveItem(uint(id), uint(itemID)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": itemID})
}

// DELETE /admin/orders/:id
func (oc *AdminOrderController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := oc.Service.Delete(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
