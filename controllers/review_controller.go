package controllers

import (
	"strconv"

	"github.com/Nomet5/cake-app-sub001/pkg/resp"
	"github.com/Nomet5/cake-app-sub001/services"
	"github.com/Nomet5/cake-app-sub001/utils"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	Service *services.ReviewService
}

func NewReviewController(s *services.ReviewService) *ReviewController {
	return &ReviewController{Service: s}
}

// POST /reviews
func (rc *ReviewController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.CreateReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	review, err := rc.Service.Create(uid, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, review)
}

// GET /products/:id/reviews — storefront shows approved reviews only
func (rc *ReviewController) ListForProduct(c *gin.Context) {
	approved := true
	reviews, err := rc.Service.List(c.Param("id"), &approved)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": reviews})
}

// ===== Admin =====

// GET /admin/reviews?productId=&approved=
func (rc *ReviewController) ListAll(c *gin.Context) {
	var approved *bool
	if v := c.Query("approved"); v != "" {
		b := v == "true" || v == "1"
		approved = &b
	}
	reviews, err := rc.Service.List(c.Query("productId"), approved)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": reviews})
}

type ApprovalIn struct {
	IsApproved *bool `json:"isApproved" binding:"required"`
}

// PATCH /admin/reviews/:id/approval
func (rc *ReviewController) SetApproval(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req ApprovalIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := rc.Service.SetApproval(uint(id), *req.IsApproved); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "isApproved": *req.IsApproved})
}
