package controllers

import (
	"strconv"

	"github.com/Nomet5/cake-app-sub001/pkg/resp"
	"github.com/Nomet5/cake-app-sub001/services"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	Service *services.NotificationService
}

func NewNotificationController(s *services.NotificationService) *NotificationController {
	return &NotificationController{Service: s}
}

// GET /admin/notifications?unread=&limit=
func (nc *NotificationController) List(c *gin.Context) {
	unreadOnly := c.Query("unread") == "true"
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	items, err := nc.Service.List(unreadOnly, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// PATCH /admin/notifications/:id/read
func (nc *NotificationController) MarkRead(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := nc.Service.MarkRead(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "isRead": true})
}
