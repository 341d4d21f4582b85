package controllers

import (
	"errors"
	"math"

	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Orders *services.OrderService
	Svc    *services.AdminService
}

func NewAdminController(orders *services.OrderService, svc *services.AdminService) *AdminController {
	return &AdminController{Orders: orders, Svc: svc}
}

// GET /admin/orders
func (h *AdminController) ListOrders(c *gin.Context) {
	page := intQuery(c, "page", 1)
	limit := limitQuery(c, 15, 100)

	orders, total, err := h.Orders.ListAll(page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	resp.OK(c, gin.H{
		"orders": orders,
		"metadata": gin.H{
			"total":       total,
			"currentPage": page,
			"limit":       limit,
			"hasPrevPage": page > 1,
			"hasNextPage": page < totalPages,
		},
	})
}

// PATCH /admin/orders/:orderId/status
func (h *AdminController) UpdateOrderStatus(c *gin.Context) {
	orderID, ok := uintParam(c, "orderId")
	if !ok {
		resp.BadRequest(c, "invalid order id")
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Orders.UpdateStatus(orderID, req.Status); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "order status updated"})
}

// GET /admin/stats
func (h *AdminController) Stats(c *gin.Context) {
	stats, err := h.Svc.Stats()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, stats)
}

// GET /admin/activity
func (h *AdminController) Activity(c *gin.Context) {
	page := intQuery(c, "page", 1)
	limit := limitQuery(c, 50, 200)

	logs, total, err := h.Svc.Activity(page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"logs": logs, "total": total, "page": page, "limit": limit})
}
