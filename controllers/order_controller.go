package controllers

import (
	"errors"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// POST /orders/confirm
func (h *OrderController) Confirm(c *gin.Context) {
	var req struct {
		PromoCode string `json:"promoCode"`
	}
	// body is optional
	_ = c.ShouldBindJSON(&req)

	order, err := h.Svc.Confirm(utils.CurrentUserID(c), req.PromoCode)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrPromoInvalid):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrPromoExpired),
			errors.Is(err, services.ErrPromoExhausted),
			errors.Is(err, services.ErrPromoMinOrder):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, order)
}

// GET /orders
func (h *OrderController) List(c *gin.Context) {
	orders, err := h.Svc.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/:orderId
func (h *OrderController) Detail(c *gin.Context) {
	orderID, ok := uintParam(c, "orderId")
	if !ok {
		resp.BadRequest(c, "invalid order id")
		return
	}

	order, err := h.Svc.DetailForUser(utils.CurrentUserID(c), orderID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, order)
}
