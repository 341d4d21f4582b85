package controllers

import (
	"errors"
	"fmt"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// POST /cart/add/:dishId
func (h *CartController) Add(c *gin.Context) {
	dishID, ok := uintParam(c, "dishId")
	if !ok {
		resp.BadRequest(c, "invalid dish id")
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	// body is optional; quantity defaults to 1
	_ = c.ShouldBindJSON(&req)

	dish, err := h.Svc.Add(utils.CurrentUserID(c), dishID, req.Quantity)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "dish not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	qty := req.Quantity
	if qty <= 0 {
		qty = 1
	}
	resp.OK(c, gin.H{"message": fmt.Sprintf("%d x %s added to cart", qty, dish.Name)})
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	items, total, err := h.Svc.View(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "total": total})
}

// PUT /cart/:itemId
func (h *CartController) UpdateQuantity(c *gin.Context) {
	itemID, ok := uintParam(c, "itemId")
	if !ok {
		resp.BadRequest(c, "invalid item id")
		return
	}

	var req struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := h.Svc.UpdateQuantity(utils.CurrentUserID(c), itemID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidQuantity):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "cart item not found")
		case errors.Is(err, services.ErrForbidden):
			resp.Forbidden(c, "not your cart item")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"message": "quantity updated", "item": item})
}

// DELETE /cart/:itemId
func (h *CartController) Remove(c *gin.Context) {
	itemID, ok := uintParam(c, "itemId")
	if !ok {
		resp.BadRequest(c, "invalid item id")
		return
	}

	if err := h.Svc.Remove(utils.CurrentUserID(c), itemID); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "cart item not found")
		case errors.Is(err, services.ErrForbidden):
			resp.Forbidden(c, "not your cart item")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"message": "item removed from cart"})
}
