package controllers

import (
	"errors"
	"time"

	"backend/entity"
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type PromoController struct{ Svc *services.PromoService }

func NewPromoController(s *services.PromoService) *PromoController { return &PromoController{Svc: s} }

// POST /promos/validate
func (h *PromoController) Validate(c *gin.Context) {
	var req struct {
		Code   string  `json:"code" binding:"required"`
		Amount float64 `json:"amount" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	promo, discount, err := h.Svc.Validate(req.Code, req.Amount)
	if err != nil {
		switch {
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

	resp.OK(c, gin.H{
		"valid":         true,
		"code":          promo.Code,
		"discountType":  promo.DiscountType,
		"discountValue": promo.DiscountValue,
		"discount":      discount,
	})
}

// GET /admin/promos
func (h *PromoController) List(c *gin.Context) {
	promos, err := h.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, promos)
}

// POST /admin/promos
func (h *PromoController) Create(c *gin.Context) {
	var req struct {
		Code           string     `json:"code" binding:"required"`
		DiscountType   string     `json:"discountType" binding:"omitempty,oneof=percentage fixed"`
		DiscountValue  float64    `json:"discountValue" binding:"required,gt=0"`
		MinOrderAmount float64    `json:"minOrderAmount"`
		MaxUses        int        `json:"maxUses"`
		ExpiresAt      *time.Time `json:"expiresAt"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if req.DiscountType == "" {
		req.DiscountType = entity.DiscountPercentage
	}
	if req.MaxUses == 0 {
		req.MaxUses = -1
	}

	promo := &entity.PromoCode{
		Code:           req.Code,
		DiscountType:   req.DiscountType,
		DiscountValue:  req.DiscountValue,
		MinOrderAmount: req.MinOrderAmount,
		MaxUses:        req.MaxUses,
		Active:         true,
		ExpiresAt:      req.ExpiresAt,
	}
	if err := h.Svc.Create(promo); err != nil {
		if errors.Is(err, services.ErrCodeTaken) {
			resp.Conflict(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, promo)
}

// PATCH /admin/promos/:promoId/toggle
func (h *PromoController) Toggle(c *gin.Context) {
	promoID, ok := uintParam(c, "promoId")
	if !ok {
		resp.BadRequest(c, "invalid promo id")
		return
	}

	promo, err := h.Svc.Toggle(promoID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "promo code not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, promo)
}
