package controllers

import (
	"errors"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type ReviewController struct{ Svc *services.ReviewService }

func NewReviewController(s *services.ReviewService) *ReviewController {
	return &ReviewController{Svc: s}
}

// GET /reviews/dish/:dishId
func (h *ReviewController) ListForDish(c *gin.Context) {
	dishID, ok := uintParam(c, "dishId")
	if !ok {
		resp.BadRequest(c, "invalid dish id")
		return
	}

	reviews, err := h.Svc.ListForDish(dishID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, reviews)
}

// POST /reviews/dish/:dishId
func (h *ReviewController) Add(c *gin.Context) {
	dishID, ok := uintParam(c, "dishId")
	if !ok {
		resp.BadRequest(c, "invalid dish id")
		return
	}

	var req struct {
		Rating  int    `json:"rating" binding:"required,min=1,max=5"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	review, err := h.Svc.Add(utils.CurrentUserID(c), dishID, req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "dish not found")
		case errors.Is(err, services.ErrAlreadyReviewed):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, review)
}
