package controllers

import (
	"errors"

	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type DishController struct{ Svc *services.CatalogService }

func NewDishController(s *services.CatalogService) *DishController { return &DishController{Svc: s} }

// GET /dishes
func (h *DishController) List(c *gin.Context) {
	dishes, err := h.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, dishes)
}

// GET /dishes/popular
func (h *DishController) Popular(c *gin.Context) {
	dishes, err := h.Svc.Popular()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, dishes)
}

// GET /dishes/new
func (h *DishController) Newest(c *gin.Context) {
	dishes, err := h.Svc.Newest()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, dishes)
}

// GET /dishes/:dishId
func (h *DishController) Detail(c *gin.Context) {
	dishID, ok := uintParam(c, "dishId")
	if !ok {
		resp.BadRequest(c, "invalid dish id")
		return
	}

	dish, err := h.Svc.Detail(dishID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "dish not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, dish)
}

// POST /dishes (admin)
func (h *DishController) Create(c *gin.Context) {
	var req struct {
		Name     string  `json:"name" binding:"required"`
		Price    float64 `json:"price" binding:"required,gt=0"`
		Category string  `json:"category"`
		Image    string  `json:"image"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	dish, err := h.Svc.Add(req.Name, req.Price, req.Category, req.Image)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, dish)
}
