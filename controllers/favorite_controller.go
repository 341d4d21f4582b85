package controllers

import (
	"errors"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type FavoriteController struct{ Svc *services.FavoriteService }

func NewFavoriteController(s *services.FavoriteService) *FavoriteController {
	return &FavoriteController{Svc: s}
}

// POST /favorites/add/:dishId
func (h *FavoriteController) Add(c *gin.Context) {
	dishID, ok := uintParam(c, "dishId")
	if !ok {
		resp.BadRequest(c, "invalid dish id")
		return
	}

	added, err := h.Svc.Add(utils.CurrentUserID(c), dishID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "dish not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	if !added {
		resp.OK(c, gin.H{"added": false, "message": "already in favorites"})
		return
	}
	resp.OK(c, gin.H{"added": true, "message": "added to favorites"})
}

// DELETE /favorites/:dishId
func (h *FavoriteController) Remove(c *gin.Context) {
	dishID, ok := uintParam(c, "dishId")
	if !ok {
		resp.BadRequest(c, "invalid dish id")
		return
	}

	removed, err := h.Svc.Remove(utils.CurrentUserID(c), dishID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	if !removed {
		resp.OK(c, gin.H{"removed": false, "message": "not in favorites"})
		return
	}
	resp.OK(c, gin.H{"removed": true, "message": "removed from favorites"})
}

// GET /favorites
func (h *FavoriteController) List(c *gin.Context) {
	favs, err := h.Svc.List(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, favs)
}
