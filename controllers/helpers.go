package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

func uintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}

func intQuery(c *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.DefaultQuery(name, strconv.Itoa(fallback)))
	if err != nil || v < 1 {
		return fallback
	}
	return v
}

// limitQuery reads the page-size query parameter and caps it at max.
func limitQuery(c *gin.Context, fallback, max int) int {
	v := intQuery(c, "limit", fallback)
	if v > max {
		return max
	}
	return v
}
