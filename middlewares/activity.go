package middlewares

import (
	"encoding/json"
	"log"
	"strconv"

	"backend/entity"
	"backend/repository"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

// LogActivity records the request in the activity log after the handler ran,
// for successful (2xx) responses only. idParam names the route parameter that
// carries the entity id; pass "" when there is none.
func LogActivity(repo *repository.ActivityRepository, action, entityType, idParam string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		if status < 200 || status >= 300 {
			return
		}

		var userID *uint
		if id := utils.CurrentUserID(c); id != 0 {
			userID = &id
		}

		var entityID *uint
		if idParam != "" {
			if v, err := strconv.ParseUint(c.Param(idParam), 10, 64); err == nil {
				id := uint(v)
				entityID = &id
			}
		}

		details, _ := json.Marshal(gin.H{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"role":   utils.CurrentRole(c),
		})

		logEntry := entity.ActivityLog{
			UserID:     userID,
			Action:     action,
			EntityType: entityType,
			EntityID:   entityID,
			IPAddress:  c.ClientIP(),
			Details:    datatypes.JSON(details),
		}
		if err := repo.Create(&logEntry); err != nil {
			log.Println("activity log error:", err)
		}
	}
}
