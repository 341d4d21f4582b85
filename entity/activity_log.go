package entity

import (
	"time"

	"gorm.io/datatypes"
)

// ActivityLog records a successful mutating request. UserID is nil for
// anonymous actions (e.g. register, failed-over system events).
type ActivityLog struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	UserID     *uint          `json:"userId"`
	Action     string         `gorm:"not null" json:"action"`
	EntityType string         `json:"entityType"`
	EntityID   *uint          `json:"entityId"`
	IPAddress  string         `json:"ipAddress"`
	Details    datatypes.JSON `json:"details"`
	CreatedAt  time.Time      `json:"createdAt"`
}
