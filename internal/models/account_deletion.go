package models

import (
	"time"
)

const (
	DeletionPending   = "pending"
	DeletionCompleted = "completed"
	DeletionCancelled = "cancelled"
)

// AccountDeletion is a scheduled account wipe with a grace period.
type AccountDeletion struct {
	BaseModel
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	ScheduledAt time.Time `gorm:"index;not null" json:"scheduled_at"`
	Status      string    `gorm:"type:varchar(10);not null;default:pending" json:"status"`
}
