package models

import "time"

const (
	NotificationCategoryInfo    = "info"
	NotificationCategoryWarning = "warning"
)

type Notification struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index"`
	Message   string `gorm:"not null"`
	Category  string `gorm:"not null;default:info"`
	Read      bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
}
