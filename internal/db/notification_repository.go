package db

import (
	"github.com/elowenrae/steady/internal/models"
	"gorm.io/gorm"
)

type NotificationRepository struct {
	database *gorm.DB
}

func NewNotificationRepository(database *gorm.DB) *NotificationRepository {
	return &NotificationRepository{database: database}
}

func (repo *NotificationRepository) ListByUser(userID uint, limit int) ([]models.Notification, error) {
	notifications := make([]models.Notification, 0)
	query := repo.database.Where("user_id = ?", userID).Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (repo *NotificationRepository) CountUnread(userID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *NotificationRepository) Create(notification *models.Notification) error {
	return repo.database.Create(notification).Error
}

func (repo *NotificationRepository) MarkRead(notificationID uint, userID uint) error {
	return repo.database.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("read", true).Error
}
