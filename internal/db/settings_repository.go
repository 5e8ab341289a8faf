package db

import (
	"github.com/elowenrae/steady/internal/models"
	"gorm.io/gorm"
)

type SettingsRepository struct {
	database *gorm.DB
}

func NewSettingsRepository(database *gorm.DB) *SettingsRepository {
	return &SettingsRepository{database: database}
}

func (repo *SettingsRepository) FindByUser(userID uint) (models.UserSettings, bool, error) {
	settings := models.UserSettings{}
	result := repo.database.
		Where("user_id = ?", userID).
		Limit(1).
		Find(&settings)
	if result.Error != nil {
		return models.UserSettings{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.UserSettings{}, false, nil
	}
	return settings, true, nil
}

func (repo *SettingsRepository) Create(settings *models.UserSettings) error {
	return repo.database.Create(settings).Error
}

func (repo *SettingsRepository) Save(settings *models.UserSettings) error {
	return repo.database.Save(settings).Error
}
