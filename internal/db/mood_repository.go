package db

import (
	"time"

	"github.com/elowenrae/steady/internal/models"
	"gorm.io/gorm"
)

type MoodRepository struct {
	database *gorm.DB
}

func NewMoodRepository(database *gorm.DB) *MoodRepository {
	return &MoodRepository{database: database}
}

func (repo *MoodRepository) FindByUserAndDate(userID uint, day time.Time) (models.MoodEntry, bool, error) {
	entry := models.MoodEntry{}
	result := repo.database.
		Where("user_id = ? AND date = ?", userID, day).
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.MoodEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.MoodEntry{}, false, nil
	}
	return entry, true, nil
}

func (repo *MoodRepository) ListByUser(userID uint) ([]models.MoodEntry, error) {
	entries := make([]models.MoodEntry, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("date DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *MoodRepository) ListInRange(userID uint, from time.Time, to time.Time) ([]models.MoodEntry, error) {
	entries := make([]models.MoodEntry, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *MoodRepository) ListRecent(userID uint, until time.Time, limit int) ([]models.MoodEntry, error) {
	entries := make([]models.MoodEntry, 0)
	if err := repo.database.
		Where("user_id = ? AND date <= ?", userID, until).
		Order("date DESC").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *MoodRepository) Create(entry *models.MoodEntry) error {
	return repo.database.Create(entry).Error
}

func (repo *MoodRepository) Save(entry *models.MoodEntry) error {
	return repo.database.Save(entry).Error
}
