package db

import (
	"github.com/elowenrae/steady/internal/models"
	"gorm.io/gorm"
)

type HabitRepository struct {
	database *gorm.DB
}

func NewHabitRepository(database *gorm.DB) *HabitRepository {
	return &HabitRepository{database: database}
}

func (repo *HabitRepository) ListByUser(userID uint) ([]models.Habit, error) {
	habits := make([]models.Habit, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("created_at DESC, id DESC").Find(&habits).Error; err != nil {
		return nil, err
	}
	return habits, nil
}

func (repo *HabitRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Habit{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *HabitRepository) ExistsByUserAndName(userID uint, name string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.Habit{}).
		Where("user_id = ? AND name = ?", userID, name).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *HabitRepository) FindByIDForUser(habitID uint, userID uint) (models.Habit, bool, error) {
	habit := models.Habit{}
	result := repo.database.
		Where("id = ? AND user_id = ?", habitID, userID).
		Limit(1).
		Find(&habit)
	if result.Error != nil {
		return models.Habit{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Habit{}, false, nil
	}
	return habit, true, nil
}

func (repo *HabitRepository) Create(habit *models.Habit) error {
	return repo.database.Create(habit).Error
}

func (repo *HabitRepository) Save(habit *models.Habit) error {
	return repo.database.Save(habit).Error
}

func (repo *HabitRepository) DeleteWithRelatedData(habitID uint, userID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND habit_id = ?", userID, habitID).Delete(&models.HabitCompletion{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ? AND habit_id = ?", userID, habitID).Delete(&models.HabitReminder{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ? AND user_id = ?", habitID, userID).Delete(&models.Habit{}).Error
	})
}
