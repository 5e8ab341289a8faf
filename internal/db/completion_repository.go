package db

import (
	"time"

	"github.com/elowenrae/steady/internal/models"
	"gorm.io/gorm"
)

type CompletionRepository struct {
	database *gorm.DB
}

func NewCompletionRepository(database *gorm.DB) *CompletionRepository {
	return &CompletionRepository{database: database}
}

func (repo *CompletionRepository) FindByHabitAndDate(userID uint, habitID uint, day time.Time) (models.HabitCompletion, bool, error) {
	completion := models.HabitCompletion{}
	result := repo.database.
		Where("user_id = ? AND habit_id = ? AND date = ?", userID, habitID, day).
		Limit(1).
		Find(&completion)
	if result.Error != nil {
		return models.HabitCompletion{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.HabitCompletion{}, false, nil
	}
	return completion, true, nil
}

func (repo *CompletionRepository) ListByUserAndDate(userID uint, day time.Time) ([]models.HabitCompletion, error) {
	completions := make([]models.HabitCompletion, 0)
	if err := repo.database.
		Where("user_id = ? AND date = ?", userID, day).
		Order("habit_id ASC").
		Find(&completions).Error; err != nil {
		return nil, err
	}
	return completions, nil
}

func (repo *CompletionRepository) ListCompletedDates(userID uint, habitID uint) ([]time.Time, error) {
	dates := make([]time.Time, 0)
	if err := repo.database.Model(&models.HabitCompletion{}).
		Where("user_id = ? AND habit_id = ? AND completed = ?", userID, habitID, true).
		Order("date ASC").
		Pluck("date", &dates).Error; err != nil {
		return nil, err
	}
	return dates, nil
}

func (repo *CompletionRepository) HasCompletedOn(userID uint, habitID uint, day time.Time) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.HabitCompletion{}).
		Where("user_id = ? AND habit_id = ? AND date = ? AND completed = ?", userID, habitID, day, true).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *CompletionRepository) CountCompletedInRange(userID uint, from time.Time, to time.Time) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.HabitCompletion{}).
		Where("user_id = ? AND date >= ? AND date <= ? AND completed = ?", userID, from, to, true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *CompletionRepository) Create(completion *models.HabitCompletion) error {
	return repo.database.Create(completion).Error
}

func (repo *CompletionRepository) Save(completion *models.HabitCompletion) error {
	return repo.database.Save(completion).Error
}
