package db

import (
	"time"

	"github.com/elowenrae/steady/internal/models"
	"gorm.io/gorm"
)

type ReminderRepository struct {
	database *gorm.DB
}

func NewReminderRepository(database *gorm.DB) *ReminderRepository {
	return &ReminderRepository{database: database}
}

func (repo *ReminderRepository) FindByUserAndHabit(userID uint, habitID uint) (models.HabitReminder, bool, error) {
	reminder := models.HabitReminder{}
	result := repo.database.
		Where("user_id = ? AND habit_id = ?", userID, habitID).
		Limit(1).
		Find(&reminder)
	if result.Error != nil {
		return models.HabitReminder{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.HabitReminder{}, false, nil
	}
	return reminder, true, nil
}

func (repo *ReminderRepository) ListActiveByUser(userID uint) ([]models.HabitReminder, error) {
	reminders := make([]models.HabitReminder, 0)
	if err := repo.database.
		Where("user_id = ? AND active = ?", userID, true).
		Order("next_trigger_utc ASC").
		Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

// ListDue returns active reminders whose trigger is at or before the
// reference instant (inclusive boundary).
func (repo *ReminderRepository) ListDue(reference time.Time) ([]models.HabitReminder, error) {
	reminders := make([]models.HabitReminder, 0)
	if err := repo.database.
		Where("active = ? AND next_trigger_utc <= ?", true, reference).
		Order("next_trigger_utc ASC, id ASC").
		Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

func (repo *ReminderRepository) Create(reminder *models.HabitReminder) error {
	return repo.database.Create(reminder).Error
}

func (repo *ReminderRepository) Save(reminder *models.HabitReminder) error {
	return repo.database.Save(reminder).Error
}

func (repo *ReminderRepository) UpdateNextTrigger(reminderID uint, next time.Time) error {
	return repo.database.Model(&models.HabitReminder{}).
		Where("id = ?", reminderID).
		Update("next_trigger_utc", next).Error
}

func (repo *ReminderRepository) Deactivate(reminderID uint) error {
	return repo.database.Model(&models.HabitReminder{}).
		Where("id = ?", reminderID).
		Update("active", false).Error
}
