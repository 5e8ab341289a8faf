package db

import (
	"github.com/elowenrae/steady/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) FindByID(userID uint) (models.User, error) {
	var user models.User
	if err := repo.database.First(&user, userID).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) FindByNormalizedEmail(email string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("lower(trim(email)) = ?", email).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) ExistsByNormalizedEmail(email string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("lower(trim(email)) = ?", email).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

func (repo *UserRepository) ListIDs() ([]uint, error) {
	ids := make([]uint, 0)
	if err := repo.database.Model(&models.User{}).Order("id ASC").Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (repo *UserRepository) DeleteAccountAndRelatedData(userID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		for _, related := range []any{
			&models.HabitCompletion{},
			&models.HabitReminder{},
			&models.Habit{},
			&models.MoodEntry{},
			&models.Notification{},
			&models.UserSettings{},
		} {
			if err := tx.Where("user_id = ?", userID).Delete(related).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.User{}, userID).Error
	})
}
