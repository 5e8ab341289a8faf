package services

import (
	"errors"
	"strings"

	"github.com/elowenrae/steady/internal/models"
)

var (
	ErrHabitNameRequired  = errors.New("habit name required")
	ErrInvalidPeriodicity = errors.New("periodicity must be daily, weekly or monthly")
	ErrHabitLimitReached  = errors.New("habit limit reached")
	ErrHabitNameTaken     = errors.New("habit name already in use")
	ErrHabitNotFound      = errors.New("habit not found")
)

type HabitWriteRepository interface {
	ListByUser(userID uint) ([]models.Habit, error)
	CountByUser(userID uint) (int64, error)
	ExistsByUserAndName(userID uint, name string) (bool, error)
	FindByIDForUser(habitID uint, userID uint) (models.Habit, bool, error)
	Create(habit *models.Habit) error
	Save(habit *models.Habit) error
	DeleteWithRelatedData(habitID uint, userID uint) error
}

type HabitService struct {
	habits HabitWriteRepository
}

func NewHabitService(habits HabitWriteRepository) *HabitService {
	return &HabitService{habits: habits}
}

func (service *HabitService) ListHabits(userID uint) ([]models.Habit, error) {
	return service.habits.ListByUser(userID)
}

func (service *HabitService) GetHabit(userID uint, habitID uint) (models.Habit, error) {
	habit, found, err := service.habits.FindByIDForUser(habitID, userID)
	if err != nil {
		return models.Habit{}, err
	}
	if !found {
		return models.Habit{}, ErrHabitNotFound
	}
	return habit, nil
}

// CreateHabit enforces the advisory cap of 5 habits per user and the
// unique (user, name) pair before inserting.
func (service *HabitService) CreateHabit(userID uint, name string, description string, periodicity string) (models.Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Habit{}, ErrHabitNameRequired
	}
	if !models.ValidPeriodicity(periodicity) {
		return models.Habit{}, ErrInvalidPeriodicity
	}

	count, err := service.habits.CountByUser(userID)
	if err != nil {
		return models.Habit{}, err
	}
	if count >= models.MaxHabitsPerUser {
		return models.Habit{}, ErrHabitLimitReached
	}

	taken, err := service.habits.ExistsByUserAndName(userID, name)
	if err != nil {
		return models.Habit{}, err
	}
	if taken {
		return models.Habit{}, ErrHabitNameTaken
	}

	habit := models.Habit{
		UserID:      userID,
		Name:        name,
		Description: strings.TrimSpace(description),
		Periodicity: periodicity,
	}
	if err := service.habits.Create(&habit); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

func (service *HabitService) UpdateHabit(userID uint, habitID uint, name string, description string, periodicity string) (models.Habit, error) {
	habit, err := service.GetHabit(userID, habitID)
	if err != nil {
		return models.Habit{}, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return models.Habit{}, ErrHabitNameRequired
	}
	if !models.ValidPeriodicity(periodicity) {
		return models.Habit{}, ErrInvalidPeriodicity
	}
	if name != habit.Name {
		taken, err := service.habits.ExistsByUserAndName(userID, name)
		if err != nil {
			return models.Habit{}, err
		}
		if taken {
			return models.Habit{}, ErrHabitNameTaken
		}
	}

	habit.Name = name
	habit.Description = strings.TrimSpace(description)
	habit.Periodicity = periodicity
	if err := service.habits.Save(&habit); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

// DeleteHabit removes the habit together with its completions and
// reminder row.
func (service *HabitService) DeleteHabit(userID uint, habitID uint) error {
	if _, err := service.GetHabit(userID, habitID); err != nil {
		return err
	}
	return service.habits.DeleteWithRelatedData(habitID, userID)
}
