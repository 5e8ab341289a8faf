package services

import (
	"time"

	"github.com/elowenrae/steady/internal/models"
)

type DashboardHabitReader interface {
	ListByUser(userID uint) ([]models.Habit, error)
}

type DashboardCompletionRepository interface {
	FindByHabitAndDate(userID uint, habitID uint, day time.Time) (models.HabitCompletion, bool, error)
	ListByUserAndDate(userID uint, day time.Time) ([]models.HabitCompletion, error)
	Create(completion *models.HabitCompletion) error
	Save(completion *models.HabitCompletion) error
}

// DashboardService owns the lazy creation of today's completion rows:
// one row per habit per day, created the first time the dashboard is
// viewed.
type DashboardService struct {
	habits      DashboardHabitReader
	completions DashboardCompletionRepository
}

func NewDashboardService(habits DashboardHabitReader, completions DashboardCompletionRepository) *DashboardService {
	return &DashboardService{
		habits:      habits,
		completions: completions,
	}
}

// EnsureCompletionsForDate backfills missing completion rows for every
// habit the user owns, then returns the full set for the day.
func (service *DashboardService) EnsureCompletionsForDate(userID uint, day time.Time) ([]models.HabitCompletion, error) {
	date := DateOnlyUTC(day)
	habits, err := service.habits.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	for _, habit := range habits {
		_, found, err := service.completions.FindByHabitAndDate(userID, habit.ID, date)
		if err != nil {
			return nil, err
		}
		if found {
			continue
		}
		completion := models.HabitCompletion{
			UserID:  userID,
			HabitID: habit.ID,
			Date:    date,
		}
		if err := service.completions.Create(&completion); err != nil {
			return nil, err
		}
	}

	return service.completions.ListByUserAndDate(userID, date)
}

// SetCompletion checks or unchecks a habit's box for the day. The row
// is created on demand so toggling works even before a dashboard view
// materialized it.
func (service *DashboardService) SetCompletion(userID uint, habitID uint, day time.Time, completed bool) (models.HabitCompletion, error) {
	date := DateOnlyUTC(day)
	completion, found, err := service.completions.FindByHabitAndDate(userID, habitID, date)
	if err != nil {
		return models.HabitCompletion{}, err
	}

	if !found {
		completion = models.HabitCompletion{
			UserID:    userID,
			HabitID:   habitID,
			Date:      date,
			Completed: completed,
		}
		if err := service.completions.Create(&completion); err != nil {
			return models.HabitCompletion{}, err
		}
		return completion, nil
	}

	completion.Completed = completed
	if err := service.completions.Save(&completion); err != nil {
		return models.HabitCompletion{}, err
	}
	return completion, nil
}
