package services

import (
	"errors"
	"testing"

	"github.com/elowenrae/steady/internal/models"
)

type stubHabitRepo struct {
	habits  []models.Habit
	nextID  uint
	deleted []uint
}

func (stub *stubHabitRepo) ListByUser(userID uint) ([]models.Habit, error) {
	matched := make([]models.Habit, 0)
	for _, habit := range stub.habits {
		if habit.UserID == userID {
			matched = append(matched, habit)
		}
	}
	return matched, nil
}

func (stub *stubHabitRepo) CountByUser(userID uint) (int64, error) {
	var count int64
	for _, habit := range stub.habits {
		if habit.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (stub *stubHabitRepo) ExistsByUserAndName(userID uint, name string) (bool, error) {
	for _, habit := range stub.habits {
		if habit.UserID == userID && habit.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (stub *stubHabitRepo) FindByIDForUser(habitID uint, userID uint) (models.Habit, bool, error) {
	for _, habit := range stub.habits {
		if habit.ID == habitID && habit.UserID == userID {
			return habit, true, nil
		}
	}
	return models.Habit{}, false, nil
}

func (stub *stubHabitRepo) Create(habit *models.Habit) error {
	stub.nextID++
	habit.ID = stub.nextID
	stub.habits = append(stub.habits, *habit)
	return nil
}

func (stub *stubHabitRepo) Save(habit *models.Habit) error {
	for i := range stub.habits {
		if stub.habits[i].ID == habit.ID {
			stub.habits[i] = *habit
			return nil
		}
	}
	return errors.New("habit not found")
}

func (stub *stubHabitRepo) DeleteWithRelatedData(habitID uint, userID uint) error {
	stub.deleted = append(stub.deleted, habitID)
	kept := stub.habits[:0]
	for _, habit := range stub.habits {
		if habit.ID != habitID || habit.UserID != userID {
			kept = append(kept, habit)
		}
	}
	stub.habits = kept
	return nil
}

func TestCreateHabitTrimsAndStores(t *testing.T) {
	repo := &stubHabitRepo{}
	service := NewHabitService(repo)

	habit, err := service.CreateHabit(1, "  Morning Run  ", "  around the block ", models.PeriodicityDaily)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if habit.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if habit.Name != "Morning Run" || habit.Description != "around the block" {
		t.Fatalf("expected trimmed fields, got %+v", habit)
	}
}

func TestCreateHabitValidation(t *testing.T) {
	tests := []struct {
		name        string
		habitName   string
		periodicity string
		existing    []models.Habit
		want        error
	}{
		{name: "blank name", habitName: "   ", periodicity: models.PeriodicityDaily, want: ErrHabitNameRequired},
		{name: "bad periodicity", habitName: "Read", periodicity: "hourly", want: ErrInvalidPeriodicity},
		{
			name:        "duplicate name",
			habitName:   "Read",
			periodicity: models.PeriodicityDaily,
			existing:    []models.Habit{{ID: 1, UserID: 1, Name: "Read"}},
			want:        ErrHabitNameTaken,
		},
		{
			name:        "limit reached",
			habitName:   "Sixth",
			periodicity: models.PeriodicityDaily,
			existing: []models.Habit{
				{ID: 1, UserID: 1, Name: "A"}, {ID: 2, UserID: 1, Name: "B"},
				{ID: 3, UserID: 1, Name: "C"}, {ID: 4, UserID: 1, Name: "D"},
				{ID: 5, UserID: 1, Name: "E"},
			},
			want: ErrHabitLimitReached,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := &stubHabitRepo{habits: test.existing, nextID: uint(len(test.existing))}
			service := NewHabitService(repo)

			if _, err := service.CreateHabit(1, test.habitName, "", test.periodicity); !errors.Is(err, test.want) {
				t.Fatalf("expected %v, got %v", test.want, err)
			}
		})
	}
}

func TestCreateHabitLimitIsPerUser(t *testing.T) {
	repo := &stubHabitRepo{nextID: 5, habits: []models.Habit{
		{ID: 1, UserID: 2, Name: "A"}, {ID: 2, UserID: 2, Name: "B"},
		{ID: 3, UserID: 2, Name: "C"}, {ID: 4, UserID: 2, Name: "D"},
		{ID: 5, UserID: 2, Name: "E"},
	}}
	service := NewHabitService(repo)

	if _, err := service.CreateHabit(1, "Read", "", models.PeriodicityDaily); err != nil {
		t.Fatalf("another user's habits must not count against the cap: %v", err)
	}
}

func TestUpdateHabitKeepingOwnNameIsNotADuplicate(t *testing.T) {
	repo := &stubHabitRepo{nextID: 1, habits: []models.Habit{
		{ID: 1, UserID: 1, Name: "Read", Periodicity: models.PeriodicityDaily},
	}}
	service := NewHabitService(repo)

	habit, err := service.UpdateHabit(1, 1, "Read", "ten pages", models.PeriodicityWeekly)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if habit.Periodicity != models.PeriodicityWeekly || habit.Description != "ten pages" {
		t.Fatalf("unexpected habit after update: %+v", habit)
	}
}

func TestUpdateHabitRejectsTakenName(t *testing.T) {
	repo := &stubHabitRepo{nextID: 2, habits: []models.Habit{
		{ID: 1, UserID: 1, Name: "Read", Periodicity: models.PeriodicityDaily},
		{ID: 2, UserID: 1, Name: "Run", Periodicity: models.PeriodicityDaily},
	}}
	service := NewHabitService(repo)

	if _, err := service.UpdateHabit(1, 2, "Read", "", models.PeriodicityDaily); !errors.Is(err, ErrHabitNameTaken) {
		t.Fatalf("expected ErrHabitNameTaken, got %v", err)
	}
}

func TestHabitOperationsScopedToOwner(t *testing.T) {
	repo := &stubHabitRepo{nextID: 1, habits: []models.Habit{
		{ID: 1, UserID: 2, Name: "Read", Periodicity: models.PeriodicityDaily},
	}}
	service := NewHabitService(repo)

	if _, err := service.GetHabit(1, 1); !errors.Is(err, ErrHabitNotFound) {
		t.Fatalf("expected ErrHabitNotFound, got %v", err)
	}
	if _, err := service.UpdateHabit(1, 1, "Read", "", models.PeriodicityDaily); !errors.Is(err, ErrHabitNotFound) {
		t.Fatalf("expected ErrHabitNotFound on update, got %v", err)
	}
	if err := service.DeleteHabit(1, 1); !errors.Is(err, ErrHabitNotFound) {
		t.Fatalf("expected ErrHabitNotFound on delete, got %v", err)
	}
	if len(repo.deleted) != 0 {
		t.Fatalf("nothing should have been deleted, got %v", repo.deleted)
	}
}

func TestDeleteHabitRemovesRelatedData(t *testing.T) {
	repo := &stubHabitRepo{nextID: 1, habits: []models.Habit{
		{ID: 1, UserID: 1, Name: "Read", Periodicity: models.PeriodicityDaily},
	}}
	service := NewHabitService(repo)

	if err := service.DeleteHabit(1, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != 1 {
		t.Fatalf("expected cascade delete of habit 1, got %v", repo.deleted)
	}
}
