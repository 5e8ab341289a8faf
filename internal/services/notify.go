package services

import (
	"fmt"
	"log"

	"github.com/elowenrae/steady/internal/models"
)

const defaultEmailSubject = "Steady Notification"

type NotificationWriter interface {
	Create(notification *models.Notification) error
}

type NotifierUserReader interface {
	FindByID(userID uint) (models.User, error)
}

// Mailer is the outbound email transport. Delivery is best-effort;
// failures are logged, never surfaced to the user.
type Mailer interface {
	Send(to string, subject string, body string) error
}

type NotifyService struct {
	notifications NotificationWriter
	users         NotifierUserReader
	mailer        Mailer
}

func NewNotifyService(notifications NotificationWriter, users NotifierUserReader, mailer Mailer) *NotifyService {
	return &NotifyService{
		notifications: notifications,
		users:         users,
		mailer:        mailer,
	}
}

// Notify records an in-app notification and optionally emails a copy.
// The in-app record is created regardless of email state.
func (service *NotifyService) Notify(userID uint, message string, category string, sendEmail bool, subject string) error {
	notification := models.Notification{
		UserID:   userID,
		Message:  message,
		Category: category,
	}
	if err := service.notifications.Create(&notification); err != nil {
		return fmt.Errorf("record notification: %w", err)
	}

	if !sendEmail {
		return nil
	}

	user, err := service.users.FindByID(userID)
	if err != nil {
		// User gone between notify and lookup; in-app row already exists.
		return nil
	}
	if user.Email == "" {
		return nil
	}

	if subject == "" {
		subject = defaultEmailSubject
	}
	if err := service.mailer.Send(user.Email, subject, message); err != nil {
		log.Printf("notify: email to user %d failed: %v", userID, err)
	}
	return nil
}

// SendLowMoodAlert fires a warning when the new mood entry breaches the
// user's threshold. Disabled alerts and scores above the threshold are
// no-ops.
func (service *NotifyService) SendLowMoodAlert(settings models.UserSettings, entry models.MoodEntry) error {
	if !settings.NotifyLowMood {
		return nil
	}
	if entry.Score > settings.LowMoodThreshold {
		return nil
	}

	message := fmt.Sprintf("Your mood today was %d. Be kind to yourself - try a small, gentle habit.", entry.Score)
	return service.Notify(entry.UserID, message, models.NotificationCategoryWarning, true, "Low Mood Alert")
}
