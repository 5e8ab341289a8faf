package services

import (
	"errors"
	"strings"

	"github.com/elowenrae/steady/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailRequired      = errors.New("email and password required")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type AuthUserRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
}

type AuthSettingsWriter interface {
	Create(settings *models.UserSettings) error
}

type AuthService struct {
	users    AuthUserRepository
	settings AuthSettingsWriter
}

func NewAuthService(users AuthUserRepository, settings AuthSettingsWriter) *AuthService {
	return &AuthService{
		users:    users,
		settings: settings,
	}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates the user plus a default settings row so reminders
// and low-mood alerts work out of the box.
func (service *AuthService) Register(email string, password string, displayName string) (models.User, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return models.User{}, ErrEmailRequired
	}

	taken, err := service.users.ExistsByNormalizedEmail(email)
	if err != nil {
		return models.User{}, err
	}
	if taken {
		return models.User{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  strings.TrimSpace(displayName),
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, err
	}

	settings := models.DefaultUserSettings(user.ID)
	if err := service.settings.Create(&settings); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (service *AuthService) Authenticate(email string, password string) (models.User, error) {
	user, err := service.users.FindByNormalizedEmail(NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}
