package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/terraincognita07/showerbuddy/internal/db"
	"github.com/terraincognita07/showerbuddy/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrEmailAlreadyRegistered = errors.New("email already registered")

type AuthUserRepository interface {
	CheckIfRegistered(email string) (models.User, bool, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
	UpdatePassword(userID uint, passwordHash string) error
}

// AuthService is the only place caregiver passwords are written; it stores
// bcrypt hashes, never the plaintext.
type AuthService struct {
	users    AuthUserRepository
	hashCost int
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users, hashCost: bcrypt.DefaultCost}
}

// CheckIfRegistered reports whether a caregiver account exists for email, so
// callers can send the visitor to login instead of registration.
func (service *AuthService) CheckIfRegistered(email string) (models.User, bool, error) {
	return service.users.CheckIfRegistered(email)
}

func (service *AuthService) Register(emailRaw string, passwordRaw string, telephoneRaw string) (models.User, error) {
	email, password, err := NormalizeCredentialsInput(emailRaw, passwordRaw)
	if err != nil {
		return models.User{}, err
	}
	if err := ValidatePasswordStrength(password); err != nil {
		return models.User{}, err
	}
	telephone, err := NormalizeTelephone(telephoneRaw)
	if err != nil {
		return models.User{}, err
	}

	if _, exists, err := service.users.CheckIfRegistered(email); err != nil {
		return models.User{}, fmt.Errorf("check registration: %w", err)
	} else if exists {
		return models.User{}, ErrEmailAlreadyRegistered
	}

	passwordHash, err := service.hashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Email:        email,
		PasswordHash: passwordHash,
		Telephone:    telephone,
	}
	if err := service.users.Create(&user); err != nil {
		if errors.Is(err, db.ErrUniqueViolation) {
			return models.User{}, fmt.Errorf("%w: %w", ErrEmailAlreadyRegistered, err)
		}
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login returns the caregiver owning the credentials. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (service *AuthService) Login(emailRaw string, passwordRaw string) (models.User, error) {
	email, password, err := NormalizeCredentialsInput(emailRaw, passwordRaw)
	if err != nil {
		return models.User{}, ErrAuthCredentialsInvalid
	}

	user, exists, err := service.users.CheckIfRegistered(email)
	if err != nil {
		return models.User{}, fmt.Errorf("load user: %w", err)
	}
	if !exists {
		return models.User{}, ErrAuthCredentialsInvalid
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrAuthCredentialsInvalid
	}
	return user, nil
}

// ChangePassword trims newPassword the same way Login does before checking
// and hashing it.
func (service *AuthService) ChangePassword(userID uint, newPassword string) error {
	newPassword = strings.TrimSpace(newPassword)
	if newPassword == "" {
		return ErrWeakPassword
	}
	if err := ValidatePasswordStrength(newPassword); err != nil {
		return err
	}
	if _, err := service.users.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user %d not found: %w", userID, err)
		}
		return fmt.Errorf("load user: %w", err)
	}

	passwordHash, err := service.hashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := service.users.UpdatePassword(userID, passwordHash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}

func (service *AuthService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), service.hashCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
