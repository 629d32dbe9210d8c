package db

import (
	"strings"

	"github.com/terraincognita07/showerbuddy/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

// CheckIfRegistered returns the caregiver registered under email. Matching
// ignores case and surrounding whitespace.
func (repo *UserRepository) CheckIfRegistered(email string) (models.User, bool, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return models.User{}, false, nil
	}

	var user models.User
	result := repo.database.
		Where("lower(email) = ?", normalized).
		Order("user_id ASC").
		Limit(1).
		Find(&user)
	if result.Error != nil {
		return models.User{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.User{}, false, nil
	}
	return user, true, nil
}

func (repo *UserRepository) FindByID(userID uint) (models.User, error) {
	var user models.User
	if err := repo.database.First(&user, userID).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) CountUsers() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return classifyStoreError(repo.database.Omit("Clients").Create(user).Error)
}

func (repo *UserRepository) Save(user *models.User) error {
	return classifyStoreError(repo.database.Omit("Clients").Save(user).Error)
}

func (repo *UserRepository) UpdatePassword(userID uint, passwordHash string) error {
	return repo.database.Model(&models.User{}).Where("user_id = ?", userID).Update("password", passwordHash).Error
}

func (repo *UserRepository) UpdateTelephone(userID uint, telephone string) error {
	return repo.database.Model(&models.User{}).Where("user_id = ?", userID).Update("telephone", telephone).Error
}

// Delete removes the caregiver. Their clients stay, with the caregiver
// reference cleared by the store.
func (repo *UserRepository) Delete(userID uint) error {
	return classifyStoreError(repo.database.Delete(&models.User{}, userID).Error)
}
