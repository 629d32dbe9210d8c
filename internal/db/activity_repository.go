package db

import (
	"github.com/terraincognita07/showerbuddy/internal/models"
	"gorm.io/gorm"
)

type ActivityRepository struct {
	database *gorm.DB
}

func NewActivityRepository(database *gorm.DB) *ActivityRepository {
	return &ActivityRepository{database: database}
}

func (repo *ActivityRepository) Create(activity *models.Activity) error {
	return classifyStoreError(repo.database.Omit("FlowActivities").Create(activity).Error)
}

func (repo *ActivityRepository) FindByID(activityID uint) (models.Activity, error) {
	var activity models.Activity
	if err := repo.database.First(&activity, activityID).Error; err != nil {
		return models.Activity{}, err
	}
	return activity, nil
}

func (repo *ActivityRepository) List() ([]models.Activity, error) {
	activities := make([]models.Activity, 0)
	if err := repo.database.Order("activity_id ASC").Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (repo *ActivityRepository) Save(activity *models.Activity) error {
	return classifyStoreError(repo.database.Omit("FlowActivities").Save(activity).Error)
}

// Delete fails with ErrForeignKeyViolation while any flow still uses the
// activity.
func (repo *ActivityRepository) Delete(activityID uint) error {
	return classifyStoreError(repo.database.Delete(&models.Activity{}, activityID).Error)
}
