package db

import (
	"github.com/terraincognita07/showerbuddy/internal/models"
	"gorm.io/gorm"
)

type FlowActivityRepository struct {
	database *gorm.DB
}

func NewFlowActivityRepository(database *gorm.DB) *FlowActivityRepository {
	return &FlowActivityRepository{database: database}
}

// Create inserts a step. A second step at the same position of the same flow
// fails with ErrUniqueViolation.
func (repo *FlowActivityRepository) Create(step *models.FlowActivity) error {
	return classifyStoreError(repo.database.Omit("Flow", "Activity").Create(step).Error)
}

// ListOrdered returns the steps of a flow by ascending position, each with
// its activity loaded.
func (repo *FlowActivityRepository) ListOrdered(flowID uint) ([]models.FlowActivity, error) {
	steps := make([]models.FlowActivity, 0)
	if err := repo.database.
		Preload("Activity").
		Where("flow_id = ?", flowID).
		Order("seq_step ASC").
		Find(&steps).Error; err != nil {
		return nil, err
	}
	return steps, nil
}

func (repo *FlowActivityRepository) MaxSeqStep(flowID uint) (int, error) {
	var maxStep int
	if err := repo.database.Model(&models.FlowActivity{}).
		Where("flow_id = ?", flowID).
		Select("COALESCE(MAX(seq_step), 0)").
		Scan(&maxStep).Error; err != nil {
		return 0, err
	}
	return maxStep, nil
}

func (repo *FlowActivityRepository) FindByID(stepID uint) (models.FlowActivity, error) {
	var step models.FlowActivity
	if err := repo.database.Preload("Activity").First(&step, stepID).Error; err != nil {
		return models.FlowActivity{}, err
	}
	return step, nil
}

func (repo *FlowActivityRepository) Delete(stepID uint) error {
	return repo.database.Delete(&models.FlowActivity{}, stepID).Error
}
