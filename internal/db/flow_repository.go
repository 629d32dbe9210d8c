package db

import (
	"strings"

	"github.com/terraincognita07/showerbuddy/internal/models"
	"gorm.io/gorm"
)

type FlowRepository struct {
	database *gorm.DB
}

func NewFlowRepository(database *gorm.DB) *FlowRepository {
	return &FlowRepository{database: database}
}

// Create inserts flow, titling it "daily" when no title is given.
func (repo *FlowRepository) Create(flow *models.Flow) error {
	if strings.TrimSpace(flow.Title) == "" {
		flow.Title = models.DefaultFlowTitle
	}
	return classifyStoreError(repo.database.Omit("Client", "Steps").Create(flow).Error)
}

func (repo *FlowRepository) FindByID(flowID uint) (models.Flow, error) {
	var flow models.Flow
	if err := repo.database.Preload("Client").First(&flow, flowID).Error; err != nil {
		return models.Flow{}, err
	}
	return flow, nil
}

func (repo *FlowRepository) ListByClient(clientID uint) ([]models.Flow, error) {
	flows := make([]models.Flow, 0)
	if err := repo.database.
		Where("client_id = ?", clientID).
		Order("flow_id ASC").
		Find(&flows).Error; err != nil {
		return nil, err
	}
	return flows, nil
}

func (repo *FlowRepository) UpdateTitle(flowID uint, title string) error {
	return repo.database.Model(&models.Flow{}).Where("flow_id = ?", flowID).Update("title", title).Error
}

// Delete removes the flow and its steps. Activities are kept.
func (repo *FlowRepository) Delete(flowID uint) error {
	return classifyStoreError(repo.database.Delete(&models.Flow{}, flowID).Error)
}
