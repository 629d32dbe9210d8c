package db

import (
	"github.com/terraincognita07/showerbuddy/internal/models"
	"gorm.io/gorm"
)

type ClientRepository struct {
	database *gorm.DB
}

func NewClientRepository(database *gorm.DB) *ClientRepository {
	return &ClientRepository{database: database}
}

func (repo *ClientRepository) Create(client *models.Client) error {
	return classifyStoreError(repo.database.Omit("Caregiver", "Flows").Create(client).Error)
}

func (repo *ClientRepository) FindByID(clientID uint) (models.Client, error) {
	var client models.Client
	if err := repo.database.Preload("Caregiver").First(&client, clientID).Error; err != nil {
		return models.Client{}, err
	}
	return client, nil
}

func (repo *ClientRepository) ListByCaregiver(caregiverID uint) ([]models.Client, error) {
	clients := make([]models.Client, 0)
	if err := repo.database.
		Where("caregiver_id = ?", caregiverID).
		Order("client_id ASC").
		Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (repo *ClientRepository) Save(client *models.Client) error {
	return classifyStoreError(repo.database.Omit("Caregiver", "Flows").Save(client).Error)
}

// Delete removes the client together with its flows and their steps.
func (repo *ClientRepository) Delete(clientID uint) error {
	return classifyStoreError(repo.database.Delete(&models.Client{}, clientID).Error)
}

// CheckIfClient is meant to find an existing client with the same name and
// body type under one caregiver, so a new flow can be added to it instead of
// duplicating the client. It always returns ErrNotImplemented.
//
// TODO: match on (caregiver_id, client_name, client_body) once the
// add-a-flow screen decides how near-duplicates are handled.
func (repo *ClientRepository) CheckIfClient(caregiverID uint, name string, body string) (models.Client, bool, error) {
	return models.Client{}, false, ErrNotImplemented
}
