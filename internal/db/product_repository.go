package db

import (
	"github.com/terraincognita07/showerbuddy/internal/models"
	"gorm.io/gorm"
)

type ProductRepository struct {
	database *gorm.DB
}

func NewProductRepository(database *gorm.DB) *ProductRepository {
	return &ProductRepository{database: database}
}

func (repo *ProductRepository) Create(product *models.Product) error {
	return classifyStoreError(repo.database.Create(product).Error)
}

func (repo *ProductRepository) FindByID(productID uint) (models.Product, error) {
	var product models.Product
	if err := repo.database.First(&product, productID).Error; err != nil {
		return models.Product{}, err
	}
	return product, nil
}

func (repo *ProductRepository) List() ([]models.Product, error) {
	products := make([]models.Product, 0)
	if err := repo.database.Order("product_name ASC, product_id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (repo *ProductRepository) Save(product *models.Product) error {
	return classifyStoreError(repo.database.Save(product).Error)
}

func (repo *ProductRepository) Delete(productID uint) error {
	return repo.database.Delete(&models.Product{}, productID).Error
}
