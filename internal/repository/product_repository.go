package repository

import (
	"errors"

	"storefront/internal/apperrors"
	"storefront/internal/models"

	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *models.Product) error
	GetByID(id string) (*models.Product, error)
	GetByBusinessID(businessID string) ([]models.Product, error)
	GetByInventoryID(inventoryID string) ([]models.Product, error)
	GetAll() ([]models.Product, error)
	Update(product *models.Product) error
	Delete(id string) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *models.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return apperrors.InvalidElement("failed to insert product", err)
	}
	return nil
}

func (r *productRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	err := r.db.First(&product, "product_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("product", id)
		}
		return nil, apperrors.Storage("failed to get product", err)
	}
	return &product, nil
}

func (r *productRepository) GetByBusinessID(businessID string) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("business_id = ?", businessID).Find(&products).Error; err != nil {
		return nil, apperrors.Storage("failed to get products for business", err)
	}
	return products, nil
}

func (r *productRepository) GetByInventoryID(inventoryID string) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("inventory_id = ?", inventoryID).Find(&products).Error; err != nil {
		return nil, apperrors.Storage("failed to get products for inventory", err)
	}
	return products, nil
}

func (r *productRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Find(&products).Error; err != nil {
		return nil, apperrors.Storage("failed to get all products", err)
	}
	return products, nil
}

func (r *productRepository) Update(product *models.Product) error {
	if err := r.db.Save(product).Error; err != nil {
		return apperrors.InvalidElement("failed to update product", err)
	}
	return nil
}

func (r *productRepository) Delete(id string) error {
	res := r.db.Delete(&models.Product{}, "product_id = ?", id)
	if res.Error != nil {
		return apperrors.Storage("failed to delete product", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("product", id)
	}
	return nil
}
