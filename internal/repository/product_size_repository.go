package repository

import (
	"errors"

	"storefront/internal/apperrors"
	"storefront/internal/models"

	"gorm.io/gorm"
)

type ProductSizeRepository interface {
	Create(size *models.ProductSize) error
	GetByID(id string) (*models.ProductSize, error)
	GetByProductID(productID string) ([]models.ProductSize, error)
	GetAll() ([]models.ProductSize, error)
	Update(size *models.ProductSize) error
	Delete(id string) error
}

type productSizeRepository struct {
	db *gorm.DB
}

func NewProductSizeRepository(db *gorm.DB) ProductSizeRepository {
	return &productSizeRepository{db: db}
}

func (r *productSizeRepository) Create(size *models.ProductSize) error {
	if err := r.db.Create(size).Error; err != nil {
		return apperrors.InvalidElement("failed to insert product size", err)
	}
	return nil
}

func (r *productSizeRepository) GetByID(id string) (*models.ProductSize, error) {
	var size models.ProductSize
	err := r.db.First(&size, "size_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("product size", id)
		}
		return nil, apperrors.Storage("failed to get product size", err)
	}
	return &size, nil
}

func (r *productSizeRepository) GetByProductID(productID string) ([]models.ProductSize, error) {
	var sizes []models.ProductSize
	if err := r.db.Where("product_id = ?", productID).Find(&sizes).Error; err != nil {
		return nil, apperrors.Storage("failed to get sizes for product", err)
	}
	return sizes, nil
}

func (r *productSizeRepository) GetAll() ([]models.ProductSize, error) {
	var sizes []models.ProductSize
	if err := r.db.Find(&sizes).Error; err != nil {
		return nil, apperrors.Storage("failed to get all product sizes", err)
	}
	return sizes, nil
}

func (r *productSizeRepository) Update(size *models.ProductSize) error {
	if err := r.db.Save(size).Error; err != nil {
		return apperrors.InvalidElement("failed to update product size", err)
	}
	return nil
}

func (r *productSizeRepository) Delete(id string) error {
	res := r.db.Delete(&models.ProductSize{}, "size_id = ?", id)
	if res.Error != nil {
		return apperrors.Storage("failed to delete product size", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("product size", id)
	}
	return nil
}
