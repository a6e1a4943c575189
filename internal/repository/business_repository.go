package repository

import (
	"errors"

	"storefront/internal/apperrors"
	"storefront/internal/models"

	"gorm.io/gorm"
)

type BusinessRepository interface {
	Create(business *models.Business) error
	GetByID(id string) (*models.Business, error)
	GetAll() ([]models.Business, error)
	Update(business *models.Business) error
	Delete(id string) error
}

type businessRepository struct {
	db *gorm.DB
}

func NewBusinessRepository(db *gorm.DB) BusinessRepository {
	return &businessRepository{db: db}
}

func (r *businessRepository) Create(business *models.Business) error {
	if err := r.db.Create(business).Error; err != nil {
		return apperrors.InvalidElement("failed to insert business", err)
	}
	return nil
}

func (r *businessRepository) GetByID(id string) (*models.Business, error) {
	var business models.Business
	err := r.db.First(&business, "business_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("business", id)
		}
		return nil, apperrors.Storage("failed to get business", err)
	}
	return &business, nil
}

func (r *businessRepository) GetAll() ([]models.Business, error) {
	var businesses []models.Business
	if err := r.db.Find(&businesses).Error; err != nil {
		return nil, apperrors.Storage("failed to get all businesses", err)
	}
	return businesses, nil
}

func (r *businessRepository) Update(business *models.Business) error {
	if err := r.db.Save(business).Error; err != nil {
		return apperrors.InvalidElement("failed to update business", err)
	}
	return nil
}

func (r *businessRepository) Delete(id string) error {
	res := r.db.Delete(&models.Business{}, "business_id = ?", id)
	if res.Error != nil {
		return apperrors.Storage("failed to delete business", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("business", id)
	}
	return nil
}
