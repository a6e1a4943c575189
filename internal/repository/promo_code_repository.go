package repository

import (
	"errors"

	"storefront/internal/apperrors"
	"storefront/internal/models"

	"gorm.io/gorm"
)

type PromoCodeRepository interface {
	Create(promoCode *models.PromoCode) error
	GetByID(id string) (*models.PromoCode, error)
	GetByBusinessID(businessID string) ([]models.PromoCode, error)
	GetAll() ([]models.PromoCode, error)
	Update(promoCode *models.PromoCode) error
	Delete(id string) error
}

type promoCodeRepository struct {
	db *gorm.DB
}

func NewPromoCodeRepository(db *gorm.DB) PromoCodeRepository {
	return &promoCodeRepository{db: db}
}

func (r *promoCodeRepository) Create(promoCode *models.PromoCode) error {
	if err := r.db.Create(promoCode).Error; err != nil {
		return apperrors.InvalidElement("failed to insert promo code", err)
	}
	return nil
}

func (r *promoCodeRepository) GetByID(id string) (*models.PromoCode, error) {
	var promoCode models.PromoCode
	err := r.db.First(&promoCode, "promo_code_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("promo code", id)
		}
		return nil, apperrors.Storage("failed to get promo code", err)
	}
	return &promoCode, nil
}

func (r *promoCodeRepository) GetByBusinessID(businessID string) ([]models.PromoCode, error) {
	var promoCodes []models.PromoCode
	if err := r.db.Where("business_id = ?", businessID).Find(&promoCodes).Error; err != nil {
		return nil, apperrors.Storage("failed to get promo codes for business", err)
	}
	return promoCodes, nil
}

func (r *promoCodeRepository) GetAll() ([]models.PromoCode, error) {
	var promoCodes []models.PromoCode
	if err := r.db.Find(&promoCodes).Error; err != nil {
		return nil, apperrors.Storage("failed to get all promo codes", err)
	}
	return promoCodes, nil
}

func (r *promoCodeRepository) Update(promoCode *models.PromoCode) error {
	if err := r.db.Save(promoCode).Error; err != nil {
		return apperrors.InvalidElement("failed to update promo code", err)
	}
	return nil
}

func (r *promoCodeRepository) Delete(id string) error {
	res := r.db.Delete(&models.PromoCode{}, "promo_code_id = ?", id)
	if res.Error != nil {
		return apperrors.Storage("failed to delete promo code", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("promo code", id)
	}
	return nil
}
