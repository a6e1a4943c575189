package repository

import (
	"errors"

	"storefront/internal/apperrors"
	"storefront/internal/models"

	"gorm.io/gorm"
)

type CheckoutLinkRepository interface {
	Create(link *models.CheckoutLink) error
	GetByID(id string) (*models.CheckoutLink, error)
	GetByToken(token string) (*models.CheckoutLink, error)
	GetByOrderID(orderID string) ([]models.CheckoutLink, error)
	GetAll() ([]models.CheckoutLink, error)
	Update(link *models.CheckoutLink) error
	Delete(id string) error
}

type checkoutLinkRepository struct {
	db *gorm.DB
}

func NewCheckoutLinkRepository(db *gorm.DB) CheckoutLinkRepository {
	return &checkoutLinkRepository{db: db}
}

func (r *checkoutLinkRepository) Create(link *models.CheckoutLink) error {
	if err := r.db.Create(link).Error; err != nil {
		return apperrors.InvalidElement("failed to insert checkout link", err)
	}
	return nil
}

func (r *checkoutLinkRepository) GetByID(id string) (*models.CheckoutLink, error) {
	var link models.CheckoutLink
	err := r.db.First(&link, "link_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("checkout link", id)
		}
		return nil, apperrors.Storage("failed to get checkout link", err)
	}
	return &link, nil
}

func (r *checkoutLinkRepository) GetByToken(token string) (*models.CheckoutLink, error) {
	var link models.CheckoutLink
	err := r.db.First(&link, "unique_token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("checkout link", token)
		}
		return nil, apperrors.Storage("failed to get checkout link by token", err)
	}
	return &link, nil
}

func (r *checkoutLinkRepository) GetByOrderID(orderID string) ([]models.CheckoutLink, error) {
	var links []models.CheckoutLink
	if err := r.db.Where("order_id = ?", orderID).Find(&links).Error; err != nil {
		return nil, apperrors.Storage("failed to get checkout links for order", err)
	}
	return links, nil
}

func (r *checkoutLinkRepository) GetAll() ([]models.CheckoutLink, error) {
	var links []models.CheckoutLink
	if err := r.db.Find(&links).Error; err != nil {
		return nil, apperrors.Storage("failed to get all checkout links", err)
	}
	return links, nil
}

func (r *checkoutLinkRepository) Update(link *models.CheckoutLink) error {
	if err := r.db.Save(link).Error; err != nil {
		return apperrors.InvalidElement("failed to update checkout link", err)
	}
	return nil
}

func (r *checkoutLinkRepository) Delete(id string) error {
	res := r.db.Delete(&models.CheckoutLink{}, "link_id = ?", id)
	if res.Error != nil {
		return apperrors.Storage("failed to delete checkout link", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("checkout link", id)
	}
	return nil
}
