package repository

import (
	"errors"

	"storefront/internal/apperrors"
	"storefront/internal/models"

	"gorm.io/gorm"
)

type InventoryRepository interface {
	Create(inventory *models.Inventory) error
	GetByID(id string) (*models.Inventory, error)
	GetByBusinessID(businessID string) ([]models.Inventory, error)
	GetAll() ([]models.Inventory, error)
	Update(inventory *models.Inventory) error
	Delete(id string) error
}

type inventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) Create(inventory *models.Inventory) error {
	if err := r.db.Create(inventory).Error; err != nil {
		return apperrors.InvalidElement("failed to insert inventory", err)
	}
	return nil
}

func (r *inventoryRepository) GetByID(id string) (*models.Inventory, error) {
	var inventory models.Inventory
	err := r.db.First(&inventory, "inventory_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("inventory", id)
		}
		return nil, apperrors.Storage("failed to get inventory", err)
	}
	return &inventory, nil
}

func (r *inventoryRepository) GetByBusinessID(businessID string) ([]models.Inventory, error) {
	var inventories []models.Inventory
	if err := r.db.Where("business_id = ?", businessID).Find(&inventories).Error; err != nil {
		return nil, apperrors.Storage("failed to get inventories for business", err)
	}
	return inventories, nil
}

func (r *inventoryRepository) GetAll() ([]models.Inventory, error) {
	var inventories []models.Inventory
	if err := r.db.Find(&inventories).Error; err != nil {
		return nil, apperrors.Storage("failed to get all inventories", err)
	}
	return inventories, nil
}

func (r *inventoryRepository) Update(inventory *models.Inventory) error {
	if err := r.db.Save(inventory).Error; err != nil {
		return apperrors.InvalidElement("failed to update inventory", err)
	}
	return nil
}

func (r *inventoryRepository) Delete(id string) error {
	res := r.db.Delete(&models.Inventory{}, "inventory_id = ?", id)
	if res.Error != nil {
		return apperrors.Storage("failed to delete inventory", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("inventory", id)
	}
	return nil
}
