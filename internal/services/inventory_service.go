package services

import (
	"log"
	"strings"

	"storefront/internal/apperrors"
	"storefront/internal/ids"
	"storefront/internal/models"
	"storefront/internal/repository"
)

type CreateInventoryInput struct {
	BusinessID string `json:"businessId"`
	Name       string `json:"name"`
}

type UpdateInventoryInput struct {
	Name *string `json:"name"`
}

type InventoryService interface {
	CreateInventory(input CreateInventoryInput) (string, error)
	GetInventoryByID(inventoryID string) (*models.Inventory, error)
	GetInventoriesByBusiness(businessID string) ([]models.Inventory, error)
	GetAllInventories() ([]models.Inventory, error)
	UpdateInventory(inventoryID string, input UpdateInventoryInput) (*models.Inventory, error)
	DeleteInventory(inventoryID string) error
}

type inventoryService struct {
	inventoryRepo repository.InventoryRepository
}

func NewInventoryService(inventoryRepo repository.InventoryRepository) InventoryService {
	return &inventoryService{inventoryRepo: inventoryRepo}
}

func (s *inventoryService) CreateInventory(input CreateInventoryInput) (string, error) {
	if input.BusinessID == "" {
		return "", apperrors.Validation("business id is required")
	}
	if strings.TrimSpace(input.Name) == "" {
		return "", apperrors.Validation("inventory name is required")
	}

	inventory, err := models.NewInventory(models.Inventory{
		InventoryID: ids.New("inventory"),
		BusinessID:  input.BusinessID,
		Name:        input.Name,
	})
	if err != nil {
		return "", err
	}

	if err := s.inventoryRepo.Create(inventory); err != nil {
		return "", err
	}
	log.Printf("Inventory created %s for business %s", inventory.InventoryID, input.BusinessID)
	return inventory.InventoryID, nil
}

func (s *inventoryService) GetInventoryByID(inventoryID string) (*models.Inventory, error) {
	return s.inventoryRepo.GetByID(inventoryID)
}

func (s *inventoryService) GetInventoriesByBusiness(businessID string) ([]models.Inventory, error) {
	return s.inventoryRepo.GetByBusinessID(businessID)
}

func (s *inventoryService) GetAllInventories() ([]models.Inventory, error) {
	return s.inventoryRepo.GetAll()
}

func (s *inventoryService) UpdateInventory(inventoryID string, input UpdateInventoryInput) (*models.Inventory, error) {
	inventory, err := s.inventoryRepo.GetByID(inventoryID)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		inventory.Name = *input.Name
	}
	if err := s.inventoryRepo.Update(inventory); err != nil {
		return nil, err
	}
	log.Printf("Inventory updated %s", inventoryID)
	return inventory, nil
}

func (s *inventoryService) DeleteInventory(inventoryID string) error {
	if err := s.inventoryRepo.Delete(inventoryID); err != nil {
		return err
	}
	log.Printf("Inventory deleted %s", inventoryID)
	return nil
}
