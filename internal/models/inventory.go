package models

import "storefront/internal/apperrors"

type Inventory struct {
	InventoryID string `json:"inventoryId" gorm:"primaryKey;column:inventory_id"`
	BusinessID  string `json:"businessId" gorm:"column:business_id;not null"`
	Name        string `json:"name" gorm:"not null"`
}

func (Inventory) TableName() string { return "inventory" }

func NewInventory(i Inventory) (*Inventory, error) {
	switch {
	case i.InventoryID == "":
		return nil, apperrors.Validation("inventory id is required")
	case i.BusinessID == "":
		return nil, apperrors.Validation("business id is required")
	case i.Name == "":
		return nil, apperrors.Validation("inventory name is required")
	}
	return &i, nil
}
