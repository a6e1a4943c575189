package models

import (
	"time"

	"storefront/internal/apperrors"
)

type Product struct {
	ProductID         string    `json:"productId" gorm:"primaryKey;column:product_id"`
	BusinessID        string    `json:"businessId" gorm:"column:business_id;not null"`
	InventoryID       *string   `json:"inventoryId,omitempty" gorm:"column:inventory_id"`
	Name              string    `json:"name" gorm:"not null"`
	Description       string    `json:"description,omitempty"`
	Photo             string    `json:"photo,omitempty"`
	QuantityInStock   int       `json:"quantityInStock" gorm:"column:quantity_in_stock;not null"`
	MinimumStockLevel int       `json:"minimumStockLevel" gorm:"column:minimum_stock_level;not null"`
	CostPrice         float64   `json:"costPrice" gorm:"column:cost_price;not null"`
	SellPrice         float64   `json:"sellPrice" gorm:"column:sell_price;not null"`
	CreatedAt         time.Time `json:"createdAt"`
}

func (Product) TableName() string { return "product" }

func NewProduct(p Product) (*Product, error) {
	switch {
	case p.ProductID == "":
		return nil, apperrors.Validation("product id is required")
	case p.BusinessID == "":
		return nil, apperrors.Validation("business id is required")
	case p.Name == "":
		return nil, apperrors.Validation("product name is required")
	case p.QuantityInStock < 0:
		return nil, apperrors.Validation("quantity in stock cannot be negative")
	case p.MinimumStockLevel < 0:
		return nil, apperrors.Validation("minimum stock level cannot be negative")
	case p.CostPrice < 0:
		return nil, apperrors.Validation("cost price cannot be negative")
	case p.SellPrice < 0:
		return nil, apperrors.Validation("sell price cannot be negative")
	}
	return &p, nil
}
