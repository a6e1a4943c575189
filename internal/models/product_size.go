package models

import "storefront/internal/apperrors"

type ProductSize struct {
	SizeID    string `json:"sizeId" gorm:"primaryKey;column:size_id"`
	ProductID string `json:"productId" gorm:"column:product_id;not null"`
	SizeName  string `json:"sizeName" gorm:"column:size_name;not null"`
}

func (ProductSize) TableName() string { return "product_sizes" }

func NewProductSize(s ProductSize) (*ProductSize, error) {
	switch {
	case s.SizeID == "":
		return nil, apperrors.Validation("size id is required")
	case s.ProductID == "":
		return nil, apperrors.Validation("product id is required")
	case s.SizeName == "":
		return nil, apperrors.Validation("size name is required")
	}
	return &s, nil
}
