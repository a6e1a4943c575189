package models

import "storefront/internal/apperrors"

type PromoCode struct {
	PromoCodeID        string  `json:"promoCodeId" gorm:"primaryKey;column:promo_code_id"`
	BusinessID         string  `json:"businessId" gorm:"column:business_id;not null"`
	Promocode          string  `json:"promocode" gorm:"not null"`
	DiscountPercentage float64 `json:"discountPercentage" gorm:"column:discount_percentage;not null"`
	IsActive           bool    `json:"isActive" gorm:"column:is_active"`
}

func (PromoCode) TableName() string { return "promo_codes" }

func NewPromoCode(p PromoCode) (*PromoCode, error) {
	switch {
	case p.PromoCodeID == "":
		return nil, apperrors.Validation("promo code id is required")
	case p.BusinessID == "":
		return nil, apperrors.Validation("business id is required")
	case p.Promocode == "":
		return nil, apperrors.Validation("promo code is required")
	case p.DiscountPercentage < 0 || p.DiscountPercentage > 100:
		return nil, apperrors.Validation("discount percentage must be between 0 and 100")
	}
	return &p, nil
}
