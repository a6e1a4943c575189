package models

import (
	"time"

	"storefront/internal/apperrors"
)

type CheckoutLink struct {
	LinkID      string    `json:"linkId" gorm:"primaryKey;column:link_id"`
	OrderID     string    `json:"orderId" gorm:"column:order_id;not null"`
	UniqueToken string    `json:"uniqueToken" gorm:"column:unique_token;not null"`
	IsActive    bool      `json:"isActive" gorm:"column:is_active"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (CheckoutLink) TableName() string { return "checkout_links" }

func NewCheckoutLink(l CheckoutLink) (*CheckoutLink, error) {
	switch {
	case l.LinkID == "":
		return nil, apperrors.Validation("link id is required")
	case l.OrderID == "":
		return nil, apperrors.Validation("order id is required")
	case l.UniqueToken == "":
		return nil, apperrors.Validation("unique token is required")
	}
	return &l, nil
}
