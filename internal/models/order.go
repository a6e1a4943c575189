package models

import (
	"time"

	"storefront/internal/apperrors"
)

// OrderStatusPending is the initial status of every order. Status is a
// free-form string beyond that: callers may set any value and no transition
// graph is enforced.
const OrderStatusPending = "Pending"

type Order struct {
	OrderID       string    `json:"orderId" gorm:"primaryKey;column:order_id"`
	OrderNumber   string    `json:"orderNumber" gorm:"column:order_number;not null"`
	BusinessID    string    `json:"businessId" gorm:"column:business_id;not null"`
	CustomerID    string    `json:"customerId" gorm:"column:customer_id;not null"`
	OrderStatus   string    `json:"orderStatus" gorm:"column:order_status;not null"`
	OrderSource   string    `json:"orderSource" gorm:"column:order_source;not null"`
	PaymentMethod string    `json:"paymentMethod" gorm:"column:payment_method;not null"`
	TotalPrice    float64   `json:"totalPrice" gorm:"column:total_price;not null"`
	PromoCodeID   *string   `json:"promoCodeId,omitempty" gorm:"column:promo_code_id"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (Order) TableName() string { return "orders" }

func NewOrder(o Order) (*Order, error) {
	switch {
	case o.OrderID == "":
		return nil, apperrors.Validation("order id is required")
	case o.OrderNumber == "":
		return nil, apperrors.Validation("order number is required")
	case o.BusinessID == "":
		return nil, apperrors.Validation("business id is required")
	case o.CustomerID == "":
		return nil, apperrors.Validation("customer id is required")
	case o.OrderStatus == "":
		return nil, apperrors.Validation("order status is required")
	case o.TotalPrice < 0:
		return nil, apperrors.Validation("total price cannot be negative")
	}
	return &o, nil
}
