package models

import "storefront/internal/apperrors"

type OrderItem struct {
	OrderItemID   string  `json:"orderItemId" gorm:"primaryKey;column:order_item_id"`
	OrderID       string  `json:"orderId" gorm:"column:order_id;not null"`
	ProductID     string  `json:"productId" gorm:"column:product_id;not null"`
	ProductSizeID *string `json:"productSizeId,omitempty" gorm:"column:product_size_id"`
	Quantity      int     `json:"quantity" gorm:"not null"`
}

func (OrderItem) TableName() string { return "order_items" }

func NewOrderItem(i OrderItem) (*OrderItem, error) {
	switch {
	case i.OrderItemID == "":
		return nil, apperrors.Validation("order item id is required")
	case i.OrderID == "":
		return nil, apperrors.Validation("order id is required")
	case i.ProductID == "":
		return nil, apperrors.Validation("item productId is required")
	case i.Quantity <= 0:
		return nil, apperrors.Validation("item quantity must be > 0")
	}
	return &i, nil
}
