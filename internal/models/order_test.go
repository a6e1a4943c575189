package models

import (
	"testing"

	"storefront/internal/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	order, err := NewOrder(Order{
		OrderID:     "order_1",
		OrderNumber: "ORD-20260828-0001",
		BusinessID:  "business_1",
		CustomerID:  "customer_1",
		OrderStatus: OrderStatusPending,
		TotalPrice:  100,
	})
	require.NoError(t, err)
	assert.Equal(t, "order_1", order.OrderID)
}

func TestNewOrderValidation(t *testing.T) {
	cases := []struct {
		name  string
		order Order
	}{
		{"missing order id", Order{OrderNumber: "ORD-1", BusinessID: "b", CustomerID: "c", OrderStatus: "Pending"}},
		{"missing order number", Order{OrderID: "o", BusinessID: "b", CustomerID: "c", OrderStatus: "Pending"}},
		{"missing business", Order{OrderID: "o", OrderNumber: "ORD-1", CustomerID: "c", OrderStatus: "Pending"}},
		{"missing customer", Order{OrderID: "o", OrderNumber: "ORD-1", BusinessID: "b", OrderStatus: "Pending"}},
		{"missing status", Order{OrderID: "o", OrderNumber: "ORD-1", BusinessID: "b", CustomerID: "c"}},
		{"negative total", Order{OrderID: "o", OrderNumber: "ORD-1", BusinessID: "b", CustomerID: "c", OrderStatus: "Pending", TotalPrice: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewOrder(tc.order)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
		})
	}
}

func TestNewOrderItemValidation(t *testing.T) {
	_, err := NewOrderItem(OrderItem{OrderItemID: "oitem_1", OrderID: "order_1", ProductID: "product_1", Quantity: 1})
	require.NoError(t, err)

	_, err = NewOrderItem(OrderItem{OrderItemID: "oitem_1", OrderID: "order_1", ProductID: "product_1", Quantity: 0})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	_, err = NewOrderItem(OrderItem{OrderItemID: "oitem_1", OrderID: "order_1", Quantity: 1})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}
