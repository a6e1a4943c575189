package handlers

import (
	"net/http"

	"storefront/internal/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var input services.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		failBind(c)
		return
	}

	orderID, err := h.orderService.CreateOrder(input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"orderId": orderID})
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.orderService.GetOrderByID(c.Param("orderId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) GetAllOrders(c *gin.Context) {
	if businessID := c.Query("businessId"); businessID != "" {
		orders, err := h.orderService.GetOrdersByBusiness(businessID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
		return
	}
	if customerID := c.Query("customerId"); customerID != "" {
		orders, err := h.orderService.GetOrdersByCustomer(customerID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
		return
	}

	orders, err := h.orderService.GetAllOrders()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	var input services.UpdateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		failBind(c)
		return
	}

	order, err := h.orderService.UpdateOrder(c.Param("orderId"), input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	if err := h.orderService.DeleteOrder(c.Param("orderId")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OrderHandler) GetOrderItems(c *gin.Context) {
	items, err := h.orderService.GetOrderItems(c.Param("orderId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *OrderHandler) AddOrderItem(c *gin.Context) {
	var input services.CreateOrderItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		failBind(c)
		return
	}

	if err := h.orderService.AddItem(c.Param("orderId"), input); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Item added to order"})
}

func (h *OrderHandler) RemoveOrderItem(c *gin.Context) {
	if err := h.orderService.RemoveItem(c.Param("orderItemId")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
