package handlers

import (
	"net/http"

	"storefront/internal/services"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	inventoryService services.InventoryService
}

func NewInventoryHandler(inventoryService services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

func (h *InventoryHandler) CreateInventory(c *gin.Context) {
	var input services.CreateInventoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		failBind(c)
		return
	}

	inventoryID, err := h.inventoryService.CreateInventory(input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"inventoryId": inventoryID})
}

func (h *InventoryHandler) GetInventory(c *gin.Context) {
	inventory, err := h.inventoryService.GetInventoryByID(c.Param("inventoryId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, inventory)
}

func (h *InventoryHandler) GetAllInventories(c *gin.Context) {
	if businessID := c.Query("businessId"); businessID != "" {
		inventories, err := h.inventoryService.GetInventoriesByBusiness(businessID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, inventories)
		return
	}

	inventories, err := h.inventoryService.GetAllInventories()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, inventories)
}

func (h *InventoryHandler) UpdateInventory(c *gin.Context) {
	var input services.UpdateInventoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		failBind(c)
		return
	}

	inventory, err := h.inventoryService.UpdateInventory(c.Param("inventoryId"), input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, inventory)
}

func (h *InventoryHandler) DeleteInventory(c *gin.Context) {
	if err := h.inventoryService.DeleteInventory(c.Param("inventoryId")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
