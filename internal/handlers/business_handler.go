package handlers

import (
	"net/http"

	"storefront/internal/services"

	"github.com/gin-gonic/gin"
)

type BusinessHandler struct {
	businessService services.BusinessService
}

func NewBusinessHandler(businessService services.BusinessService) *BusinessHandler {
	return &BusinessHandler{businessService: businessService}
}

func (h *BusinessHandler) CreateBusiness(c *gin.Context) {
	var input services.CreateBusinessInput
	if err := c.ShouldBindJSON(&input); err != nil {
		failBind(c)
		return
	}

	businessID, err := h.businessService.CreateBusiness(input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"businessId": businessID})
}

func (h *BusinessHandler) GetBusiness(c *gin.Context) {
	business, err := h.businessService.GetBusinessByID(c.Param("businessId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, business)
}

func (h *BusinessHandler) GetAllBusinesses(c *gin.Context) {
	businesses, err := h.businessService.GetAllBusinesses()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, businesses)
}

func (h *BusinessHandler) UpdateBusiness(c *gin.Context) {
	var input services.UpdateBusinessInput
	if err := c.ShouldBindJSON(&input); err != nil {
		failBind(c)
		return
	}

	if err := h.businessService.UpdateBusiness(c.Param("businessId"), input); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Business updated successfully"})
}

func (h *BusinessHandler) DeleteBusiness(c *gin.Context) {
	if err := h.businessService.DeleteBusiness(c.Param("businessId")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
