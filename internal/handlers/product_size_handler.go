package handlers

import (
	"net/http"

	"storefront/internal/services"

	"github.com/gin-gonic/gin"
)

type ProductSizeHandler struct {
	productSizeService services.ProductSizeService
}

func NewProductSizeHandler(productSizeService services.ProductSizeService) *ProductSizeHandler {
	return &ProductSizeHandler{productSizeService: productSizeService}
}

func (h *ProductSizeHandler) CreateProductSize(c *gin.Context) {
	var input services.CreateProductSizeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		failBind(c)
		return
	}

	sizeID, err := h.productSizeService.CreateProductSize(input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"sizeId": sizeID})
}

func (h *ProductSizeHandler) GetProductSize(c *gin.Context) {
	size, err := h.productSizeService.GetProductSizeByID(c.Param("sizeId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, size)
}

func (h *ProductSizeHandler) GetAllProductSizes(c *gin.Context) {
	if productID := c.Query("productId"); productID != "" {
		sizes, err := h.productSizeService.GetProductSizesByProduct(productID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, sizes)
		return
	}

	sizes, err := h.productSizeService.GetAllProductSizes()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sizes)
}

func (h *ProductSizeHandler) UpdateProductSize(c *gin.Context) {
	var input services.UpdateProductSizeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		failBind(c)
		return
	}

	size, err := h.productSizeService.UpdateProductSize(c.Param("sizeId"), input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, size)
}

func (h *ProductSizeHandler) DeleteProductSize(c *gin.Context) {
	if err := h.productSizeService.DeleteProductSize(c.Param("sizeId")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
