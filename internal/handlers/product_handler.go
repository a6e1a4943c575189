package handlers

import (
	"net/http"

	"storefront/internal/services"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	productService services.ProductService
}

func NewProductHandler(productService services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var input services.CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		failBind(c)
		return
	}

	productID, err := h.productService.CreateProduct(input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"productId": productID})
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.productService.GetProductByID(c.Param("productId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) GetAllProducts(c *gin.Context) {
	if businessID := c.Query("businessId"); businessID != "" {
		products, err := h.productService.GetProductsByBusiness(businessID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, products)
		return
	}
	if inventoryID := c.Query("inventoryId"); inventoryID != "" {
		products, err := h.productService.GetProductsByInventory(inventoryID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, products)
		return
	}

	products, err := h.productService.GetAllProducts()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var input services.UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		failBind(c)
		return
	}

	product, err := h.productService.UpdateProduct(c.Param("productId"), input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.productService.DeleteProduct(c.Param("productId")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadPhoto accepts a multipart "photo" file and stores it in object
// storage, updating the product's photo URL.
func (h *ProductHandler) UploadPhoto(c *gin.Context) {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read photo file"})
		return
	}
	defer file.Close()

	url, err := h.productService.UploadPhoto(
		c.Param("productId"),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"photoUrl": url})
}
