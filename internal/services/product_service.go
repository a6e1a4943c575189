package services

import (
	"fmt"
	"io"
	"log"
	"time"

	"storefront/internal/apperrors"
	"storefront/internal/ids"
	"storefront/internal/models"
	"storefront/internal/repository"
)

type CreateProductInput struct {
	BusinessID        string  `json:"businessId"`
	InventoryID       *string `json:"inventoryId,omitempty"`
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	Photo             string  `json:"photo"`
	QuantityInStock   int     `json:"quantityInStock"`
	MinimumStockLevel int     `json:"minimumStockLevel"`
	CostPrice         float64 `json:"costPrice"`
	SellPrice         float64 `json:"sellPrice"`
}

type UpdateProductInput struct {
	InventoryID       *string  `json:"inventoryId"`
	Name              *string  `json:"name"`
	Description       *string  `json:"description"`
	Photo             *string  `json:"photo"`
	QuantityInStock   *int     `json:"quantityInStock"`
	MinimumStockLevel *int     `json:"minimumStockLevel"`
	CostPrice         *float64 `json:"costPrice"`
	SellPrice         *float64 `json:"sellPrice"`
}

// PhotoUploader stores a product photo and returns its public URL.
type PhotoUploader interface {
	Upload(key, contentType string, body io.Reader) (string, error)
}

type ProductService interface {
	CreateProduct(input CreateProductInput) (string, error)
	GetProductByID(productID string) (*models.Product, error)
	GetAllProducts() ([]models.Product, error)
	GetProductsByBusiness(businessID string) ([]models.Product, error)
	GetProductsByInventory(inventoryID string) ([]models.Product, error)
	UpdateProduct(productID string, input UpdateProductInput) (*models.Product, error)
	DeleteProduct(productID string) error
	UploadPhoto(productID, filename, contentType string, body io.Reader) (string, error)
}

type productService struct {
	productRepo repository.ProductRepository
	uploader    PhotoUploader
}

func NewProductService(productRepo repository.ProductRepository, uploader PhotoUploader) ProductService {
	return &productService{productRepo: productRepo, uploader: uploader}
}

func (s *productService) CreateProduct(input CreateProductInput) (string, error) {
	if input.BusinessID == "" {
		return "", apperrors.Validation("business id is required")
	}
	if input.Name == "" {
		return "", apperrors.Validation("product name is required")
	}

	product, err := models.NewProduct(models.Product{
		ProductID:         ids.New("product"),
		BusinessID:        input.BusinessID,
		InventoryID:       input.InventoryID,
		Name:              input.Name,
		Description:       input.Description,
		Photo:             input.Photo,
		QuantityInStock:   input.QuantityInStock,
		MinimumStockLevel: input.MinimumStockLevel,
		CostPrice:         input.CostPrice,
		SellPrice:         input.SellPrice,
		CreatedAt:         time.Now(),
	})
	if err != nil {
		return "", err
	}

	if err := s.productRepo.Create(product); err != nil {
		return "", err
	}
	log.Printf("Product created %s", product.ProductID)
	return product.ProductID, nil
}

func (s *productService) GetProductByID(productID string) (*models.Product, error) {
	return s.productRepo.GetByID(productID)
}

func (s *productService) GetAllProducts() ([]models.Product, error) {
	return s.productRepo.GetAll()
}

func (s *productService) GetProductsByBusiness(businessID string) ([]models.Product, error) {
	return s.productRepo.GetByBusinessID(businessID)
}

func (s *productService) GetProductsByInventory(inventoryID string) ([]models.Product, error) {
	return s.productRepo.GetByInventoryID(inventoryID)
}

func (s *productService) UpdateProduct(productID string, input UpdateProductInput) (*models.Product, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}

	if input.InventoryID != nil {
		product.InventoryID = input.InventoryID
	}
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Photo != nil {
		product.Photo = *input.Photo
	}
	if input.QuantityInStock != nil {
		product.QuantityInStock = *input.QuantityInStock
	}
	if input.MinimumStockLevel != nil {
		product.MinimumStockLevel = *input.MinimumStockLevel
	}
	if input.CostPrice != nil {
		product.CostPrice = *input.CostPrice
	}
	if input.SellPrice != nil {
		product.SellPrice = *input.SellPrice
	}

	// Re-run the field validation over the merged record.
	validated, err := models.NewProduct(*product)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Update(validated); err != nil {
		return nil, err
	}
	log.Printf("Product updated %s", productID)
	return validated, nil
}

func (s *productService) DeleteProduct(productID string) error {
	if err := s.productRepo.Delete(productID); err != nil {
		return err
	}
	log.Printf("Product deleted %s", productID)
	return nil
}

// UploadPhoto pushes the image to object storage under a unique key and
// stores the resulting URL on the product.
func (s *productService) UploadPhoto(productID, filename, contentType string, body io.Reader) (string, error) {
	if s.uploader == nil {
		return "", apperrors.Validation("photo uploads are not configured")
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("%s-%s-%s", productID, time.Now().Format("20060102150405"), filename)
	url, err := s.uploader.Upload(key, contentType, body)
	if err != nil {
		return "", apperrors.Storage("failed to upload product photo", err)
	}

	product.Photo = url
	if err := s.productRepo.Update(product); err != nil {
		return "", err
	}
	log.Printf("Product photo uploaded for %s", productID)
	return url, nil
}
