package services

import (
	"log"
	"strings"

	"storefront/internal/apperrors"
	"storefront/internal/ids"
	"storefront/internal/models"
	"storefront/internal/repository"
)

type CreateProductSizeInput struct {
	ProductID string `json:"productId"`
	SizeName  string `json:"sizeName"`
}

type UpdateProductSizeInput struct {
	SizeName *string `json:"sizeName"`
}

type ProductSizeService interface {
	CreateProductSize(input CreateProductSizeInput) (string, error)
	GetProductSizeByID(sizeID string) (*models.ProductSize, error)
	GetAllProductSizes() ([]models.ProductSize, error)
	GetProductSizesByProduct(productID string) ([]models.ProductSize, error)
	UpdateProductSize(sizeID string, input UpdateProductSizeInput) (*models.ProductSize, error)
	DeleteProductSize(sizeID string) error
}

type productSizeService struct {
	productSizeRepo repository.ProductSizeRepository
}

func NewProductSizeService(productSizeRepo repository.ProductSizeRepository) ProductSizeService {
	return &productSizeService{productSizeRepo: productSizeRepo}
}

func (s *productSizeService) CreateProductSize(input CreateProductSizeInput) (string, error) {
	if input.ProductID == "" {
		return "", apperrors.Validation("product id is required")
	}
	if strings.TrimSpace(input.SizeName) == "" {
		return "", apperrors.Validation("size name is required")
	}

	size, err := models.NewProductSize(models.ProductSize{
		SizeID:    ids.New("size"),
		ProductID: input.ProductID,
		SizeName:  strings.TrimSpace(input.SizeName),
	})
	if err != nil {
		return "", err
	}

	if err := s.productSizeRepo.Create(size); err != nil {
		return "", err
	}
	log.Printf("Product size created %s for product %s", size.SizeID, input.ProductID)
	return size.SizeID, nil
}

func (s *productSizeService) GetProductSizeByID(sizeID string) (*models.ProductSize, error) {
	return s.productSizeRepo.GetByID(sizeID)
}

func (s *productSizeService) GetAllProductSizes() ([]models.ProductSize, error) {
	return s.productSizeRepo.GetAll()
}

func (s *productSizeService) GetProductSizesByProduct(productID string) ([]models.ProductSize, error) {
	return s.productSizeRepo.GetByProductID(productID)
}

func (s *productSizeService) UpdateProductSize(sizeID string, input UpdateProductSizeInput) (*models.ProductSize, error) {
	size, err := s.productSizeRepo.GetByID(sizeID)
	if err != nil {
		return nil, err
	}
	if input.SizeName != nil {
		size.SizeName = strings.TrimSpace(*input.SizeName)
	}
	if err := s.productSizeRepo.Update(size); err != nil {
		return nil, err
	}
	log.Printf("Product size updated %s", sizeID)
	return size, nil
}

func (s *productSizeService) DeleteProductSize(sizeID string) error {
	if err := s.productSizeRepo.Delete(sizeID); err != nil {
		return err
	}
	log.Printf("Product size deleted %s", sizeID)
	return nil
}
