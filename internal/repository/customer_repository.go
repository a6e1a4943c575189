package repository

import (
	"errors"

	"storefront/internal/apperrors"
	"storefront/internal/models"

	"gorm.io/gorm"
)

type CustomerRepository interface {
	Create(customer *models.Customer) error
	GetByID(id string) (*models.Customer, error)
	GetByBusinessID(businessID string) ([]models.Customer, error)
	GetAll() ([]models.Customer, error)
	Update(customer *models.Customer) error
	Delete(id string) error
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(customer *models.Customer) error {
	if err := r.db.Create(customer).Error; err != nil {
		return apperrors.InvalidElement("failed to insert customer", err)
	}
	return nil
}

func (r *customerRepository) GetByID(id string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.First(&customer, "customer_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("customer", id)
		}
		return nil, apperrors.Storage("failed to get customer", err)
	}
	return &customer, nil
}

func (r *customerRepository) GetByBusinessID(businessID string) ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.db.Where("business_id = ?", businessID).Find(&customers).Error; err != nil {
		return nil, apperrors.Storage("failed to get customers for business", err)
	}
	return customers, nil
}

func (r *customerRepository) GetAll() ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.db.Find(&customers).Error; err != nil {
		return nil, apperrors.Storage("failed to get all customers", err)
	}
	return customers, nil
}

func (r *customerRepository) Update(customer *models.Customer) error {
	if err := r.db.Save(customer).Error; err != nil {
		return apperrors.InvalidElement("failed to update customer", err)
	}
	return nil
}

func (r *customerRepository) Delete(id string) error {
	res := r.db.Delete(&models.Customer{}, "customer_id = ?", id)
	if res.Error != nil {
		return apperrors.Storage("failed to delete customer", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("customer", id)
	}
	return nil
}
